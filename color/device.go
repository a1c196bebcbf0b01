package color

import (
	"sync"

	"github.com/wudi/pdfcolor/observability"
)

// --- DeviceGray ---

type deviceGray struct{}

// DeviceGray is the process-wide DeviceGray singleton.
var DeviceGray Space = deviceGray{}

func (deviceGray) Name() Family             { return FamilyDeviceGray }
func (deviceGray) NumComps() int            { return 1 }
func (deviceGray) UsesZeroToOneRange() bool { return true }
func (deviceGray) defaultColor() []float32  { return []float32{0} }
func (deviceGray) IsPassthrough(int) bool   { return false }

func (g deviceGray) GetRGB(src []float32, srcOffset int) [3]byte {
	var dest [3]byte
	g.GetRGBItem(src, srcOffset, dest[:], 0)
	return dest
}

func (deviceGray) GetRGBItem(src []float32, srcOffset int, dest []byte, destOffset int) {
	c := ClampByte(src[srcOffset] * 255)
	dest[destOffset], dest[destOffset+1], dest[destOffset+2] = c, c, c
}

func (deviceGray) GetRGBBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	bufferConvert(func(comps []float32) [3]float32 {
		c := comps[0] * 255
		return [3]float32{c, c, c}
	}, 1, src, srcOffset, count, dest, destOffset, bits, alpha01)
}

func (deviceGray) GetOutputLength(inputLength, alpha01 int) int {
	return outputLength(inputLength, 1, alpha01)
}

func (deviceGray) IsDefaultDecode(decode []float64, bpc int) bool {
	return isDefaultDecodeCommon(observability.NopLogger{}, decode, 1)
}

// --- DeviceRGB ---

type deviceRGB struct{}

// DeviceRGB is the process-wide DeviceRGB singleton.
var DeviceRGB Space = deviceRGB{}

func (deviceRGB) Name() Family             { return FamilyDeviceRGB }
func (deviceRGB) NumComps() int            { return 3 }
func (deviceRGB) UsesZeroToOneRange() bool { return true }
func (deviceRGB) defaultColor() []float32  { return []float32{0, 0, 0} }

// IsPassthrough is true at bits==8: converted output equals a
// contiguous slice of input.
func (deviceRGB) IsPassthrough(bits int) bool { return bits == 8 }

func (rgb deviceRGB) GetRGB(src []float32, srcOffset int) [3]byte {
	var dest [3]byte
	rgb.GetRGBItem(src, srcOffset, dest[:], 0)
	return dest
}

func (deviceRGB) GetRGBItem(src []float32, srcOffset int, dest []byte, destOffset int) {
	dest[destOffset] = ClampByte(src[srcOffset] * 255)
	dest[destOffset+1] = ClampByte(src[srcOffset+1] * 255)
	dest[destOffset+2] = ClampByte(src[srcOffset+2] * 255)
}

func (deviceRGB) GetRGBBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	if bits == 8 && alpha01 == 0 {
		// Passthrough: a single contiguous copy.
		copy(dest[destOffset:destOffset+count*3], src[srcOffset:srcOffset+count*3])
		return
	}
	bufferConvert(func(comps []float32) [3]float32 {
		return [3]float32{comps[0] * 255, comps[1] * 255, comps[2] * 255}
	}, 3, src, srcOffset, count, dest, destOffset, bits, alpha01)
}

func (deviceRGB) GetOutputLength(inputLength, alpha01 int) int {
	return outputLength(inputLength, 3, alpha01)
}

func (deviceRGB) IsDefaultDecode(decode []float64, bpc int) bool {
	return isDefaultDecodeCommon(observability.NopLogger{}, decode, 3)
}

// --- DeviceCMYK ---

type deviceCMYK struct{}

// DeviceCMYK is the process-wide DeviceCMYK singleton.
var DeviceCMYK Space = deviceCMYK{}

func (deviceCMYK) Name() Family             { return FamilyDeviceCMYK }
func (deviceCMYK) NumComps() int            { return 4 }
func (deviceCMYK) UsesZeroToOneRange() bool { return true }
func (deviceCMYK) defaultColor() []float32  { return []float32{0, 0, 0, 1} }
func (deviceCMYK) IsPassthrough(int) bool   { return false }

func (k deviceCMYK) GetRGB(src []float32, srcOffset int) [3]byte {
	var dest [3]byte
	k.GetRGBItem(src, srcOffset, dest[:], 0)
	return dest
}

func (deviceCMYK) GetRGBItem(src []float32, srcOffset int, dest []byte, destOffset int) {
	rgb := cmykPolynomial(src[srcOffset], src[srcOffset+1], src[srcOffset+2], src[srcOffset+3])
	dest[destOffset] = ClampByte(rgb[0])
	dest[destOffset+1] = ClampByte(rgb[1])
	dest[destOffset+2] = ClampByte(rgb[2])
}

func (deviceCMYK) GetRGBBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	bufferConvert(func(comps []float32) [3]float32 {
		return cmykPolynomial(comps[0], comps[1], comps[2], comps[3])
	}, 4, src, srcOffset, count, dest, destOffset, bits, alpha01)
}

func (deviceCMYK) GetOutputLength(inputLength, alpha01 int) int {
	return outputLength(inputLength, 4, alpha01)
}

func (deviceCMYK) IsDefaultDecode(decode []float64, bpc int) bool {
	return isDefaultDecodeCommon(observability.NopLogger{}, decode, 4)
}

// cmykPolynomial is the empirically-fitted degree-2 polynomial in
// (c,m,y,k) approximating SWOP-coated CMYK->RGB. Every coefficient
// matters; changing any of them changes the output for every caller.
func cmykPolynomial(c, m, y, k float32) [3]float32 {
	r := 255 +
		c*(-4.387332384609988*c+54.48615194189176*m+18.82290502165302*y+212.25662451639585*k-285.2331026137004) +
		m*(1.7149763477362134*m-5.6096736904047315*y-17.873870861415444*k-5.497006427196366) +
		y*(-2.5217340131683033*y-21.248923337353073*k+17.5119270841813) +
		k*(-21.86122147463605*k-189.48180835922747)

	g := 255 +
		c*(8.841041422036149*c+0.0006930101939219748*m+0.13073868639323983*y+12.078790046141768*k-31.159100130055922) +
		m*(-15.310361306967817*m+17.575251261109482*y+131.35250912493976*k-190.9453302588951) +
		y*(4.444339102852739*y+9.8632861493405*k-24.86741582555878) +
		k*(-20.737325471181034*k-187.80453709719578)

	b := 255 +
		c*(0.8842522430003296*c+8.078677503112928*m+30.89978309703729*y-0.23883238689178934*k-14.183576799673286) +
		m*(10.49593273432072*m+63.02378494754052*y+50.606957656360734*k-112.23884253719248) +
		y*(0.03296041114873217*y+115.60384449646641*k-193.58209356861505) +
		k*(-22.33816807309886*k-180.12613974708367)

	return [3]float32{r, g, b}
}

// --- Singleton lazy cache ---

var (
	deviceSingletonsOnce sync.Once
	deviceSingletons     map[Family]Space
)

// DeviceSingleton returns the process-wide singleton for the named
// device family, constructing the lazy cache at most once per process.
func DeviceSingleton(name Family) (Space, bool) {
	deviceSingletonsOnce.Do(func() {
		deviceSingletons = map[Family]Space{
			FamilyDeviceGray: DeviceGray,
			FamilyDeviceRGB:  DeviceRGB,
			FamilyDeviceCMYK: DeviceCMYK,
		}
	})
	s, ok := deviceSingletons[name]
	return s, ok
}

// DeviceSingletonByNumComps picks the device space whose component
// count matches n (1->gray, 3->rgb, 4->cmyk), used by the ICCBased
// fallback.
func DeviceSingletonByNumComps(n int) (Space, bool) {
	switch n {
	case 1:
		return DeviceGray, true
	case 3:
		return DeviceRGB, true
	case 4:
		return DeviceCMYK, true
	default:
		return nil, false
	}
}
