package color

import (
	"math"

	"github.com/wudi/pdfcolor/observability"
)

// CalGrayParams are the construction-time parameters for a CalGray
// space.
type CalGrayParams struct {
	WhitePoint [3]float64 // XW, YW, ZW
	BlackPoint [3]float64 // XB, YB, ZB
	Gamma      float64
}

// CalGray implements the CIE-based gray color space.
type CalGray struct {
	whitePoint [3]float64
	gamma      float64
}

// NewCalGray constructs a CalGray space, normalizing invalid parameters
// and reporting through log (nil defaults to a no-op logger).
func NewCalGray(p CalGrayParams, log observability.Logger) (*CalGray, error) {
	log = observability.OrDefault(log)

	if p.WhitePoint == [3]float64{} {
		return nil, NewFormatError(string(FamilyCalGray), "missing whitepoint")
	}
	if p.WhitePoint[1] != 1 {
		log.Warn("CalGray whitepoint YW is not 1", observability.Float("YW", p.WhitePoint[1]))
	}

	gamma := p.Gamma
	if gamma == 0 {
		gamma = 1
	}
	if gamma < 1 {
		log.Warn("CalGray gamma below 1, resetting to 1", observability.Float("gamma", gamma))
		gamma = 1
	}

	if p.BlackPoint[0] < 0 || p.BlackPoint[1] < 0 || p.BlackPoint[2] < 0 {
		log.Warn("CalGray blackpoint has a negative component, resetting to (0,0,0)")
		p.BlackPoint = [3]float64{}
	} else if p.BlackPoint != [3]float64{} {
		// Accepted but numerically ignored: only the
		// default blackpoint actually affects output.
		log.Warn("CalGray non-default blackpoint is accepted but has no numeric effect",
			observability.Float("XB", p.BlackPoint[0]),
			observability.Float("YB", p.BlackPoint[1]),
			observability.Float("ZB", p.BlackPoint[2]))
	}

	return &CalGray{whitePoint: p.WhitePoint, gamma: gamma}, nil
}

func (*CalGray) Name() Family             { return FamilyCalGray }
func (*CalGray) NumComps() int            { return 1 }
func (*CalGray) UsesZeroToOneRange() bool { return true }
func (*CalGray) defaultColor() []float32  { return []float32{0} }
func (*CalGray) IsPassthrough(int) bool   { return false }

func (cg *CalGray) GetRGB(src []float32, srcOffset int) [3]byte {
	var dest [3]byte
	cg.GetRGBItem(src, srcOffset, dest[:], 0)
	return dest
}

func (cg *CalGray) GetRGBItem(src []float32, srcOffset int, dest []byte, destOffset int) {
	v := ClampByte(float32(cg.eval(float64(src[srcOffset]))))
	dest[destOffset], dest[destOffset+1], dest[destOffset+2] = v, v, v
}

func (cg *CalGray) GetRGBBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	bufferConvert(func(comps []float32) [3]float32 {
		v := float32(cg.eval(float64(comps[0])))
		return [3]float32{v, v, v}
	}, 1, src, srcOffset, count, dest, destOffset, bits, alpha01)
}

func (*CalGray) GetOutputLength(inputLength, alpha01 int) int {
	return outputLength(inputLength, 1, alpha01)
}

func (*CalGray) IsDefaultDecode(decode []float64, bpc int) bool {
	return isDefaultDecodeCommon(observability.NopLogger{}, decode, 1)
}

// eval converts one already-scaled gray component (src*scale, folded in
// by the caller) to a CIE lightness value: L := YW*A^G, then
// v := max(0, 295.8*L^(1/3) - 40.8).
func (cg *CalGray) eval(a float64) float64 {
	l := cg.whitePoint[1] * math.Pow(a, cg.gamma)
	v := 295.8*math.Pow(l, 1.0/3.0) - 40.8
	if v < 0 {
		v = 0
	}
	return v
}
