package color

import (
	"math"

	"github.com/wudi/pdfcolor/observability"
)

// LabParams are the construction-time parameters for a Lab space.
type LabParams struct {
	WhitePoint [3]float64
	BlackPoint [3]float64
	Range      [4]float64 // amin, amax, bmin, bmax
}

var defaultLabRange = [4]float64{-100, 100, -100, 100}

// labD50 is the Bruce Lindbloom XYZ(D50) -> linear sRGB matrix, used
// when the whitepoint's Z component is below 1. There is no equivalent
// D50 literal given alongside the sRGB/D65 matrix, so this well-known
// public constant fills the gap; see DESIGN.md.
var labD50 = matrix3{
	3.1338561, -1.6168667, -0.4906146,
	-0.9787684, 1.9161415, 0.0334540,
	0.0719453, -0.2289914, 1.4052427,
}

// Lab implements the CIE 1976 L*a*b* color space.
type Lab struct {
	whitePoint [3]float64
	rng        [4]float64
}

// NewLab constructs a Lab space, normalizing invalid parameters.
func NewLab(p LabParams, log observability.Logger) (*Lab, error) {
	log = observability.OrDefault(log)

	if p.WhitePoint == [3]float64{} {
		return nil, NewFormatError(string(FamilyLab), "missing whitepoint")
	}
	if p.WhitePoint[1] != 1 {
		log.Warn("Lab whitepoint YW is not 1", observability.Float("YW", p.WhitePoint[1]))
	}

	if p.BlackPoint[0] < 0 || p.BlackPoint[1] < 0 || p.BlackPoint[2] < 0 {
		log.Warn("Lab blackpoint has a negative component, resetting to (0,0,0)")
		p.BlackPoint = [3]float64{}
	}

	rng := p.Range
	if rng == [4]float64{} {
		rng = defaultLabRange
	}
	if rng[0] > rng[1] || rng[2] > rng[3] {
		log.Warn("Lab range is inverted, resetting to defaults",
			observability.Float("amin", rng[0]), observability.Float("amax", rng[1]),
			observability.Float("bmin", rng[2]), observability.Float("bmax", rng[3]))
		rng = defaultLabRange
	}

	return &Lab{whitePoint: p.WhitePoint, rng: rng}, nil
}

func (*Lab) Name() Family             { return FamilyLab }
func (*Lab) NumComps() int            { return 3 }
func (*Lab) UsesZeroToOneRange() bool { return false }
func (*Lab) defaultColor() []float32  { return []float32{0, 0, 0} }
func (*Lab) IsPassthrough(int) bool   { return false }

func (lb *Lab) GetRGB(src []float32, srcOffset int) [3]byte {
	var dest [3]byte
	lb.GetRGBItem(src, srcOffset, dest[:], 0)
	return dest
}

// GetRGBItem takes already-range-mapped L*a*b* components: no `maxVal`
// remapping applies here, matching the content-stream operand path.
func (lb *Lab) GetRGBItem(src []float32, srcOffset int, dest []byte, destOffset int) {
	rgb := lb.eval(float64(src[srcOffset]), float64(src[srcOffset+1]), float64(src[srcOffset+2]))
	dest[destOffset] = ClampByte(float32(rgb[0]))
	dest[destOffset+1] = ClampByte(float32(rgb[1]))
	dest[destOffset+2] = ClampByte(float32(rgb[2]))
}

// GetRGBBuffer remaps raw [0,2^bits-1] integers into L*a*b* ranges
// before running the conversion. bufferConvert's uniform 1/(2^bits-1)
// pre-scaling doesn't fit Lab's three independently-ranged axes, so Lab
// drives its own loop directly over the raw integers instead of reusing
// that helper.
func (lb *Lab) GetRGBBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	maxVal := float64((uint32(1) << uint(bits)) - 1)

	r := &bitReader{src: src, bitPos: srcOffset * 8}
	di := destOffset
	for s := 0; s < count; s++ {
		lRaw := float64(r.read(bits))
		aRaw := float64(r.read(bits))
		bRaw := float64(r.read(bits))

		l := lRaw * 100 / maxVal
		a := lb.rng[0] + aRaw*(lb.rng[1]-lb.rng[0])/maxVal
		b := lb.rng[2] + bRaw*(lb.rng[3]-lb.rng[2])/maxVal

		rgb := lb.eval(l, a, b)
		dest[di] = ClampByte(float32(rgb[0]))
		dest[di+1] = ClampByte(float32(rgb[1]))
		dest[di+2] = ClampByte(float32(rgb[2]))
		di += 3 + alpha01
	}
}

func (*Lab) GetOutputLength(inputLength, alpha01 int) int {
	return outputLength(inputLength, 3, alpha01)
}

// IsDefaultDecode is always true for Lab: its decode map is folded into
// the range-mapping done by GetRGBBuffer rather than applied generically.
func (*Lab) IsDefaultDecode(decode []float64, bpc int) bool { return true }

// eval converts one L*a*b* triple (L in [0,100]; a/b are clamped here to
// the space's configured ranges) to an RGB triple in [0,255].
func (lb *Lab) eval(l, a, b float64) [3]float64 {
	a = clampF64(a, lb.rng[0], lb.rng[1])
	b = clampF64(b, lb.rng[2], lb.rng[3])

	m := (l + 16) / 116
	lPrime := m + a/500
	n := m - b/200

	x := lb.whitePoint[0] * labG(lPrime)
	y := lb.whitePoint[1] * labG(m)
	z := lb.whitePoint[2] * labG(n)

	var mat matrix3
	if lb.whitePoint[2] < 1 {
		mat = labD50
	} else {
		mat = srgbD65
	}
	lin := mat.mulVec([3]float64{x, y, z})

	return [3]float64{
		math.Sqrt(math.Max(lin[0], 0)) * 255,
		math.Sqrt(math.Max(lin[1], 0)) * 255,
		math.Sqrt(math.Max(lin[2], 0)) * 255,
	}
}

// labG is the inverse lightness curve of the L*a*b* -> XYZ conversion.
func labG(x float64) float64 {
	const threshold = 6.0 / 29.0
	if x >= threshold {
		return x * x * x
	}
	return (108.0 / 841.0) * (x - 4.0/29.0)
}

func clampF64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
