package color

import (
	"math"

	"github.com/wudi/pdfcolor/observability"
)

// CalRGBParams are the construction-time parameters for a CalRGB space.
// Matrix is stored in the PDF array order [XA,YA,ZA, XB,YB, ZB, XC,YC,
// ZC] — each consecutive triple is one input channel's (R, G, or B)
// contribution to (X,Y,Z).
type CalRGBParams struct {
	WhitePoint [3]float64
	BlackPoint [3]float64
	Gamma      [3]float64 // GR, GG, GB
	Matrix     *[9]float64
}

var identityMatrix9 = [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}

// CalRGB implements the CIE-based RGB color space.
type CalRGB struct {
	whitePoint [3]float64
	blackPoint [3]float64
	gamma      [3]float64
	matrix     [9]float64
}

// NewCalRGB constructs a CalRGB space, normalizing invalid parameters.
func NewCalRGB(p CalRGBParams, log observability.Logger) (*CalRGB, error) {
	log = observability.OrDefault(log)

	if p.WhitePoint == [3]float64{} {
		return nil, NewFormatError(string(FamilyCalRGB), "missing whitepoint")
	}
	if p.WhitePoint[1] != 1 {
		log.Warn("CalRGB whitepoint YW is not 1", observability.Float("YW", p.WhitePoint[1]))
	}

	if p.BlackPoint[0] < 0 || p.BlackPoint[1] < 0 || p.BlackPoint[2] < 0 {
		log.Warn("CalRGB blackpoint has a negative component, resetting to (0,0,0)")
		p.BlackPoint = [3]float64{}
	}

	gamma := p.Gamma
	if gamma == [3]float64{} {
		gamma = [3]float64{1, 1, 1}
	}
	if gamma[0] < 0 || gamma[1] < 0 || gamma[2] < 0 {
		log.Warn("CalRGB gamma has a negative component, resetting to (1,1,1)")
		gamma = [3]float64{1, 1, 1}
	}

	matrix := identityMatrix9
	if p.Matrix != nil {
		matrix = *p.Matrix
	}

	return &CalRGB{
		whitePoint: p.WhitePoint,
		blackPoint: p.BlackPoint,
		gamma:      gamma,
		matrix:     matrix,
	}, nil
}

func (*CalRGB) Name() Family             { return FamilyCalRGB }
func (*CalRGB) NumComps() int            { return 3 }
func (*CalRGB) UsesZeroToOneRange() bool { return true }
func (*CalRGB) defaultColor() []float32  { return []float32{0, 0, 0} }
func (*CalRGB) IsPassthrough(int) bool   { return false }

func (cr *CalRGB) GetRGB(src []float32, srcOffset int) [3]byte {
	var dest [3]byte
	cr.GetRGBItem(src, srcOffset, dest[:], 0)
	return dest
}

func (cr *CalRGB) GetRGBItem(src []float32, srcOffset int, dest []byte, destOffset int) {
	rgb := cr.eval(float64(src[srcOffset]), float64(src[srcOffset+1]), float64(src[srcOffset+2]))
	dest[destOffset] = ClampByte(float32(rgb[0]))
	dest[destOffset+1] = ClampByte(float32(rgb[1]))
	dest[destOffset+2] = ClampByte(float32(rgb[2]))
}

func (cr *CalRGB) GetRGBBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	bufferConvert(func(comps []float32) [3]float32 {
		rgb := cr.eval(float64(comps[0]), float64(comps[1]), float64(comps[2]))
		return [3]float32{float32(rgb[0]), float32(rgb[1]), float32(rgb[2])}
	}, 3, src, srcOffset, count, dest, destOffset, bits, alpha01)
}

func (*CalRGB) GetOutputLength(inputLength, alpha01 int) int {
	return outputLength(inputLength, 3, alpha01)
}

func (*CalRGB) IsDefaultDecode(decode []float64, bpc int) bool {
	return isDefaultDecodeCommon(observability.NopLogger{}, decode, 3)
}

// eval applies per-channel gamma and the matrix multiply into XYZ, then
// runs the five-stage CalRGB pipeline: whitepoint normalization,
// black-point compensation, D65 normalization, XYZ->linear sRGB, and the
// sRGB transfer function.
func (cr *CalRGB) eval(r, g, b float64) [3]float64 {
	agr := gammaPow(r, cr.gamma[0])
	agg := gammaPow(g, cr.gamma[1])
	agb := gammaPow(b, cr.gamma[2])

	m := cr.matrix
	xyz := [3]float64{
		m[0]*agr + m[3]*agg + m[6]*agb,
		m[1]*agr + m[4]*agg + m[7]*agb,
		m[2]*agr + m[5]*agg + m[8]*agb,
	}

	// Stage 1: normalize whitepoint to flat (1,1,1), skipped when
	// already flat.
	if !(cr.whitePoint[0] == 1 && cr.whitePoint[2] == 1) {
		xyz = bradfordAdapt(xyz, cr.whitePoint, [3]float64{1, 1, 1})
	}

	// Stage 2: black-point compensation against default black (0,0,0).
	if cr.blackPoint != [3]float64{} {
		xyz = blackPointCompensate(xyz, cr.blackPoint)
	}

	// Stage 3: normalize flat -> D65.
	xyz = bradfordAdapt(xyz, [3]float64{1, 1, 1}, whitePointD65)

	// Stage 4: XYZ(D65) -> linear RGB.
	lin := srgbD65.mulVec(xyz)

	// Stage 5: sRGB transfer function, scaled to [0,255].
	return [3]float64{
		srgbTransfer(lin[0]) * 255,
		srgbTransfer(lin[1]) * 255,
		srgbTransfer(lin[2]) * 255,
	}
}

// gammaPow implements the per-channel gamma shortcut: A==1 always
// yields 1 without invoking pow.
func gammaPow(a, gamma float64) float64 {
	if a == 1 {
		return 1
	}
	return math.Pow(a, gamma)
}
