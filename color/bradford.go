package color

import "math"

// matrix3 is a row-major 3x3 matrix: rows[0] = [m00,m01,m02], etc.
type matrix3 [9]float64

func (m matrix3) mulVec(v [3]float64) [3]float64 {
	return [3]float64{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// bradford and bradfordInv are the fixed chromatic-adaptation matrices
// of the Bradford cone-response transform.
var bradford = matrix3{
	0.8951, 0.2664, -0.1614,
	-0.7502, 1.7135, 0.0367,
	0.0389, -0.0685, 1.0296,
}

var bradfordInv = matrix3{
	0.9869929, -0.1470543, 0.1599627,
	0.4323053, 0.5183603, 0.0492912,
	-0.0085287, 0.0400428, 0.9684867,
}

// srgbD65 is the fixed sRGB/D65 XYZ->RGB matrix.
var srgbD65 = matrix3{
	3.2404542, -1.5371385, -0.4985314,
	-0.9692660, 1.8760108, 0.0415560,
	0.0556434, -0.2040259, 1.0572252,
}

// whitePointD65 is the fixed D65 reference white.
var whitePointD65 = [3]float64{0.95047, 1.0, 1.08883}

// decodeLK is the decodeL constant: K = ((8+16)/116)^3 / 8.0.
const decodeLK = 0.0011070564598794539

// bradfordAdapt normalizes xyz taken under sourceWhite into the
// whitepoint targetWhite, via the Bradford cone-response transform.
func bradfordAdapt(xyz, sourceWhite, targetWhite [3]float64) [3]float64 {
	srcCone := bradford.mulVec(sourceWhite)
	dstCone := bradford.mulVec(targetWhite)
	coneXYZ := bradford.mulVec(xyz)
	scaled := [3]float64{
		coneXYZ[0] * dstCone[0] / srcCone[0],
		coneXYZ[1] * dstCone[1] / srcCone[1],
		coneXYZ[2] * dstCone[2] / srcCone[2],
	}
	return bradfordInv.mulVec(scaled)
}

// decodeL is the CIE lightness inverse tone curve: v*K for v<=8,
// else ((v+16)/116)^3.
func decodeL(v float64) float64 {
	if v <= 8 {
		return v * decodeLK
	}
	return math.Pow((v+16)/116, 3)
}

// blackPointCompensate scales xyz toward the default destination black
// (0,0,0), given the source black point. Callers already skip this when
// sourceBlack is (0,0,0); see DESIGN.md for why the per-axis formula
// below, rather than some other normalization, was chosen for the
// non-default case.
func blackPointCompensate(xyz, sourceBlack [3]float64) [3]float64 {
	out := xyz
	for i := 0; i < 3; i++ {
		srcL := decodeL(sourceBlack[i] * 100)
		if srcL <= 0 {
			continue
		}
		out[i] = (xyz[i] - srcL) / (1 - srcL)
	}
	return out
}

// srgbTransfer applies the sRGB transfer function:
// linear below 0.0031308, a cheap return of 1 above 0.99554525 (avoiding
// an expensive pow near white), and the gamma curve otherwise.
func srgbTransfer(c float64) float64 {
	switch {
	case c <= 0.0031308:
		v := 12.92 * c
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	case c >= 0.99554525:
		return 1
	default:
		v := 1.055*math.Pow(c, 1/2.4) - 0.055
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
}
