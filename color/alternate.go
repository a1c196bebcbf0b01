package color

import (
	"github.com/wudi/pdfcolor/observability"
)

// Alternate implements the color-space family covering Separation (one
// input component) and DeviceN (n input components): a tint function
// maps inputs to the base space's components.
type Alternate struct {
	numComps int
	base     Space
	tint     TintFunction
	scratch  []float32 // per-instance scratch for the item path
}

// NewAlternate builds an Alternate space. numComps is 1 for Separation
// or the name array's length for DeviceN.
func NewAlternate(numComps int, base Space, tint TintFunction) *Alternate {
	return &Alternate{
		numComps: numComps,
		base:     base,
		tint:     tint,
		scratch:  make([]float32, base.NumComps()),
	}
}

func (a *Alternate) Name() Family             { return FamilyAlternate }
func (a *Alternate) NumComps() int            { return a.numComps }
func (*Alternate) UsesZeroToOneRange() bool   { return true }
func (a *Alternate) IsPassthrough(int) bool   { return false }

func (a *Alternate) defaultColor() []float32 {
	out := make([]float32, a.numComps)
	for i := range out {
		out[i] = 1
	}
	return out
}

func (a *Alternate) GetRGB(src []float32, srcOffset int) [3]byte {
	var dest [3]byte
	a.GetRGBItem(src, srcOffset, dest[:], 0)
	return dest
}

// GetRGBItem is the per-instance scratch path: item calls on the same
// instance from multiple threads must be externally serialized, or the
// scratch relocated to the call frame, since it is not call-local.
func (a *Alternate) GetRGBItem(src []float32, srcOffset int, dest []byte, destOffset int) {
	a.tint(src[srcOffset:srcOffset+a.numComps], a.scratch)
	a.base.GetRGBItem(a.scratch, 0, dest, destOffset)
}

// GetRGBBuffer implements the two-pass buffer conversion: a
// short-circuit path writes tinted samples directly as the base's own
// buffer representation when the base doesn't need a second
// conversion pass, otherwise an intermediate baseBuf is produced and
// run back through base.GetRGBBuffer.
func (a *Alternate) GetRGBBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	scale := sampleScale(bits)
	shortCircuit := (a.base.IsPassthrough(8) || !a.base.UsesZeroToOneRange()) && alpha01 == 0

	baseComps := a.base.NumComps()
	var baseBuf []byte
	if !shortCircuit {
		baseBuf = make([]byte, count*baseComps)
	}

	r := &bitReader{src: src, bitPos: srcOffset * 8}
	in := make([]float32, a.numComps)
	tinted := make([]float32, baseComps)

	for s := 0; s < count; s++ {
		for c := 0; c < a.numComps; c++ {
			in[c] = float32(r.read(bits)) * scale
		}
		a.tint(in, tinted)

		if shortCircuit {
			a.base.GetRGBItem(tinted, 0, dest, destOffset+s*(3+alpha01))
			continue
		}

		pos := s * baseComps
		if a.base.UsesZeroToOneRange() {
			for j := 0; j < baseComps; j++ {
				baseBuf[pos+j] = ClampByte(tinted[j] * 255)
			}
		} else {
			a.base.GetRGBItem(tinted, 0, baseBuf, pos)
		}
	}

	if !shortCircuit {
		a.base.GetRGBBuffer(baseBuf, 0, count, dest, destOffset, 8, alpha01)
	}
}

func (a *Alternate) GetOutputLength(inputLength, alpha01 int) int {
	return a.base.GetOutputLength(inputLength*a.base.NumComps()/a.numComps, alpha01)
}

func (a *Alternate) IsDefaultDecode(decode []float64, bpc int) bool {
	return isDefaultDecodeCommon(observability.NopLogger{}, decode, a.numComps)
}
