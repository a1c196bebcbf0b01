package color

import "github.com/wudi/pdfcolor/observability"

// Pattern holds an optional base color space for uncolored tiling
// patterns. It defines no sample conversion: calling any conversion
// operation is a programmer error.
type Pattern struct {
	base Space // nil for colored patterns
	log  observability.Logger
}

// NewPattern builds a Pattern over an optional base space. base may be
// nil.
func NewPattern(base Space, log observability.Logger) *Pattern {
	return &Pattern{base: base, log: observability.OrDefault(log)}
}

// Base returns the pattern's underlying color space, or nil if none.
func (p *Pattern) Base() Space { return p.base }

func (*Pattern) Name() Family             { return FamilyPattern }
func (*Pattern) NumComps() int            { return 0 }
func (*Pattern) UsesZeroToOneRange() bool { return true }
func (*Pattern) defaultColor() []float32  { return nil }
func (*Pattern) IsPassthrough(int) bool   { return false }

func (p *Pattern) GetRGB(src []float32, srcOffset int) [3]byte {
	p.log.Unreachable("Pattern.GetRGB called: patterns are not evaluated as pixels")
	return [3]byte{}
}

func (p *Pattern) GetRGBItem(src []float32, srcOffset int, dest []byte, destOffset int) {
	p.log.Unreachable("Pattern.GetRGBItem called: patterns are not evaluated as pixels")
}

func (p *Pattern) GetRGBBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	p.log.Unreachable("Pattern.GetRGBBuffer called: patterns are not evaluated as pixels")
}

func (*Pattern) GetOutputLength(inputLength, alpha01 int) int { return 0 }

func (*Pattern) IsDefaultDecode(decode []float64, bpc int) bool { return true }
