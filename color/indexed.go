package color

import (
	"fmt"

	"github.com/wudi/pdfcolor/observability"
)

// Indexed implements the Indexed color space: a palette lookup into a
// base space.
type Indexed struct {
	base    Space
	count   int // hival + 1
	palette []byte
	log     observability.Logger
}

// NewIndexed builds an Indexed space over base, with count palette
// entries (count == hival+1) of base.NumComps() bytes each.
func NewIndexed(base Space, count int, palette []byte, log observability.Logger) (*Indexed, error) {
	log = observability.OrDefault(log)
	want := base.NumComps() * count
	if len(palette) != want {
		return nil, NewFormatError(string(FamilyIndexed),
			fmt.Sprintf("palette has %d bytes, want %d", len(palette), want))
	}
	return &Indexed{base: base, count: count, palette: palette, log: log}, nil
}

// IndexedLookupFromString builds the palette bytes for a lookup table
// given as a PDF string rather than a stream, masking each code unit to
// a byte.
func IndexedLookupFromString(s []byte) []byte {
	out := make([]byte, len(s))
	for i, c := range s {
		out[i] = c & 0xff
	}
	return out
}

func (*Indexed) Name() Family             { return FamilyIndexed }
func (*Indexed) NumComps() int            { return 1 }
func (*Indexed) UsesZeroToOneRange() bool { return true }
func (*Indexed) defaultColor() []float32  { return []float32{0} }
func (*Indexed) IsPassthrough(int) bool   { return false }

func (ix *Indexed) GetRGB(src []float32, srcOffset int) [3]byte {
	var dest [3]byte
	ix.GetRGBItem(src, srcOffset, dest[:], 0)
	return dest
}

func (ix *Indexed) GetRGBItem(src []float32, srcOffset int, dest []byte, destOffset int) {
	index := int(src[srcOffset] + 0.5)
	ix.lookup(index, dest, destOffset)
}

func (ix *Indexed) GetRGBBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	r := &bitReader{src: src, bitPos: srcOffset * 8}
	di := destOffset
	for s := 0; s < count; s++ {
		index := int(r.read(bits))
		ix.lookup(index, dest, di)
		di += 3 + alpha01
	}
}

// lookup reads base.NumComps() bytes from the palette at index and
// converts them through the base space as a single sample.
func (ix *Indexed) lookup(index int, dest []byte, destOffset int) {
	n := ix.base.NumComps()
	if index < 0 || index >= ix.count {
		// Out-of-range indices have no defined palette entry; treat as
		// the default sample rather than panicking on a bad stream.
		ix.base.GetRGBItem(ix.base.defaultColor(), 0, dest, destOffset)
		return
	}
	off := index * n
	ix.base.GetRGBBuffer(ix.palette, off, 1, dest, destOffset, 8, 0)
}

func (ix *Indexed) GetOutputLength(inputLength, alpha01 int) int {
	stride := ix.base.GetOutputLength(ix.base.NumComps(), alpha01)
	return inputLength * stride
}

// IsDefaultDecode is true when decode is absent or is the length-2 array
// [0, (1<<bpc)-1] that matches the palette index domain, and false for
// any other length-2 array. A mis-sized map or non-positive bpc warns
// and is treated as default.
func (ix *Indexed) IsDefaultDecode(decode []float64, bpc int) bool {
	if decode == nil {
		return true
	}
	if len(decode) != 2 || bpc <= 0 {
		ix.log.Warn("Indexed decode array malformed, treating as default",
			observability.Int("len", len(decode)), observability.Int("bpc", bpc))
		return true
	}
	maxVal := float64((uint32(1) << uint(bpc)) - 1)
	return decode[0] == 0 && decode[1] == maxVal
}
