package color

import "fmt"

// Family names one of the nine PDF color-space families this package
// recognizes.
type Family string

const (
	FamilyDeviceGray Family = "DeviceGray"
	FamilyDeviceRGB  Family = "DeviceRGB"
	FamilyDeviceCMYK Family = "DeviceCMYK"
	FamilyCalGray    Family = "CalGray"
	FamilyCalRGB     Family = "CalRGB"
	FamilyLab        Family = "Lab"
	FamilyIndexed    Family = "Indexed"
	FamilyPattern    Family = "Pattern"
	FamilyAlternate  Family = "Alternate" // Separation or DeviceN
)

// Space is the contract every concrete color space implements. There is
// no separate "abstract base" type: Go interfaces stand in for that
// role, and FillRGB (fill.go) is a free function parameterized over
// Space rather than a base-class method.
type Space interface {
	// Name identifies which of the nine families this space belongs to.
	Name() Family

	// NumComps is the number of input components per sample.
	NumComps() int

	// UsesZeroToOneRange is true for every space except Lab.
	UsesZeroToOneRange() bool

	// GetRGB allocates and returns a clamped RGB triple for one sample
	// of already-scaled (typically [0,1]) float components.
	GetRGB(src []float32, srcOffset int) [3]byte

	// GetRGBItem writes one clamped RGB triple into dest at destOffset.
	GetRGBItem(src []float32, srcOffset int, dest []byte, destOffset int)

	// GetRGBBuffer converts count raw samples, each component an
	// integer in [0, 2^bits-1], into dest, leaving alpha01 bytes
	// untouched after every triple.
	GetRGBBuffer(src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int)

	// GetOutputLength returns the number of bytes GetRGBBuffer needs to
	// hold the conversion of inputLength input components (samples times
	// NumComps).
	GetOutputLength(inputLength, alpha01 int) int

	// IsPassthrough reports whether this space, at the given bit depth,
	// copies input directly to output without conversion.
	IsPassthrough(bits int) bool

	// IsDefaultDecode reports whether decode (nil means "not present")
	// is equivalent to this space's default Decode array.
	IsDefaultDecode(decode []float64, bpc int) bool

	// defaultColor is the family's implicit default sample (glossary:
	// "Default sample"), expressed as already-scaled float components.
	defaultColor() []float32
}

// FormatError is the fatal, caller-surfaced error class for malformed
// color-space descriptors: missing whitepoint, an unresolvable name,
// an unrecognized array head, or an unrecognized Indexed lookup type.
type FormatError struct {
	Space  string
	Detail string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pdfcolor: %s: %s", e.Space, e.Detail)
}

// NewFormatError builds a FormatError for the named family.
func NewFormatError(space, detail string) *FormatError {
	return &FormatError{Space: space, Detail: detail}
}
