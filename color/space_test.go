package color

import "testing"

func TestFormatErrorMessage(t *testing.T) {
	err := NewFormatError("CalGray", "missing whitepoint")
	want := "pdfcolor: CalGray: missing whitepoint"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDeviceSpacesImplementSpace(t *testing.T) {
	var spaces = []Space{DeviceGray, DeviceRGB, DeviceCMYK}
	for _, sp := range spaces {
		if sp.NumComps() <= 0 {
			t.Errorf("%s: NumComps() = %d, want > 0", sp.Name(), sp.NumComps())
		}
		if !sp.UsesZeroToOneRange() {
			t.Errorf("%s: expected UsesZeroToOneRange() == true", sp.Name())
		}
	}
}
