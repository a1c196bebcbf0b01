package color

import "testing"

// With a flat whitepoint, an identity matrix and gamma, and pure white
// input, both Bradford stages collapse (the first is skipped outright,
// the second maps flat exactly onto D65), so the result is exact white
// with no rounding slack needed.
func TestCalRGBFlatWhitePointRoundTrips(t *testing.T) {
	cr, err := NewCalRGB(CalRGBParams{WhitePoint: [3]float64{1, 1, 1}}, nil)
	if err != nil {
		t.Fatalf("NewCalRGB: %v", err)
	}
	got := cr.GetRGB([]float32{1, 1, 1}, 0)
	if got != [3]byte{255, 255, 255} {
		t.Fatalf("got %v, want (255,255,255)", got)
	}
}

func TestCalRGBBlackInputIsBlack(t *testing.T) {
	cr, err := NewCalRGB(CalRGBParams{WhitePoint: whitePointD65}, nil)
	if err != nil {
		t.Fatalf("NewCalRGB: %v", err)
	}
	got := cr.GetRGB([]float32{0, 0, 0}, 0)
	if got != [3]byte{0, 0, 0} {
		t.Fatalf("got %v, want (0,0,0)", got)
	}
}

// A whitepoint close to, but not exactly, D65 still runs both Bradford
// stages and lands a few units off pure white in the green/blue
// channels; see DESIGN.md for why this is treated as correct rather
// than chased to match a rougher illustrative figure.
func TestCalRGBNearD65WhitePoint(t *testing.T) {
	cr, err := NewCalRGB(CalRGBParams{WhitePoint: [3]float64{0.9505, 1, 1.0888}}, nil)
	if err != nil {
		t.Fatalf("NewCalRGB: %v", err)
	}
	got := cr.GetRGB([]float32{1, 1, 1}, 0)
	want := [3]byte{255, 249, 244}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNewCalRGBMissingWhitePoint(t *testing.T) {
	if _, err := NewCalRGB(CalRGBParams{}, nil); err == nil {
		t.Fatal("expected FormatError for missing whitepoint")
	}
}

func TestNewCalRGBDefaultsGammaAndMatrix(t *testing.T) {
	cr, err := NewCalRGB(CalRGBParams{WhitePoint: [3]float64{1, 1, 1}}, nil)
	if err != nil {
		t.Fatalf("NewCalRGB: %v", err)
	}
	if cr.gamma != [3]float64{1, 1, 1} {
		t.Fatalf("gamma = %v, want (1,1,1)", cr.gamma)
	}
	if cr.matrix != identityMatrix9 {
		t.Fatalf("matrix = %v, want identity", cr.matrix)
	}
}

func TestNewCalRGBNegativeGammaResets(t *testing.T) {
	cr, err := NewCalRGB(CalRGBParams{
		WhitePoint: [3]float64{1, 1, 1},
		Gamma:      [3]float64{-1, 1, 1},
	}, nil)
	if err != nil {
		t.Fatalf("NewCalRGB: %v", err)
	}
	if cr.gamma != [3]float64{1, 1, 1} {
		t.Fatalf("gamma = %v, want (1,1,1) after reset", cr.gamma)
	}
}

func TestCalRGBIsDefaultDecode(t *testing.T) {
	cr, err := NewCalRGB(CalRGBParams{WhitePoint: [3]float64{1, 1, 1}}, nil)
	if err != nil {
		t.Fatalf("NewCalRGB: %v", err)
	}
	if !cr.IsDefaultDecode(nil, 8) {
		t.Fatal("nil decode should be default")
	}
	if !cr.IsDefaultDecode([]float64{0, 1, 0, 1, 0, 1}, 8) {
		t.Fatal("[0,1]*3 decode should be default")
	}
	if cr.IsDefaultDecode([]float64{1, 0, 0, 1, 0, 1}, 8) {
		t.Fatal("reversed decode should not be default")
	}
}

func TestGammaPowShortcut(t *testing.T) {
	if got := gammaPow(1, 99); got != 1 {
		t.Fatalf("gammaPow(1, 99) = %v, want 1", got)
	}
	if got := gammaPow(0.5, 1); got != 0.5 {
		t.Fatalf("gammaPow(0.5, 1) = %v, want 0.5", got)
	}
}
