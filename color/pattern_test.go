package color

import "testing"

func TestPatternStructuralProperties(t *testing.T) {
	p := NewPattern(DeviceRGB, nil)
	if p.Name() != FamilyPattern {
		t.Fatalf("Name() = %v, want FamilyPattern", p.Name())
	}
	if p.NumComps() != 0 {
		t.Fatalf("NumComps() = %d, want 0", p.NumComps())
	}
	if p.Base() != DeviceRGB {
		t.Fatal("Base() should return the constructed base space")
	}
	if p.GetOutputLength(10, 0) != 0 {
		t.Fatal("GetOutputLength should always be 0")
	}
	if !p.IsDefaultDecode(nil, 8) {
		t.Fatal("IsDefaultDecode should always be true")
	}
}

func TestPatternGetRGBItemPanics(t *testing.T) {
	p := NewPattern(nil, nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected GetRGBItem on a Pattern to panic")
		}
	}()
	var dest [3]byte
	p.GetRGBItem([]float32{0}, 0, dest[:], 0)
}
