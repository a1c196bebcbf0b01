package color

import "testing"

func invertTint(src, dst []float32) {
	dst[0] = 1 - src[0]
}

func replicateTint(src, dst []float32) {
	for i := range dst {
		dst[i] = src[0]
	}
}

func TestAlternateGetRGBItemTwoPass(t *testing.T) {
	a := NewAlternate(1, DeviceGray, invertTint)
	got := a.GetRGB([]float32{0.3}, 0)
	want := DeviceGray.GetRGB([]float32{0.7}, 0)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAlternateGetRGBBufferShortCircuit(t *testing.T) {
	a := NewAlternate(1, DeviceRGB, replicateTint)
	src := []byte{255, 0}
	dest := make([]byte, 6)
	a.GetRGBBuffer(src, 0, 2, dest, 0, 8, 0)
	if dest[0] != 255 || dest[1] != 255 || dest[2] != 255 {
		t.Fatalf("sample 0 = %v, want white", dest[0:3])
	}
	if dest[3] != 0 || dest[4] != 0 || dest[5] != 0 {
		t.Fatalf("sample 1 = %v, want black", dest[3:6])
	}
}

func TestAlternateDefaultColorIsAllOnes(t *testing.T) {
	a := NewAlternate(3, DeviceRGB, replicateTint)
	def := a.defaultColor()
	if len(def) != 3 {
		t.Fatalf("len(defaultColor()) = %d, want 3", len(def))
	}
	for i, v := range def {
		if v != 1 {
			t.Fatalf("defaultColor()[%d] = %v, want 1", i, v)
		}
	}
}

func TestAlternateGetOutputLength(t *testing.T) {
	a := NewAlternate(2, DeviceRGB, replicateTint)
	// 2 DeviceN input components per sample, feeding a 3-component base:
	// 4 inputs are 2 samples, i.e. 4*3/2 = 6 base components, which
	// DeviceRGB turns into 2 RGB triples (6 bytes with alpha01=0).
	got := a.GetOutputLength(4, 0)
	want := DeviceRGB.GetOutputLength(6, 0)
	if got != want {
		t.Fatalf("GetOutputLength(4,0) = %d, want %d", got, want)
	}
}

func TestAlternateIsDefaultDecode(t *testing.T) {
	a := NewAlternate(2, DeviceRGB, replicateTint)
	if !a.IsDefaultDecode(nil, 8) {
		t.Fatal("nil decode should be default")
	}
	if !a.IsDefaultDecode([]float64{0, 1, 0, 1}, 8) {
		t.Fatal("[0,1]*2 decode should be default")
	}
	if a.IsDefaultDecode([]float64{1, 0, 0, 1}, 8) {
		t.Fatal("reversed decode should not be default")
	}
}
