package color

import "testing"

func TestDeviceGrayGetRGB(t *testing.T) {
	cases := []struct {
		in   float32
		want byte
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
	}
	for _, c := range cases {
		got := DeviceGray.GetRGB([]float32{c.in}, 0)
		if got[0] != c.want || got[1] != c.want || got[2] != c.want {
			t.Errorf("GetRGB(%v) = %v, want (%d,%d,%d)", c.in, got, c.want, c.want, c.want)
		}
	}
}

func TestDeviceGrayGetRGBBufferLiteralBytes(t *testing.T) {
	src := []byte{0, 127, 255}
	dest := make([]byte, 9)
	DeviceGray.GetRGBBuffer(src, 0, 3, dest, 0, 8, 0)
	want := []byte{0, 0, 0, 127, 127, 127, 255, 255, 255}
	for i, b := range want {
		if dest[i] != b {
			t.Fatalf("byte %d = %d, want %d", i, dest[i], b)
		}
	}
}

func TestDeviceRGBAlphaSpacingLeavesAlphaByteUntouched(t *testing.T) {
	src := []byte{10, 20, 30}
	dest := []byte{10, 20, 30, 0x42}
	DeviceRGB.GetRGBBuffer(src, 0, 1, dest, 0, 8, 1)
	if dest[0] != 10 || dest[1] != 20 || dest[2] != 30 {
		t.Fatalf("rgb = %v, want (10,20,30)", dest[0:3])
	}
	if dest[3] != 0x42 {
		t.Fatalf("alpha byte = %#x, want untouched 0x42", dest[3])
	}
}

func TestDeviceRGBPassthrough(t *testing.T) {
	if !DeviceRGB.IsPassthrough(8) {
		t.Fatal("expected DeviceRGB to be passthrough at 8 bits")
	}
	if DeviceRGB.IsPassthrough(16) {
		t.Fatal("expected DeviceRGB to not be passthrough at 16 bits")
	}

	src := []byte{10, 20, 30, 40, 50, 60}
	dest := make([]byte, 6)
	DeviceRGB.GetRGBBuffer(src, 0, 2, dest, 0, 8, 0)
	for i := range src {
		if dest[i] != src[i] {
			t.Fatalf("passthrough mismatch at %d: got %d want %d", i, dest[i], src[i])
		}
	}
}

func TestDeviceCMYKBlackAndWhite(t *testing.T) {
	white := DeviceCMYK.GetRGB([]float32{0, 0, 0, 0}, 0)
	if white != [3]byte{255, 255, 255} {
		t.Fatalf("expected pure white, got %v", white)
	}

	k := DeviceCMYK.GetRGB([]float32{0, 0, 0, 1}, 0)
	want := [3]byte{44, 46, 53}
	if k != want {
		t.Fatalf("pure-K polynomial output = %v, want %v", k, want)
	}
}

func TestDeviceCMYKPolynomialCorners(t *testing.T) {
	cases := []struct {
		cmyk [4]float32
		want [3]byte
	}{
		{[4]float32{0, 0, 0, 0}, [3]byte{255, 255, 255}},
		{[4]float32{1, 0, 0, 0}, [3]byte{0, 233, 242}},
		{[4]float32{0, 1, 0, 0}, [3]byte{251, 49, 153}},
		{[4]float32{0, 0, 1, 0}, [3]byte{255, 235, 61}},
		{[4]float32{0, 0, 0, 1}, [3]byte{44, 46, 53}},
		{[4]float32{1, 1, 1, 1}, [3]byte{6, 0, 12}},
	}
	for _, c := range cases {
		got := DeviceCMYK.GetRGB(c.cmyk[:], 0)
		if got != c.want {
			t.Errorf("cmyk%v = %v, want %v", c.cmyk, got, c.want)
		}
	}
}

func TestDeviceSingletonByNumComps(t *testing.T) {
	cases := []struct {
		n    int
		want Space
		ok   bool
	}{
		{1, DeviceGray, true},
		{3, DeviceRGB, true},
		{4, DeviceCMYK, true},
		{2, nil, false},
	}
	for _, c := range cases {
		got, ok := DeviceSingletonByNumComps(c.n)
		if ok != c.ok {
			t.Fatalf("N=%d: ok = %v, want %v", c.n, ok, c.ok)
		}
		if ok && got != c.want {
			t.Fatalf("N=%d: got %v, want %v", c.n, got, c.want)
		}
	}
}

func TestDeviceGetOutputLength(t *testing.T) {
	if got := DeviceRGB.GetOutputLength(9, 0); got != 9 {
		t.Fatalf("GetOutputLength(9,0) = %d, want 9", got)
	}
	if got := DeviceRGB.GetOutputLength(9, 1); got != 12 {
		t.Fatalf("GetOutputLength(9,1) = %d, want 12", got)
	}
}

func TestDeviceIsDefaultDecode(t *testing.T) {
	if !DeviceRGB.IsDefaultDecode(nil, 8) {
		t.Fatal("nil decode should be default")
	}
	if !DeviceRGB.IsDefaultDecode([]float64{0, 1, 0, 1, 0, 1}, 8) {
		t.Fatal("[0,1]*3 decode should be default")
	}
	if DeviceRGB.IsDefaultDecode([]float64{1, 0, 0, 1, 0, 1}, 8) {
		t.Fatal("reversed decode should not be default")
	}
}
