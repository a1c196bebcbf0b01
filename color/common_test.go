package color

import (
	"testing"

	"github.com/wudi/pdfcolor/observability"
)

func TestClampByte(t *testing.T) {
	cases := []struct {
		in   float32
		want byte
	}{
		{-10, 0},
		{0, 0},
		{254.6, 255},
		{300, 255},
		{127.5, 128},
	}
	for _, c := range cases {
		if got := ClampByte(c.in); got != c.want {
			t.Errorf("ClampByte(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestBitReaderPacksAndUnpacks(t *testing.T) {
	// Four 2-bit samples packed into one byte: 0b01_10_11_00.
	src := []byte{0b01_10_11_00}
	r := &bitReader{src: src}
	want := []uint32{1, 2, 3, 0}
	for i, w := range want {
		if got := r.read(2); got != w {
			t.Fatalf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestBitReaderSixteenBit(t *testing.T) {
	src := []byte{0x01, 0x02}
	r := &bitReader{src: src}
	if got := r.read(16); got != 0x0102 {
		t.Fatalf("got %#x, want 0x0102", got)
	}
}

func TestSampleScale(t *testing.T) {
	if got := sampleScale(8); got != 1.0/255.0 {
		t.Fatalf("sampleScale(8) = %v, want 1/255", got)
	}
	if got := sampleScale(1); got != 1 {
		t.Fatalf("sampleScale(1) = %v, want 1", got)
	}
}

func TestOutputLength(t *testing.T) {
	if got := outputLength(12, 4, 0); got != 9 {
		t.Fatalf("outputLength(12,4,0) = %d, want 9", got)
	}
	if got := outputLength(12, 4, 1); got != 12 {
		t.Fatalf("outputLength(12,4,1) = %d, want 12", got)
	}
	if got := outputLength(12, 0, 0); got != 0 {
		t.Fatalf("outputLength with 0 comps should be 0, got %d", got)
	}
}

func TestIsDefaultDecodeCommon(t *testing.T) {
	log := observability.NopLogger{}
	if !isDefaultDecodeCommon(log, nil, 3) {
		t.Fatal("nil decode is always default")
	}
	if !isDefaultDecodeCommon(log, []float64{0, 1, 0, 1, 0, 1}, 3) {
		t.Fatal("[0,1]*3 is the default decode")
	}
	if isDefaultDecodeCommon(log, []float64{1, 0, 0, 1, 0, 1}, 3) {
		t.Fatal("a reversed first pair is not default")
	}
	// Wrong length logs a warning but is still treated as default.
	if !isDefaultDecodeCommon(log, []float64{0, 1}, 3) {
		t.Fatal("mismatched-length decode should be treated as default")
	}
}

func TestResizeNearestNeighborUpscale(t *testing.T) {
	// 1x1 source, scaled to 2x2: every output pixel is the same source
	// pixel.
	rgb := []byte{10, 20, 30}
	dest := make([]byte, 2*2*3)
	ResizeNearestNeighbor(dest, 0, rgb, 1, 1, 2, 2, 0)
	for i := 0; i < 4; i++ {
		off := i * 3
		if dest[off] != 10 || dest[off+1] != 20 || dest[off+2] != 30 {
			t.Fatalf("pixel %d = %v, want (10,20,30)", i, dest[off:off+3])
		}
	}
}

func TestResizeNearestNeighborIdentity(t *testing.T) {
	rgb := []byte{1, 2, 3, 4, 5, 6}
	dest := make([]byte, 6)
	ResizeNearestNeighbor(dest, 0, rgb, 2, 1, 2, 1, 0)
	for i, b := range rgb {
		if dest[i] != b {
			t.Fatalf("byte %d = %d, want %d", i, dest[i], b)
		}
	}
}
