package color

import "github.com/wudi/pdfcolor/observability"

// ClampByte saturates v to the [0,255] range of a clamped-byte
// destination container.
func ClampByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}

// bitReader walks a packed sample buffer bits-per-component at a time,
// supporting bit depths of 1, 2, 4, 8, and 16.
type bitReader struct {
	src    []byte
	bitPos int
}

func (r *bitReader) read(bits int) uint32 {
	var v uint32
	for i := 0; i < bits; i++ {
		byteIdx := r.bitPos >> 3
		shift := 7 - (r.bitPos & 7)
		var bit uint32
		if byteIdx < len(r.src) {
			bit = uint32(r.src[byteIdx]>>uint(shift)) & 1
		}
		v = v<<1 | bit
		r.bitPos++
	}
	return v
}

// sampleFunc converts one sample's components, already scaled into
// [0,1], into an RGB triple in [0,255] float space.
type sampleFunc func(comps []float32) [3]float32

// bufferConvert drives the common "unpack bits-per-component samples,
// evaluate, write clamped bytes with alpha spacing" loop shared by
// DeviceGray, DeviceRGB, DeviceCMYK, CalGray and CalRGB's buffer paths.
// Lab runs its own loop (see Lab.GetRGBBuffer).
func bufferConvert(fn sampleFunc, numComps int, src []byte, srcOffset, count int, dest []byte, destOffset, bits, alpha01 int) {
	r := &bitReader{src: src, bitPos: srcOffset * 8}
	scale := sampleScale(bits)
	comps := make([]float32, numComps)
	di := destOffset
	for s := 0; s < count; s++ {
		for c := 0; c < numComps; c++ {
			comps[c] = float32(r.read(bits)) * scale
		}
		rgb := fn(comps)
		dest[di] = ClampByte(rgb[0])
		dest[di+1] = ClampByte(rgb[1])
		dest[di+2] = ClampByte(rgb[2])
		di += 3 + alpha01
	}
}

// sampleScale returns the 1/(2^bits-1) factor raw sample integers are
// implicitly scaled by.
func sampleScale(bits int) float32 {
	maxVal := (uint32(1) << uint(bits)) - 1
	if maxVal == 0 {
		return 0
	}
	return 1 / float32(maxVal)
}

// outputLength truncates toward zero.
func outputLength(inputLength, numComps, alpha01 int) int {
	if numComps == 0 {
		return 0
	}
	count := inputLength / numComps
	return count * (3 + alpha01)
}

// isDefaultDecodeCommon reports whether decode is equivalent to the
// default decode array: absent, or every even entry 0 and every odd
// entry 1. A length mismatch against 2*numComps logs a warning and is
// treated as default.
func isDefaultDecodeCommon(log observability.Logger, decode []float64, numComps int) bool {
	if decode == nil {
		return true
	}
	if len(decode) != 2*numComps {
		log.Warn("decode array has unexpected length",
			observability.Int("got", len(decode)),
			observability.Int("want", 2*numComps))
		return true
	}
	for i := 0; i < numComps; i++ {
		if decode[2*i] != 0 || decode[2*i+1] != 1 {
			return false
		}
	}
	return true
}

// ResizeNearestNeighbor resizes a packed RGB buffer from (w1,h1) to
// (w2,h2) using nearest-neighbor sampling, writing into dest at
// destOffset with alpha01 bytes of padding after every output triple.
func ResizeNearestNeighbor(dest []byte, destOffset int, rgbBuf []byte, w1, h1, w2, h2, alpha01 int) {
	if alpha01 != 1 {
		alpha01 = 0
	}
	if w2 <= 0 || h2 <= 0 {
		return
	}
	xScaled := make([]int, w2)
	for i := 0; i < w2; i++ {
		xScaled[i] = (i * w1 / w2) * 3
	}
	di := destOffset
	for y := 0; y < h2; y++ {
		py := (y * h1 / h2) * w1 * 3
		for x := 0; x < w2; x++ {
			si := py + xScaled[x]
			dest[di] = rgbBuf[si]
			dest[di+1] = rgbBuf[si+1]
			dest[di+2] = rgbBuf[si+2]
			di += 3 + alpha01
		}
	}
}
