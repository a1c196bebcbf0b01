package color

// FillRGB is the image-fill orchestrator: the "base-class" algorithm
// that would live on an abstract ColorSpace in an inheritance-based
// design, expressed here as a free function parameterized over Space
// instead.
//
// comps holds the source pixel buffer for an image of original
// dimensions (ow,oh) to be placed at target dimensions (w,h). actualHeight
// is the number of scanlines actually present in comps, which may be
// less than oh for a partially decoded image.
func FillRGB(sp Space, dest []byte, comps []byte, ow, oh, w, h, actualHeight, bpc, alpha01 int) {
	count := ow * oh
	needsResizing := ow != w || oh != h

	if sp.IsPassthrough(bpc) {
		if !needsResizing {
			di := 0
			for i := 0; i < ow*actualHeight; i++ {
				copy(dest[di:di+3], comps[i*3:i*3+3])
				di += 3 + alpha01
			}
			return
		}
		ResizeNearestNeighbor(dest, 0, comps, ow, oh, w, h, alpha01)
		return
	}

	numComps := sp.NumComps()
	maxInput := 1 << uint(bpc)
	if numComps == 1 && count > maxInput && sp.Name() != FamilyDeviceGray && sp.Name() != FamilyDeviceRGB {
		fillRGBViaColorMap(sp, dest, comps, ow, oh, w, h, actualHeight, bpc, alpha01, needsResizing, maxInput)
		return
	}

	if !needsResizing {
		sp.GetRGBBuffer(comps, 0, ow*actualHeight, dest, 0, bpc, alpha01)
		return
	}

	rgbBuf := make([]byte, count*3)
	sp.GetRGBBuffer(comps, 0, ow*actualHeight, rgbBuf, 0, bpc, 0)
	ResizeNearestNeighbor(dest, 0, rgbBuf, ow, oh, w, h, alpha01)
}

// fillRGBViaColorMap precomputes every possible input value's RGB triple
// once (cheap because the domain is only 2^bpc entries) and reuses the
// table per pixel, which is far cheaper than reconverting each sample
// for spaces like Indexed and Alternate.
func fillRGBViaColorMap(sp Space, dest []byte, comps []byte, ow, oh, w, h, actualHeight, bpc, alpha01 int, needsResizing bool, maxInput int) {
	palette := make([]byte, maxInput*3)
	packed := packIndices(maxInput, bpc)
	sp.GetRGBBuffer(packed, 0, maxInput, palette, 0, bpc, 0)

	count := ow * oh
	r := &bitReader{src: comps, bitPos: 0}

	if !needsResizing {
		di := 0
		for i := 0; i < ow*actualHeight; i++ {
			idx := int(r.read(bpc))
			copy(dest[di:di+3], palette[idx*3:idx*3+3])
			di += 3 + alpha01
		}
		return
	}

	rgbBuf := make([]byte, count*3)
	for i := 0; i < ow*actualHeight; i++ {
		idx := int(r.read(bpc))
		copy(rgbBuf[i*3:i*3+3], palette[idx*3:idx*3+3])
	}
	ResizeNearestNeighbor(dest, 0, rgbBuf, ow, oh, w, h, alpha01)
}

// packIndices packs the values 0..n-1 at bpc bits each, used only to
// drive the color-map precompute call through the same GetRGBBuffer
// entry point every other sample path uses.
func packIndices(n, bpc int) []byte {
	totalBits := n * bpc
	out := make([]byte, (totalBits+7)/8)
	bitPos := 0
	for v := 0; v < n; v++ {
		for b := bpc - 1; b >= 0; b-- {
			if (v>>uint(b))&1 != 0 {
				out[bitPos>>3] |= 1 << uint(7-(bitPos&7))
			}
			bitPos++
		}
	}
	return out
}
