package color

import (
	"image"

	"golang.org/x/image/draw"
)

// FillImage is a convenience wrapper around FillRGB for callers that
// want a standard image.Image instead of a raw byte buffer. It decodes
// comps through FillRGB at the source's own dimensions, then, if w/h
// differ from ow/oh, asks HighQualityResize for the final scale instead
// of the nearest-neighbor resize FillRGB would otherwise use.
func FillImage(sp Space, comps []byte, ow, oh, w, h, actualHeight, bpc int) *image.NRGBA {
	rgba := image.NewNRGBA(image.Rect(0, 0, ow, oh))
	// NRGBA stride includes one alpha byte per pixel beyond the RGB
	// triple, so alpha01=1 lines up FillRGB's spacing convention with
	// image.NRGBA's pixel layout.
	FillRGB(sp, rgba.Pix, comps, ow, oh, ow, oh, actualHeight, bpc, 1)
	for i := 3; i < len(rgba.Pix); i += 4 {
		rgba.Pix[i] = 255
	}
	if ow == w && oh == h {
		return rgba
	}
	return HighQualityResize(rgba, w, h)
}

// HighQualityResize scales img to (w,h) using Catmull-Rom interpolation,
// the higher-quality alternative to FillRGB's built-in nearest-neighbor
// resize for callers that can afford the extra cost.
func HighQualityResize(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
