package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a supersampled frame to width×height with CatmullRom
// filtering (approximates Lanczos). Frames are opaque, so no alpha
// premultiplication is needed.
func Downsample(img image.Image, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		if n, ok := img.(*image.NRGBA); ok {
			return n
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
