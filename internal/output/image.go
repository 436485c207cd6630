package output

import (
	"image"

	"golang.org/x/image/draw"

	"rayblaster/internal/render"
)

// ToNRGBA copies a frame into an opaque NRGBA image.
func ToNRGBA(f *render.Frame) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, p := range f.Pix {
		o := i * 4
		img.Pix[o] = p[0]
		img.Pix[o+1] = p[1]
		img.Pix[o+2] = p[2]
		img.Pix[o+3] = 255
	}
	return img
}

// Downscale shrinks img so that its longer side is at most maxDim, keeping the
// aspect ratio. Images already small enough are returned unchanged.
func Downscale(img *image.NRGBA, maxDim int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img
	}

	tw, th := maxDim, maxDim
	if w >= h {
		th = max(1, (h*maxDim+w/2)/w)
	} else {
		tw = max(1, (w*maxDim+h/2)/h)
	}

	// CatmullRom approximates Lanczos; frames are opaque so no premultiply pass.
	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
