// Package texture handles image decoding and OpenGL texture upload.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxDimension caps decoded images to a size every GL 4.1 implementation
// accepts as a texture.
const MaxDimension = 4096

// Image is a decoded image ready for GPU upload: tightly packed RGBA,
// top-left origin.
type Image struct {
	Width  int
	Height int
	Pixels []byte
}

// Decode reads and decodes an image file (PNG, JPEG or WebP), converting
// to RGBA and downscaling if it exceeds MaxDimension.
func Decode(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return FromImage(src), nil
}

// FromImage converts any image.Image into an upload-ready Image.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w > MaxDimension || h > MaxDimension {
		w, h = fitWithin(w, h, MaxDimension)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
		return &Image{Width: w, Height: h, Pixels: dst.Pix}
	}

	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Stride != 4*w {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		rgba = dst
	}
	return &Image{Width: w, Height: h, Pixels: rgba.Pix}
}

// AspectRatio returns width/height.
func (img *Image) AspectRatio() float32 {
	if img.Height == 0 {
		return 1
	}
	return float32(img.Width) / float32(img.Height)
}

// fitWithin scales (w, h) down proportionally so both fit in max.
func fitWithin(w, h, max int) (int, int) {
	if w >= h {
		return max, h * max / w
	}
	return w * max / h, max
}
