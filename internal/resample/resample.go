// Package resample loads a source image and scales it to the square
// sizes an icon set needs.
package resample

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/draw"

	// Source images are PNG in practice, but JPEG exports show up too.
	_ "image/jpeg"
	_ "image/png"
)

// Load reads and decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding source image %s: %w", path, err)
	}
	return img, nil
}

// Fit scales src onto a fresh size×size canvas. The source's aspect
// ratio is not preserved; icon sources are square by convention and
// anything else gets stretched to fit.
func Fit(src image.Image, size int) image.Image {
	if size < 1 {
		size = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Over, nil)
	return dst
}
