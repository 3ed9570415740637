package qr

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/skip2/go-qrcode"
)

// Card code sizes in pixels.
const (
	MainSize    = 350
	AddressSize = 150
)

// Level is the fixed error correction level.
const Level = qrcode.Medium

var (
	// ErrEmpty is returned for empty content.
	ErrEmpty = errors.New("qr content is empty")
	// ErrTooLarge is returned when content does not fit the largest symbol.
	ErrTooLarge = errors.New("qr content exceeds symbol capacity")
)

// Synthesize encodes text and renders it to a width x height luminance bitmap.
// Modules are scaled with nearest neighbour so they stay sharp squares.
func Synthesize(text string, width, height int) (*image.Gray, error) {
	if text == "" {
		return nil, ErrEmpty
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid qr size %dx%d", width, height)
	}

	code, err := qrcode.New(text, Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTooLarge, err)
	}

	modules := render(code.Bitmap())
	scaled := imaging.Resize(modules, width, height, imaging.NearestNeighbor)
	return toGray(scaled), nil
}

// render draws one pixel per module, quiet zone included.
func render(bitmap [][]bool) *image.Gray {
	n := len(bitmap)
	img := image.NewGray(image.Rect(0, 0, n, n))
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func toGray(src *image.NRGBA) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetGray(x, y, color.Gray{Y: src.NRGBAAt(b.Min.X+x, b.Min.Y+y).R})
		}
	}
	return dst
}
