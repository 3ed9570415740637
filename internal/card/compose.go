package card

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/AlexZinkM/gem/internal/model"
)

// ink is transparent black: glyphs pull every channel, alpha included, toward zero.
var ink = color.NRGBA{0, 0, 0, 0}

// RenderedCard is a composed card. It is owned by the caller.
type RenderedCard struct {
	Image  *image.NRGBA
	Width  int
	Height int
}

// Compose draws state and the two QR bitmaps onto a copy of tpl.
// A nil bitmap leaves its area showing the template. The same inputs
// always produce the same pixels.
func Compose(tpl *Template, state model.GiftCardState, qrMain, qrAddr *image.Gray, ff *FontFace) (*RenderedCard, error) {
	canvas := imaging.Clone(tpl.img)

	faces := ff.newFaceSet()
	defer faces.close()
	for _, p := range Layout {
		face, err := faces.get(p.Size)
		if err != nil {
			return nil, err
		}
		drawText(canvas, face, p.X, p.Y, Text(p.Field, state))
	}

	for y := SeparatorTopY; y <= SeparatorEndY; y++ {
		setPixel(canvas, SeparatorX, y, ink)
	}

	blitGray(canvas, qrMain, MainQRX, MainQRY)
	blitGray(canvas, qrAddr, AddressQRX, AddressQRY)

	b := canvas.Bounds()
	return &RenderedCard{Image: canvas, Width: b.Dx(), Height: b.Dy()}, nil
}

// drawText renders s with its top edge at y, blending each channel by glyph coverage.
func drawText(dst *image.NRGBA, face font.Face, x, y int, s string) {
	dot := fixed.Point26_6{
		X: fixed.I(x),
		Y: fixed.I(y) + face.Metrics().Ascent,
	}
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if ok {
			blendMask(dst, dr, mask, maskp)
		}
		dot.X += advance
		prev = r
	}
}

func blendMask(dst *image.NRGBA, dr image.Rectangle, mask image.Image, maskp image.Point) {
	clipped := dr.Intersect(dst.Bounds())
	for py := clipped.Min.Y; py < clipped.Max.Y; py++ {
		for px := clipped.Min.X; px < clipped.Max.X; px++ {
			_, _, _, a := mask.At(maskp.X+px-dr.Min.X, maskp.Y+py-dr.Min.Y).RGBA()
			v := a >> 8
			if v == 0 {
				continue
			}
			c := dst.NRGBAAt(px, py)
			dst.SetNRGBA(px, py, color.NRGBA{
				R: weighted(c.R, ink.R, v),
				G: weighted(c.G, ink.G, v),
				B: weighted(c.B, ink.B, v),
				A: weighted(c.A, ink.A, v),
			})
		}
	}
}

// weighted returns c*(1-v) + k*v with v in 0..255.
func weighted(c, k uint8, v uint32) uint8 {
	return uint8((uint32(c)*(255-v) + uint32(k)*v + 127) / 255)
}

// blitGray copies src at (x0,y0) as opaque grey pixels.
func blitGray(dst *image.NRGBA, src *image.Gray, x0, y0 int) {
	if src == nil {
		return
	}
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			l := src.GrayAt(x, y).Y
			setPixel(dst, x0+x-b.Min.X, y0+y-b.Min.Y, color.NRGBA{l, l, l, 255})
		}
	}
}

func setPixel(dst *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(dst.Bounds()) {
		dst.SetNRGBA(x, y, c)
	}
}

// Flatten returns a copy of img with every pixel made opaque, keeping its
// colour channels. Preview and JPEG output go through it.
func Flatten(img *image.NRGBA) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 255
	}
	return out
}
