package card

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Template is the base artwork cards are drawn on. It is never modified.
type Template struct {
	img *image.NRGBA
}

// NewTemplate copies img into a Template.
func NewTemplate(img image.Image) (*Template, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("template image is empty")
	}
	return &Template{img: imaging.Clone(img)}, nil
}

// LoadTemplate decodes the template image at path.
func LoadTemplate(path string) (*Template, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return NewTemplate(img)
}

// Bounds returns the template dimensions
func (t *Template) Bounds() image.Rectangle {
	return t.img.Bounds()
}

// FontFace is a parsed font; faces for each point size are built from it on demand.
type FontFace struct {
	font *opentype.Font
}

// ParseFont parses TrueType or OpenType font data.
func ParseFont(data []byte) (*FontFace, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontFace{font: f}, nil
}

// LoadFont reads and parses the font file at path.
func LoadFont(path string) (*FontFace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return ParseFont(data)
}

// faceSet hands out one face per point size for a single compose call.
// opentype faces are not safe for concurrent use, so they are never shared between calls.
type faceSet struct {
	ff    *FontFace
	faces map[float64]font.Face
}

func (ff *FontFace) newFaceSet() *faceSet {
	return &faceSet{ff: ff, faces: map[float64]font.Face{}}
}

func (fs *faceSet) get(size float64) (font.Face, error) {
	if face, ok := fs.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(fs.ff.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fpt face: %w", size, err)
	}
	fs.faces[size] = face
	return face, nil
}

func (fs *faceSet) close() {
	for _, face := range fs.faces {
		face.Close()
	}
}
