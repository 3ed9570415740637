package export

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
)

// ErrIO wraps every failure to write an exported card.
var ErrIO = errors.New("export failed")

// Sink persists a finished card image.
type Sink interface {
	// Save writes img, using suggestedName as the file name, and returns where it went.
	Save(img image.Image, suggestedName string) (string, error)
}

// SuggestedName is the default file name for a card exported at t.
func SuggestedName(t time.Time) string {
	return fmt.Sprintf("gem-wallet-%s.jpg", t.Format("02-01-2006-15-04"))
}

// FileSink writes JPEG files into a directory.
type FileSink struct {
	Dir     string
	Quality int
}

// NewFileSink creates a FileSink writing into dir with the given JPEG quality
func NewFileSink(dir string, quality int) *FileSink {
	return &FileSink{Dir: dir, Quality: quality}
}

// Save encodes img as JPEG at Dir/suggestedName. Only the base name of
// suggestedName is used, so it cannot escape Dir.
func (s *FileSink) Save(img image.Image, suggestedName string) (string, error) {
	if img == nil {
		return "", fmt.Errorf("%w: no card to save", ErrIO)
	}
	name := filepath.Base(suggestedName)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: invalid file name %q", ErrIO, suggestedName)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}

	path := filepath.Join(s.Dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(s.Quality)); err != nil {
		f.Close()
		return "", fmt.Errorf("%w: failed to encode jpeg: %w", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return path, nil
}
