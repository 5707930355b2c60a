package text

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("text: empty font data")

// Source is a loaded font file. One Source can create any number of faces at
// different sizes; parse once and share it across the application.
//
// Source is safe for concurrent use after creation.
type Source struct {
	// font is the parsed go-text font. font.Font is read-only and safe for
	// concurrent use; per-call font.Face wrappers are created on demand.
	font *font.Font
}

// NewSource parses TTF or OTF font data. The data slice is not retained.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Source{font: face.Font}, nil
}

// NewSourceFromFile loads and parses a font file.
func NewSourceFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewSource(data)
}

// Face returns a measuring face at the given size in points. Sizes at or
// below zero yield a face that measures everything as zero.
func (s *Source) Face(size float64) *Face {
	if s == nil {
		panic("text: Face called on nil Source")
	}
	return &Face{source: s, size: max(0, size)}
}
