package text

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the resolved paragraph direction of a string.
type Direction uint8

// Paragraph directions.
const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// DetectDirection resolves the paragraph direction of s with the Unicode
// bidi algorithm. Text without any strong directional character is LTR.
func DetectDirection(s string) Direction {
	if s == "" {
		return DirectionLTR
	}
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return DirectionLTR
	}
	if !p.IsLeftToRight() {
		return DirectionRTL
	}
	return DirectionLTR
}

// mapDirection converts a Direction to go-text's shaping direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
