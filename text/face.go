package text

import (
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Face measures strings at one font size.
//
// Face is safe for concurrent use. HarfbuzzShaper instances are pooled
// because they carry mutable shaping buffers; the underlying font.Font is
// read-only.
type Face struct {
	source *Source
	size   float64
}

// shaperPool pools HarfbuzzShaper instances; they are cheap to reuse across
// sequential calls but not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// Size returns the face size in points.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics holds the face's vertical metrics, scaled to the face size.
// Descent is positive, measured downward from the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// LineHeight returns the recommended baseline-to-baseline distance.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() Metrics {
	// Shape an empty run: the output carries the font's line bounds even
	// when no glyphs are produced.
	out := f.shape(nil, di.DirectionLTR)
	return Metrics{
		Ascent:  fixedToFloat(out.LineBounds.Ascent),
		Descent: -fixedToFloat(out.LineBounds.Descent),
		LineGap: fixedToFloat(out.LineBounds.Gap),
	}
}

// Advance returns the shaped width of a single line of text. Kerning and
// ligatures are applied, so this can differ from the sum of per-rune widths.
func (f *Face) Advance(s string) float64 {
	if s == "" || f.size <= 0 {
		return 0
	}
	out := f.shape([]rune(s), mapDirection(DetectDirection(s)))
	return fixedToFloat(out.Advance)
}

// Measure returns the extent of the text. Lines are split on '\n'; the width
// is the widest line and the height covers every line at the face's line
// height. Empty text measures zero wide but still one line tall, so a text
// layer keeps a usable selection box while being typed into.
func (f *Face) Measure(s string) (w, h float64) {
	if f.size <= 0 {
		return 0, 0
	}
	m := f.Metrics()
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		w = max(w, f.Advance(line))
	}
	h = float64(len(lines))*(m.Ascent+m.Descent) + float64(len(lines)-1)*m.LineGap
	return w, h
}

// shape runs one harfbuzz shaping pass over runes.
func (f *Face) shape(runes []rune, dir di.Direction) shaping.Output {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(f.source.font),
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	shaperPool.Put(shaper)
	return out
}

// detectScript returns the script of the first non-space rune. Mixed-script
// text should be split into runs before measuring.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
