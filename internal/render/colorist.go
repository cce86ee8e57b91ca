package render

import (
	"specbar/internal/scheme"
	"specbar/internal/screen"
)

// chromeColor is the text color for the frame, title, and overlay.
// In static mode it is applied as the serialization fallback rather
// than written per cell.
const chromeColor = "#cdcecf"

// ColorMode selects how band colors reach the color plane.
type ColorMode int

const (
	// ColorOff is the mono profile: no color plane at all.
	ColorOff ColorMode = iota

	// ColorStatic paints the band area once per scheme change; glyph
	// drawing skips the color plane entirely.
	ColorStatic

	// ColorDynamic writes each band's scheme color alongside its
	// glyphs on every frame.
	ColorDynamic
)

// Colorist is the color strategy behind the band and chrome drawing.
// One concrete implementation is chosen at initialization; renderers
// never branch on the mode themselves.
type Colorist interface {
	// Text is the color chrome primitives write, or "" to skip color
	// writes for throughput.
	Text() string

	// Band is the color written with band glyphs this frame, or ""
	// when band color is handled out of band.
	Band(b int, sc scheme.Scheme) string

	// Apply repaints the full band area for a scheme change.
	Apply(buf *screen.Buffer, lay Layout, sc scheme.Scheme)
}

// BandColor returns a band's fixed scheme color. The scheme cycle
// walks right to left across the band area, so the rightmost band
// takes the first color and the position wraps independently of any
// single column.
func BandColor(b int, sc scheme.Scheme) string {
	return sc.Colors[(NumBands-1-b)%len(sc.Colors)]
}

// NewColorist returns the strategy for a mode.
func NewColorist(mode ColorMode) Colorist {
	switch mode {
	case ColorStatic:
		return staticColorist{}
	case ColorDynamic:
		return dynamicColorist{}
	default:
		return monoColorist{}
	}
}

type staticColorist struct{}

func (staticColorist) Text() string                   { return "" }
func (staticColorist) Band(int, scheme.Scheme) string { return "" }

func (staticColorist) Apply(buf *screen.Buffer, lay Layout, sc scheme.Scheme) {
	for b := 0; b < NumBands; b++ {
		color := BandColor(b, sc)
		col := lay.BandCol(b)
		for row := lay.BandTop; row <= lay.Baseline; row++ {
			buf.SetColor(col, row, color)
			buf.SetColor(col+1, row, color)
		}
	}
}

type dynamicColorist struct{}

func (dynamicColorist) Text() string { return chromeColor }

func (dynamicColorist) Band(b int, sc scheme.Scheme) string {
	return BandColor(b, sc)
}

func (dynamicColorist) Apply(*screen.Buffer, Layout, scheme.Scheme) {}

type monoColorist struct{}

func (monoColorist) Text() string                   { return "" }
func (monoColorist) Band(int, scheme.Scheme) string { return "" }

func (monoColorist) Apply(*screen.Buffer, Layout, scheme.Scheme) {}
