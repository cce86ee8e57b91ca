package render

import (
	"specbar/internal/scheme"
	"specbar/internal/screen"
	"specbar/internal/source"
	"specbar/internal/style"
)

const title = "S P E C B A R"

// Renderer owns the frame buffer and all drawing state: active style,
// active scheme, color strategy, and border visibility. It is the
// single writer of the buffer; one instance is created at startup and
// passed to the render loop.
type Renderer struct {
	buf      *screen.Buffer
	lay      Layout
	styles   *style.Cycler
	schemes  *scheme.Cycler
	colorist Colorist
	border   bool
}

// New builds a renderer for a layout and color mode and draws the
// initial chrome (border, title, VU ramp, static scheme colors).
func New(lay Layout, mode ColorMode, styles *style.Cycler, schemes *scheme.Cycler) *Renderer {
	r := &Renderer{
		buf:      screen.New(lay.Width, lay.Height, mode != ColorOff),
		lay:      lay,
		styles:   styles,
		schemes:  schemes,
		colorist: NewColorist(mode),
		border:   true,
	}
	r.RedrawChrome()
	return r
}

// Buffer exposes the frame buffer for serialization and tests.
func (r *Renderer) Buffer() *screen.Buffer { return r.buf }

// View serializes the buffer for display. Cells the color plane does
// not cover fall back to the chrome color.
func (r *Renderer) View() string { return r.buf.ANSI(chromeColor) }

// Layout returns the renderer's region layout.
func (r *Renderer) Layout() Layout { return r.lay }

// StyleName returns the active style name.
func (r *Renderer) StyleName() string { return r.styles.Active().Name }

// StyleIndex returns the active style table index.
func (r *Renderer) StyleIndex() int { return r.styles.Index() }

// SchemeName returns the active scheme name.
func (r *Renderer) SchemeName() string { return r.schemes.Active().Name }

// Border reports border visibility.
func (r *Renderer) Border() bool { return r.border }

// RedrawChrome clears the glyph plane and repaints everything that is
// not per-frame: border, title, VU ramp colors, and (static mode) the
// band-area scheme colors. Band and VU glyphs are gone afterwards;
// the caller follows up with a DrawFrame of its last-known data.
func (r *Renderer) RedrawChrome() {
	r.buf.Clear()
	tc := r.colorist.Text()
	if r.border {
		r.buf.DrawBox(0, 0, r.lay.Width, r.lay.Height, r.styles.Active().Box, tc)
	}
	r.buf.WriteString((r.lay.Width-len([]rune(title)))/2, r.lay.TitleRow, title, tc)
	r.paintVURamp()
	r.colorist.Apply(r.buf, r.lay, r.schemes.Active())
}

// DrawFrame redraws the per-frame regions: the VU meter and all
// sixteen bands. Every band is repainted in full; there is no diffing
// against the previous frame.
func (r *Renderer) DrawFrame(f source.Frame) {
	r.DrawVU(f.VU)
	for b := 0; b < NumBands; b++ {
		r.DrawBand(b, int(f.Peaks[b]))
	}
}

// CycleStyle advances the active style and repaints the chrome, which
// uses the new box glyphs. Returns the new style name for the status
// overlay.
func (r *Renderer) CycleStyle() string {
	r.styles.Next()
	r.RedrawChrome()
	return r.styles.Active().Name
}

// CycleScheme advances (or retreats) the active scheme and reapplies
// it to the band area. Returns the new scheme name.
func (r *Renderer) CycleScheme(back bool) string {
	if back {
		r.schemes.Prev()
	} else {
		r.schemes.Next()
	}
	r.colorist.Apply(r.buf, r.lay, r.schemes.Active())
	return r.schemes.Active().Name
}

// ToggleBorder flips border visibility and repaints the chrome.
func (r *Renderer) ToggleBorder() bool {
	r.border = !r.border
	r.RedrawChrome()
	return r.border
}

// ShowOverlay writes a transient text block into the overlay region,
// each line centered. Lines beyond the region are dropped.
func (r *Renderer) ShowOverlay(lines []string) {
	r.ClearOverlay()
	for i, line := range lines {
		if i >= r.lay.OverlayRows {
			break
		}
		x := (r.lay.Width - len([]rune(line))) / 2
		r.buf.WriteString(x, r.lay.OverlayTop+i, line, r.colorist.Text())
	}
}

// ClearOverlay blanks the overlay region, leaving the border columns
// alone.
func (r *Renderer) ClearOverlay() {
	r.buf.FillRect(1, r.lay.OverlayTop, r.lay.Width-2, r.lay.OverlayRows, screen.Blank, "")
}
