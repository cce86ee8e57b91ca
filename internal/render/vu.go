package render

import "specbar/internal/source"

const (
	vuFilled = '█'
	vuShade  = '░'
)

// VU ramp zone colors, center outwards: green, then yellow, then red.
// The zone widths are uneven on purpose (6/5/4).
const (
	vuGreen  = "#81b29a"
	vuYellow = "#dbc074"
	vuRed    = "#c94f6d"
)

// DrawVU paints the two mirrored gauges. Both sides run the same
// comparison against the same level, which is what guarantees mirror
// symmetry. Glyphs only: the color backing is a static ramp painted
// once by paintVURamp, never per frame.
func (r *Renderer) DrawVU(level byte) {
	for i := 0; i < source.MaxVU; i++ {
		ch := vuShade
		if int(level) > i {
			ch = vuFilled
		}
		r.buf.SetCell(r.lay.VUCenter+1+i, r.lay.VURow, ch)
		r.buf.SetCell(r.lay.VUCenter-2-i, r.lay.VURow, ch)
	}
}

// paintVURamp writes the static color backing for both gauges. The
// two dead-zone cells at center stay uncolored. No-op on mono
// buffers.
func (r *Renderer) paintVURamp() {
	for i := 0; i < source.MaxVU; i++ {
		color := vuRampColor(i)
		r.buf.SetColor(r.lay.VUCenter+1+i, r.lay.VURow, color)
		r.buf.SetColor(r.lay.VUCenter-2-i, r.lay.VURow, color)
	}
}

func vuRampColor(i int) string {
	switch {
	case i < 6:
		return vuGreen
	case i < 11:
		return vuYellow
	default:
		return vuRed
	}
}
