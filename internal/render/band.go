package render

import (
	"fmt"

	"specbar/internal/screen"
)

// DrawBand paints one bar: the full two-column region from the top
// margin to the baseline, every row written unconditionally. Full
// redraw beats diffing here: sixteen short columns per frame are
// cheaper than tracking previous heights, and the routine never
// early-exits on them.
//
// Row classification, walking top to baseline:
//
//	h == 0  every row blank, baseline included
//	h == 1  baseline alone gets the dedicated solo pair
//	h >= 2  top pair at baseline-h+1, side pairs between,
//	        bottom pair on the baseline
func (r *Renderer) DrawBand(b, h int) {
	if b < 0 || b >= NumBands {
		panic(fmt.Sprintf("render: band index %d outside 0..%d", b, NumBands-1))
	}
	if h < 0 {
		h = 0
	}
	if h > MaxBandHeight {
		h = MaxBandHeight
	}

	st := r.styles.Active()
	col := r.lay.BandCol(b)
	color := r.colorist.Band(b, r.schemes.Active())
	top := r.lay.Baseline - h + 1

	for row := r.lay.BandTop; row <= r.lay.Baseline; row++ {
		var left, right rune
		switch {
		case h == 0 || row < top:
			left, right = screen.Blank, screen.Blank
		case h == 1:
			left, right = st.SoloLeft, st.SoloRight
		case row == top:
			left, right = st.TopLeft, st.TopRight
		case row == r.lay.Baseline:
			left, right = st.BottomLeft, st.BottomRight
		default:
			left, right = st.SideLeft, st.SideRight
		}
		r.put(col, row, left, color)
		r.put(col+1, row, right, color)
	}
}

func (r *Renderer) put(col, row int, ch rune, color string) {
	r.buf.SetCell(col, row, ch)
	if color != "" {
		r.buf.SetColor(col, row, color)
	}
}
