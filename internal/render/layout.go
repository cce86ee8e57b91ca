package render

import "specbar/internal/source"

const (
	// NumBands mirrors the data source band count.
	NumBands = source.NumBands

	// BandWidth is the cell width of one bar.
	BandWidth = 2

	// MaxBandHeight is the tallest bar in rows, matching the +1
	// normalized peak range.
	MaxBandHeight = source.MaxPeak

	// GridHeight is fixed for both display profiles.
	GridHeight = 25

	// Grid widths per profile.
	ColorGridWidth = 40
	MonoGridWidth  = 80
)

// Layout places every screen region. All renderers compute bounds
// from these margins; no drawing routine carries a raw coordinate
// literal of its own.
type Layout struct {
	Width  int
	Height int

	LeftMargin int // first band column
	TitleRow   int
	VURow      int
	VUCenter   int // left cell of the two-cell dead zone is VUCenter-1

	BandTop  int // highest row a bar can reach
	Baseline int // bottom row of every bar

	OverlayTop  int // transient text block
	OverlayRows int
}

// NewLayout computes the region layout for a grid width. The band
// area is centered; rows are fixed across profiles.
func NewLayout(width int) Layout {
	l := Layout{
		Width:       width,
		Height:      GridHeight,
		TitleRow:    1,
		VURow:       2,
		VUCenter:    width / 2,
		Baseline:    19,
		OverlayTop:  21,
		OverlayRows: 3,
	}
	l.LeftMargin = (width - NumBands*BandWidth) / 2
	l.BandTop = l.Baseline - MaxBandHeight + 1
	return l
}

// BandCol returns the left cell column of band b.
func (l Layout) BandCol(b int) int {
	return l.LeftMargin + BandWidth*b
}
