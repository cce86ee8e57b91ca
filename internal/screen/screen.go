package screen

import "fmt"

// Blank is the glyph used for empty cells.
const Blank = ' '

// Buffer is a fixed-size character-cell frame buffer with an optional
// parallel color plane. It is the single shared display surface:
// renderers write cells, nothing ever reads a cell back to make a
// drawing decision.
type Buffer struct {
	width  int
	height int
	cells  []rune
	colors []string // empty slice when the profile has no color plane

	// Per-row base offsets so the hot path is a lookup plus an add
	// rather than a multiply per cell.
	rowBase []int
}

// New allocates a cleared buffer. withColor adds the parallel color
// plane used by the color display profile.
func New(width, height int, withColor bool) *Buffer {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("screen: invalid buffer size %dx%d", width, height))
	}
	b := &Buffer{
		width:   width,
		height:  height,
		cells:   make([]rune, width*height),
		rowBase: make([]int, height),
	}
	if withColor {
		b.colors = make([]string, width*height)
	}
	for row := 0; row < height; row++ {
		b.rowBase[row] = row * width
	}
	b.Clear()
	return b
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.height }

// HasColor reports whether the buffer carries a color plane.
func (b *Buffer) HasColor() bool { return b.colors != nil }

// index maps (col,row) to a flat offset. Callers must stay within
// [0,Width)x[0,Height); anything else panics with the offending
// coordinates. Offsets are strictly increasing in row-major order.
func (b *Buffer) index(col, row int) int {
	if col < 0 || col >= b.width || row < 0 || row >= b.height {
		panic(fmt.Sprintf("screen: cell (%d,%d) outside %dx%d", col, row, b.width, b.height))
	}
	return b.rowBase[row] + col
}

// SetCell writes one glyph.
func (b *Buffer) SetCell(col, row int, ch rune) {
	b.cells[b.index(col, row)] = ch
}

// Cell returns the glyph at (col,row).
func (b *Buffer) Cell(col, row int) rune {
	return b.cells[b.index(col, row)]
}

// SetColor writes one color-plane entry. It is a no-op on buffers
// without a color plane so mono callers need no special casing.
func (b *Buffer) SetColor(col, row int, color string) {
	if b.colors == nil {
		return
	}
	b.colors[b.index(col, row)] = color
}

// Color returns the color-plane entry at (col,row), or "" on mono
// buffers.
func (b *Buffer) Color(col, row int) string {
	if b.colors == nil {
		return ""
	}
	return b.colors[b.index(col, row)]
}

// Clear blanks every cell. The color plane is left untouched: on the
// static color target the band-area colors outlive any glyph redraw.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Blank
	}
}
