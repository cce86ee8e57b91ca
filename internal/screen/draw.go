package screen

// Drawing primitives. Degenerate sizes are deliberate no-ops, not
// errors: callers compute geometry from margin constants and a
// collapsed rectangle simply has nothing to draw.
//
// Every primitive takes a color. An empty color skips the color-plane
// write entirely, which is how the static color mode keeps glyph
// drawing off the color plane (the scheme engine paints it out of
// band). On mono buffers the color is ignored either way.

// BoxStyle is the glyph set DrawBox composes. Top/bottom and
// left/right are distinct so asymmetric box styles work.
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Top         rune
	Bottom      rune
	Left        rune
	Right       rune
}

// HLine writes n copies of ch starting at (x,y) going right.
func (b *Buffer) HLine(x, y, n int, ch rune, color string) {
	if n < 1 {
		return
	}
	for i := 0; i < n; i++ {
		b.SetCell(x+i, y, ch)
		if color != "" {
			b.SetColor(x+i, y, color)
		}
	}
}

// VLine writes n copies of ch starting at (x,y) going down.
func (b *Buffer) VLine(x, y, n int, ch rune, color string) {
	if n < 1 {
		return
	}
	for i := 0; i < n; i++ {
		b.SetCell(x, y+i, ch)
		if color != "" {
			b.SetColor(x, y+i, color)
		}
	}
}

// FillRect writes ch into every cell of the w x h rectangle at (x,y).
func (b *Buffer) FillRect(x, y, w, h int, ch rune, color string) {
	if w < 1 || h < 1 {
		return
	}
	for row := 0; row < h; row++ {
		b.HLine(x, y+row, w, ch, color)
	}
}

// DrawBox draws a bordered rectangle: four corners, top and bottom
// runs of w-2, left and right runs of h-2. Interior cells are not
// touched. No-op when either dimension is too small to have corners.
func (b *Buffer) DrawBox(x, y, w, h int, bs BoxStyle, color string) {
	if w < 2 || h < 2 {
		return
	}
	b.SetCell(x, y, bs.TopLeft)
	b.SetCell(x+w-1, y, bs.TopRight)
	b.SetCell(x, y+h-1, bs.BottomLeft)
	b.SetCell(x+w-1, y+h-1, bs.BottomRight)
	if color != "" {
		b.SetColor(x, y, color)
		b.SetColor(x+w-1, y, color)
		b.SetColor(x, y+h-1, color)
		b.SetColor(x+w-1, y+h-1, color)
	}
	b.HLine(x+1, y, w-2, bs.Top, color)
	b.HLine(x+1, y+h-1, w-2, bs.Bottom, color)
	b.VLine(x, y+1, h-2, bs.Left, color)
	b.VLine(x+w-1, y+1, h-2, bs.Right, color)
}

// WriteString writes s starting at (x,y), clipped to the row.
func (b *Buffer) WriteString(x, y int, s string, color string) {
	col := x
	for _, ch := range s {
		if col < 0 || col >= b.width {
			col++
			continue
		}
		b.SetCell(col, y, ch)
		if color != "" {
			b.SetColor(col, y, color)
		}
		col++
	}
}
