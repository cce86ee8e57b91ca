// Package style holds the glyph sets a band or box is drawn with and
// the wrapping cycler that selects the active one.
package style

import "specbar/internal/screen"

// Style is a fixed record of the glyphs one visual style uses. Bands
// are two cells wide, so every band glyph comes as a left/right pair.
// Solo is the dedicated pair for a one-row-tall bar; it is not a
// squashed top+bottom.
type Style struct {
	Name string

	TopLeft     rune
	TopRight    rune
	SideLeft    rune
	SideRight   rune
	BottomLeft  rune
	BottomRight rune
	SoloLeft    rune
	SoloRight   rune

	// Box frame glyphs (border, help panel).
	Box screen.BoxStyle
}

// Table is the build-time set of styles. Selection never mutates
// these records; the cycler copies the chosen one into active
// storage.
var Table = []Style{
	{
		Name:    "classic",
		TopLeft: '┌', TopRight: '┐',
		SideLeft: '│', SideRight: '│',
		BottomLeft: '└', BottomRight: '┘',
		SoloLeft: '╶', SoloRight: '╴',
		Box: screen.BoxStyle{
			TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
			Top: '─', Bottom: '─', Left: '│', Right: '│',
		},
	},
	{
		Name:    "double",
		TopLeft: '╔', TopRight: '╗',
		SideLeft: '║', SideRight: '║',
		BottomLeft: '╚', BottomRight: '╝',
		SoloLeft: '═', SoloRight: '═',
		Box: screen.BoxStyle{
			TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
			Top: '═', Bottom: '═', Left: '║', Right: '║',
		},
	},
	{
		Name:    "blocks",
		TopLeft: '▛', TopRight: '▜',
		SideLeft: '▌', SideRight: '▐',
		BottomLeft: '▙', BottomRight: '▟',
		SoloLeft: '▄', SoloRight: '▄',
		Box: screen.BoxStyle{
			TopLeft: '▛', TopRight: '▜', BottomLeft: '▙', BottomRight: '▟',
			Top: '▀', Bottom: '▄', Left: '▌', Right: '▐',
		},
	},
	{
		Name:    "rounded",
		TopLeft: '╭', TopRight: '╮',
		SideLeft: '│', SideRight: '│',
		BottomLeft: '╰', BottomRight: '╯',
		SoloLeft: '─', SoloRight: '─',
		Box: screen.BoxStyle{
			TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
			Top: '─', Bottom: '─', Left: '│', Right: '│',
		},
	},
}

// Cycler tracks the active style. The index always stays valid; Next
// has no failure mode and its effect is observable only through what
// gets rendered.
type Cycler struct {
	index  int
	active Style
}

// NewCycler starts at the given index, reduced mod the table length
// so a stale persisted index still lands on a real style.
func NewCycler(start int) *Cycler {
	if start < 0 {
		start = 0
	}
	c := &Cycler{index: start % len(Table)}
	c.active = Table[c.index]
	return c
}

// Next advances the wrapping index and copies that style into active
// storage.
func (c *Cycler) Next() {
	c.index = (c.index + 1) % len(Table)
	c.active = Table[c.index]
}

// Active returns the current style record.
func (c *Cycler) Active() Style { return c.active }

// Index returns the current table index, persisted in prefs.
func (c *Cycler) Index() int { return c.index }
