// Package scheme holds the color scheme table and its bidirectional
// cycler. A scheme is a named repeating color sequence; the render
// layer walks it across the band area.
package scheme

// Scheme is a named list of colors. Lengths vary on purpose: the
// sequence repeats across the sixteen bands and need not divide them
// evenly.
type Scheme struct {
	Name   string
	Colors []string
}

// Table is the build-time set of schemes. Walked with wraparound in
// both directions.
var Table = []Scheme{
	{
		Name: "rainbow",
		Colors: []string{
			"#c94f6d", "#f4a261", "#dbc074", "#81b29a",
			"#63cdcf", "#719cd6", "#9d79d6",
		},
	},
	{
		Name:   "ember",
		Colors: []string{"#e46876", "#f4a261", "#e6c384"},
	},
	{
		Name:   "ocean",
		Colors: []string{"#38bdf8", "#0ea5e9", "#0284c7", "#0369a1"},
	},
	{
		Name:   "jade",
		Colors: []string{"#98bb6c", "#63cdcf"},
	},
	{
		Name:   "ivory",
		Colors: []string{"#dcd7ba"},
	},
}

// Cycler tracks the active scheme with wraparound at both ends.
type Cycler struct {
	index int
}

// NewCycler starts at the given index, clamped into the table.
func NewCycler(start int) *Cycler {
	if start < 0 || start >= len(Table) {
		start = 0
	}
	return &Cycler{index: start}
}

// Next advances, wrapping from the last entry to the first.
func (c *Cycler) Next() {
	c.index = (c.index + 1) % len(Table)
}

// Prev retreats, wrapping from the first entry to the last.
func (c *Cycler) Prev() {
	c.index--
	if c.index < 0 {
		c.index = len(Table) - 1
	}
}

// Active returns the current scheme.
func (c *Cycler) Active() Scheme { return Table[c.index] }

// Index returns the current table index.
func (c *Cycler) Index() int { return c.index }

// IndexOf returns the table index for a scheme name, or 0 when the
// name is unknown (stale prefs fall back to the first scheme).
func IndexOf(name string) int {
	for i, s := range Table {
		if s.Name == name {
			return i
		}
	}
	return 0
}
