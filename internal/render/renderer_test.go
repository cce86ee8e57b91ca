package render

import (
	"testing"

	"specbar/internal/scheme"
	"specbar/internal/screen"
	"specbar/internal/source"
	"specbar/internal/style"
)

func TestChromeDrawsBorderAndTitle(t *testing.T) {
	r := newTestRenderer(ColorOff)
	lay := r.Layout()
	box := style.Table[0].Box

	if got := r.Buffer().Cell(0, 0); got != box.TopLeft {
		t.Fatalf("top-left corner = %q, want %q", got, box.TopLeft)
	}
	if got := r.Buffer().Cell(lay.Width-1, lay.Height-1); got != box.BottomRight {
		t.Fatalf("bottom-right corner = %q, want %q", got, box.BottomRight)
	}

	line := r.Buffer().Lines()[lay.TitleRow]
	if !containsRunes(line, title) {
		t.Fatalf("title row %q does not contain %q", line, title)
	}
}

func TestToggleBorder(t *testing.T) {
	r := newTestRenderer(ColorOff)

	if on := r.ToggleBorder(); on {
		t.Fatalf("ToggleBorder from initial state = on, want off")
	}
	if got := r.Buffer().Cell(0, 0); got != screen.Blank {
		t.Fatalf("corner after border off = %q, want blank", got)
	}

	if on := r.ToggleBorder(); !on {
		t.Fatalf("second ToggleBorder = off, want on")
	}
	if got := r.Buffer().Cell(0, 0); got != style.Table[0].Box.TopLeft {
		t.Fatalf("corner after border on = %q", got)
	}
}

func TestCycleStyleChangesBandGlyphs(t *testing.T) {
	r := newTestRenderer(ColorOff)
	lay := r.Layout()

	r.DrawBand(0, 3)
	before := r.Buffer().Cell(lay.BandCol(0), lay.Baseline)

	name := r.CycleStyle()
	if name != style.Table[1].Name {
		t.Fatalf("CycleStyle = %q, want %q", name, style.Table[1].Name)
	}

	r.DrawBand(0, 3)
	after := r.Buffer().Cell(lay.BandCol(0), lay.Baseline)
	if before == after {
		t.Fatalf("baseline glyph unchanged after style cycle: %q", after)
	}
}

func TestStaticSchemeAppliedRightToLeft(t *testing.T) {
	r := newTestRenderer(ColorStatic)
	lay := r.Layout()
	sc := scheme.Table[0]

	// Rightmost band carries the first scheme color; the cycle wraps
	// leftwards independently of column height.
	for b := 0; b < NumBands; b++ {
		want := sc.Colors[(NumBands-1-b)%len(sc.Colors)]
		for _, col := range []int{lay.BandCol(b), lay.BandCol(b) + 1} {
			if got := r.Buffer().Color(col, lay.Baseline); got != want {
				t.Fatalf("band %d column %d color = %q, want %q", b, col, got, want)
			}
			if got := r.Buffer().Color(col, lay.BandTop); got != want {
				t.Fatalf("band %d top row color = %q, want %q", b, got, want)
			}
		}
	}
}

func TestStaticModeGlyphsSkipColorPlane(t *testing.T) {
	r := newTestRenderer(ColorStatic)
	lay := r.Layout()

	applied := r.Buffer().Color(lay.BandCol(4), lay.Baseline)
	r.DrawBand(4, MaxBandHeight)
	if got := r.Buffer().Color(lay.BandCol(4), lay.Baseline); got != applied {
		t.Fatalf("band draw touched the color plane in static mode: %q -> %q", applied, got)
	}
}

func TestCycleSchemeRepaintsStaticColors(t *testing.T) {
	r := newTestRenderer(ColorStatic)
	lay := r.Layout()

	name := r.CycleScheme(false)
	if name != scheme.Table[1].Name {
		t.Fatalf("CycleScheme = %q, want %q", name, scheme.Table[1].Name)
	}
	want := scheme.Table[1].Colors[0]
	if got := r.Buffer().Color(lay.BandCol(NumBands-1), lay.Baseline); got != want {
		t.Fatalf("rightmost band color after cycle = %q, want %q", got, want)
	}

	back := r.CycleScheme(true)
	if back != scheme.Table[0].Name {
		t.Fatalf("CycleScheme(back) = %q, want %q", back, scheme.Table[0].Name)
	}
}

func TestOverlayLifecycle(t *testing.T) {
	r := newTestRenderer(ColorOff)
	lay := r.Layout()

	r.ShowOverlay([]string{"STYLE: double"})
	row := r.Buffer().Lines()[lay.OverlayTop]
	if !containsRunes(row, "STYLE: double") {
		t.Fatalf("overlay row %q missing text", row)
	}

	// A new request replaces the old block.
	r.ShowOverlay([]string{"SCHEME: ember"})
	row = r.Buffer().Lines()[lay.OverlayTop]
	if containsRunes(row, "STYLE") {
		t.Fatalf("stale overlay text still visible: %q", row)
	}

	r.ClearOverlay()
	for i := 0; i < lay.OverlayRows; i++ {
		for col := 1; col < lay.Width-1; col++ {
			if ch := r.Buffer().Cell(col, lay.OverlayTop+i); ch != screen.Blank {
				t.Fatalf("overlay row %d col %d not cleared: %q", i, col, ch)
			}
		}
	}
}

func TestOverlayPreservesBorder(t *testing.T) {
	r := newTestRenderer(ColorOff)
	lay := r.Layout()
	box := style.Table[0].Box

	r.ShowOverlay([]string{"a", "b", "c"})
	r.ClearOverlay()
	for i := 0; i < lay.OverlayRows; i++ {
		if got := r.Buffer().Cell(0, lay.OverlayTop+i); got != box.Left {
			t.Fatalf("border cell on overlay row %d = %q, want %q", i, got, box.Left)
		}
	}
}

func TestDrawFrameCoversAllBands(t *testing.T) {
	r := newTestRenderer(ColorOff)
	lay := r.Layout()

	var f source.Frame
	f.VU = 4
	for i := range f.Peaks {
		f.Peaks[i] = byte(i + 1)
	}
	r.DrawFrame(f)

	for b := 0; b < NumBands; b++ {
		top := lay.Baseline - (b + 1) + 1
		if got := r.Buffer().Cell(lay.BandCol(b), top); got == screen.Blank {
			t.Fatalf("band %d has no glyph at its top row", b)
		}
		if top > lay.BandTop {
			if got := r.Buffer().Cell(lay.BandCol(b), top-1); got != screen.Blank {
				t.Fatalf("band %d has a glyph above its height", b)
			}
		}
	}
}

func containsRunes(haystack, needle string) bool {
	return len(needle) == 0 || len(haystack) >= len(needle) && indexOf(haystack, needle) >= 0
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
