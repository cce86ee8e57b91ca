package ui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"specbar/internal/prefs"
	"specbar/internal/render"
	"specbar/internal/scheme"
	"specbar/internal/source"
	"specbar/internal/state"
	"specbar/internal/style"
)

func newTestModel(t *testing.T, demoMode bool) Model {
	t.Helper()

	lay := render.NewLayout(render.ColorGridWidth)
	r := render.New(lay, render.ColorStatic, style.NewCycler(0), scheme.NewCycler(0))

	m := New(Options{
		Context:   context.Background(),
		Store:     &state.Store{},
		Demo:      source.NewDemo(),
		Renderer:  r,
		FPS:       40,
		DemoMode:  demoMode,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	return m
}

func tick(m Model) Model {
	next, _ := m.Update(tickMsg{})
	return next.(Model)
}

func press(m Model, k string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// bandCell reads the baseline cell of band b, which is blank only
// when the band has never been drawn at a nonzero height.
func bandCell(m Model, b int) rune {
	lay := m.renderer.Layout()
	return m.renderer.Buffer().Cell(lay.BandCol(b), lay.Baseline)
}

func TestDemoPublishesEveryOtherTick(t *testing.T) {
	m := newTestModel(t, true)

	seq := func() uint64 {
		_, s, _ := m.store.Since(0)
		return s
	}

	m = tick(m)
	if got := seq(); got != 1 {
		t.Fatalf("after tick 1: seq = %d, want 1", got)
	}
	m = tick(m)
	if got := seq(); got != 1 {
		t.Fatalf("after tick 2: seq = %d, want 1 (idle tick)", got)
	}
	m = tick(m)
	if got := seq(); got != 2 {
		t.Fatalf("after tick 3: seq = %d, want 2", got)
	}
}

func TestTickRedrawsOnlyFreshFrames(t *testing.T) {
	m := newTestModel(t, false)

	m.store.Publish(source.Frame{VU: 5, Peaks: frameOf(8)})
	m = tick(m)
	if m.lastSeq != 1 {
		t.Fatalf("lastSeq = %d, want 1", m.lastSeq)
	}
	if bandCell(m, 0) == ' ' {
		t.Fatal("band 0 not drawn after fresh frame")
	}

	// No new publish: the consumed sequence must stay put.
	m = tick(m)
	if m.lastSeq != 1 {
		t.Fatalf("lastSeq advanced to %d on an idle tick", m.lastSeq)
	}
}

func TestStyleKeyCyclesAndPersists(t *testing.T) {
	m := newTestModel(t, false)
	before := m.renderer.StyleName()

	m, _ = press(m, "s")
	if m.renderer.StyleName() == before {
		t.Fatalf("style did not change from %q", before)
	}

	p := prefs.Load(m.prefsPath)
	if p.Style != m.renderer.StyleIndex() {
		t.Fatalf("persisted style = %d, want %d", p.Style, m.renderer.StyleIndex())
	}
	if p.Scheme != m.renderer.SchemeName() {
		t.Fatalf("persisted scheme = %q, want %q", p.Scheme, m.renderer.SchemeName())
	}
}

func TestSchemeKeysCycleBothDirections(t *testing.T) {
	m := newTestModel(t, false)
	first := m.renderer.SchemeName()

	m, _ = press(m, "c")
	second := m.renderer.SchemeName()
	if second == first {
		t.Fatalf("scheme did not advance from %q", first)
	}

	m, _ = press(m, "C")
	if got := m.renderer.SchemeName(); got != first {
		t.Fatalf("scheme after c then C = %q, want %q", got, first)
	}
}

func TestDemoToggleOffClearsDisplay(t *testing.T) {
	m := newTestModel(t, true)
	m = tick(m)
	if bandCell(m, 0) == ' ' {
		t.Fatal("band 0 not drawn in demo mode")
	}

	m, _ = press(m, "d")
	if m.demoMode {
		t.Fatal("demo mode still on after toggle")
	}

	// The silent frame published by the toggle lands on the next tick.
	m = tick(m)
	for b := 0; b < render.NumBands; b++ {
		if got := bandCell(m, b); got != ' ' {
			t.Fatalf("band %d baseline = %q after demo off, want blank", b, got)
		}
	}
}

func TestBorderToggle(t *testing.T) {
	m := newTestModel(t, false)
	if !m.renderer.Border() {
		t.Fatal("border not on at start")
	}
	m, _ = press(m, "b")
	if m.renderer.Border() {
		t.Fatal("border still on after toggle")
	}
}

func TestHelpOverlayCountsDownAndClears(t *testing.T) {
	m := newTestModel(t, false)
	lay := m.renderer.Layout()

	m, _ = press(m, "h")
	if m.overlayTicks != helpSeconds*m.fps {
		t.Fatalf("overlayTicks = %d, want %d", m.overlayTicks, helpSeconds*m.fps)
	}
	if m.renderer.Buffer().Cell(lay.Width/2, lay.OverlayTop) == ' ' &&
		m.renderer.Buffer().Cell(lay.Width/2, lay.OverlayTop+1) == ' ' {
		t.Fatal("overlay region blank after help key")
	}

	for i := 0; i < helpSeconds*m.fps; i++ {
		m = tick(m)
	}
	if m.overlayTicks != 0 {
		t.Fatalf("overlayTicks = %d after countdown, want 0", m.overlayTicks)
	}
	for row := lay.OverlayTop; row < lay.OverlayTop+lay.OverlayRows; row++ {
		for col := 1; col < lay.Width-1; col++ {
			if got := m.renderer.Buffer().Cell(col, row); got != ' ' {
				t.Fatalf("overlay cell (%d,%d) = %q after countdown", col, row, got)
			}
		}
	}
}

func TestStatusOverlayRearmsOnNewRequest(t *testing.T) {
	m := newTestModel(t, false)

	m, _ = press(m, "s")
	for i := 0; i < 10; i++ {
		m = tick(m)
	}
	aged := m.overlayTicks

	m, _ = press(m, "b")
	if m.overlayTicks != statusSeconds*m.fps {
		t.Fatalf("overlayTicks = %d after re-arm, want %d (was %d)",
			m.overlayTicks, statusSeconds*m.fps, aged)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "e", "esc", "ctrl+c"} {
		m := newTestModel(t, false)
		_, cmd := press(m, k)
		if cmd == nil {
			t.Fatalf("key %q: no command returned", k)
		}
		if msg := cmd(); msg != (tea.QuitMsg{}) {
			t.Fatalf("key %q: command produced %T, want tea.QuitMsg", k, msg)
		}
	}
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := newTestModel(t, false)
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before resize = %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.View() == "Loading..." {
		t.Fatal("View still loading after resize")
	}
}

// TestGoldenSilentRow pins the exact rendered text for the all-zero
// demo row: every bar floors at height one (solo glyph pair on the
// baseline), the VU sits at zero (all shade), and everything between
// is blank.
func TestGoldenSilentRow(t *testing.T) {
	m := newTestModel(t, false)
	lay := m.renderer.Layout()

	m.store.Publish(m.demo.FrameAt(30))
	m = tick(m)

	lines := m.renderer.Buffer().Lines()
	pad := strings.Repeat(" ", lay.LeftMargin-1)

	wantVU := "│" + pad + strings.Repeat("░", 15) + "  " + strings.Repeat("░", 15) + pad + "│"
	if got := lines[lay.VURow]; got != wantVU {
		t.Fatalf("VU row:\n got %q\nwant %q", got, wantVU)
	}

	wantBase := "│" + pad + strings.Repeat("╶╴", 16) + pad + "│"
	if got := lines[lay.Baseline]; got != wantBase {
		t.Fatalf("baseline row:\n got %q\nwant %q", got, wantBase)
	}

	wantEmpty := "│" + strings.Repeat(" ", lay.Width-2) + "│"
	for row := lay.BandTop; row < lay.Baseline; row++ {
		if got := lines[row]; got != wantEmpty {
			t.Fatalf("row %d:\n got %q\nwant %q", row, got, wantEmpty)
		}
	}
}

func TestFullScaleDemoRow(t *testing.T) {
	m := newTestModel(t, false)
	lay := m.renderer.Layout()

	// The last builtin row is all-F: every bar at full height, VU
	// pegged at both ends.
	m.store.Publish(m.demo.FrameAt(31))
	m = tick(m)

	for b := 0; b < render.NumBands; b++ {
		if got := m.renderer.Buffer().Cell(lay.BandCol(b), lay.BandTop); got == ' ' {
			t.Fatalf("band %d blank at full height row %d", b, lay.BandTop)
		}
	}
	for i := 0; i < source.MaxVU; i++ {
		right := m.renderer.Buffer().Cell(lay.VUCenter+1+i, lay.VURow)
		left := m.renderer.Buffer().Cell(lay.VUCenter-2-i, lay.VURow)
		if right != '█' || left != '█' {
			t.Fatalf("VU segment %d = %q/%q, want full", i, right, left)
		}
	}
}

func frameOf(h byte) [source.NumBands]byte {
	var p [source.NumBands]byte
	for i := range p {
		p[i] = h
	}
	return p
}
