package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"specbar/internal/prefs"
	"specbar/internal/render"
	"specbar/internal/source"
	"specbar/internal/state"
)

// Overlay durations in seconds. Status flashes are short; the help
// block lingers.
const (
	statusSeconds = 2
	helpSeconds   = 6
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Demo      *source.Demo
	Renderer  *render.Renderer
	FPS       int
	DemoMode  bool
	PrefsPath string
}

// Model is the root application state for Bubble Tea. One update
// tick runs the frame phases in order: publish demo data (demo mode,
// every other tick), fetch from the store, redraw if fresh, age the
// overlay. Key messages arrive between ticks and map one decoded key
// to one command.
type Model struct {
	ctx       context.Context
	store     *state.Store
	demo      *source.Demo
	renderer  *render.Renderer
	prefsPath string

	tick time.Duration
	fps  int

	demoMode  bool
	demoPhase bool // halves the demo update cadence
	lastSeq   uint64
	last      source.Frame

	overlayTicks int

	width  int
	height int
	ready  bool
}

// New creates the model. The renderer arrives with its chrome drawn;
// the first fresh frame fills in the bands.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	fps := opts.FPS
	if fps < 1 {
		fps = 40
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		demo:      opts.Demo,
		renderer:  opts.Renderer,
		prefsPath: prefsPath,
		tick:      time.Second / time.Duration(fps),
		fps:       fps,
		demoMode:  opts.DemoMode,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tickCmd(m.tick))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one frame iteration.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.demoMode && m.demo != nil {
		// Demo updates land on every other tick, so the visual
		// cadence is half the render-loop cadence.
		m.demoPhase = !m.demoPhase
		if m.demoPhase {
			m.store.Publish(m.demo.Next())
		}
	}

	// Fetch always completes before any renderer runs; all band draws
	// below observe this one frame.
	f, seq, fresh := m.store.Since(m.lastSeq)
	if fresh {
		// Redraw is edge-triggered: consume the freshness now so one
		// published frame never paints twice.
		m.lastSeq = seq
		m.last = f
		m.renderer.DrawFrame(f)
	}

	if m.overlayTicks > 0 {
		m.overlayTicks--
		if m.overlayTicks == 0 {
			m.renderer.ClearOverlay()
		}
	}

	if m.ctx.Err() != nil {
		return m, tea.Quit
	}
	return m, tickCmd(m.tick)
}

// handleKey maps one decoded key to one command.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Style):
		name := m.renderer.CycleStyle()
		m.renderer.DrawFrame(m.last)
		m.flash("STYLE: " + name)
		m.savePrefs()

	case key.Matches(msg, keys.SchemeNext):
		name := m.renderer.CycleScheme(false)
		m.renderer.DrawFrame(m.last)
		m.flash("SCHEME: " + name)
		m.savePrefs()

	case key.Matches(msg, keys.SchemePrev):
		name := m.renderer.CycleScheme(true)
		m.renderer.DrawFrame(m.last)
		m.flash("SCHEME: " + name)
		m.savePrefs()

	case key.Matches(msg, keys.Demo):
		m.demoMode = !m.demoMode
		if m.demoMode {
			m.flash("DEMO ON")
		} else {
			// Leaving demo mode clears the display to silence; the
			// publish forces the redraw that paints it.
			m.store.Publish(source.Frame{})
			m.flash("DEMO OFF")
		}

	case key.Matches(msg, keys.Border):
		if m.renderer.ToggleBorder() {
			m.flash("BORDER ON")
		} else {
			m.flash("BORDER OFF")
		}
		m.renderer.DrawFrame(m.last)

	case key.Matches(msg, keys.Help):
		m.showHelp()
	}

	return m, nil
}

// flash arms the transient status overlay. A request arriving
// mid-countdown restarts the clock.
func (m *Model) flash(text string) {
	m.renderer.ShowOverlay([]string{text})
	m.overlayTicks = statusSeconds * m.fps
}

func (m *Model) showHelp() {
	m.renderer.ShowOverlay(helpLines())
	m.overlayTicks = helpSeconds * m.fps
}

func (m *Model) savePrefs() {
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Style:  m.renderer.StyleIndex(),
		Scheme: m.renderer.SchemeName(),
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.renderer.View(),
	)
}

// Messages

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until exit. The alt
// screen is restored by the framework on the way out.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
