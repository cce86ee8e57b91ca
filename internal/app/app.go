package app

import (
	"context"
	"fmt"

	"specbar/internal/config"
	"specbar/internal/feed"
	"specbar/internal/prefs"
	"specbar/internal/render"
	"specbar/internal/scheme"
	"specbar/internal/source"
	"specbar/internal/state"
	"specbar/internal/style"
	"specbar/internal/ui"
)

// Options configure the analyzer application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/specbar/prefs.toml
	Device     string // overrides the configured serial device
	FPS        int    // frames per second; zero uses the configured rate
	Demo       bool   // force demo mode on
	Live       bool   // force live serial mode on
}

// Run boots the analyzer until the context is cancelled or the user
// quits. Invalid settings fail here, before the terminal is touched.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if opts.Device != "" {
		cfg.Device = opts.Device
	}
	if opts.FPS > 0 {
		cfg.FPS = opts.FPS
	}
	if opts.Demo {
		cfg.Demo = true
	}
	if opts.Live {
		cfg.Demo = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	demo, err := demoProvider(cfg)
	if err != nil {
		return err
	}

	store := &state.Store{}

	if !cfg.Demo {
		port, err := feed.Open(cfg.Device, cfg.Baud)
		if err != nil {
			return fmt.Errorf("open %s: %w", cfg.Device, err)
		}
		feed.Start(ctx, port, store)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Demo:      demo,
		Renderer:  newRenderer(cfg, userPrefs),
		FPS:       cfg.FPS,
		DemoMode:  cfg.Demo,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// demoProvider builds the pattern playback source: the built-in table
// unless the config names a pattern file.
func demoProvider(cfg config.Config) (*source.Demo, error) {
	if cfg.Patterns == "" {
		return source.NewDemo(), nil
	}
	rows, err := source.LoadPatterns(cfg.Patterns)
	if err != nil {
		return nil, err
	}
	demo, err := source.NewDemoRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Patterns, err)
	}
	return demo, nil
}

// newRenderer assembles the display for the configured profile, with
// the persisted style and scheme selection restored.
func newRenderer(cfg config.Config, p prefs.Prefs) *render.Renderer {
	width := render.ColorGridWidth
	mode := render.ColorStatic
	switch {
	case cfg.Profile == config.ProfileMono:
		width = render.MonoGridWidth
		mode = render.ColorOff
	case cfg.ColorMode == config.ColorModeDynamic:
		mode = render.ColorDynamic
	}

	lay := render.NewLayout(width)
	styles := style.NewCycler(p.Style)
	schemes := scheme.NewCycler(scheme.IndexOf(p.Scheme))
	return render.New(lay, mode, styles, schemes)
}
