package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Profile names the display variant: the 40-column grid with a color
// plane, or the 80-column mono grid.
const (
	ProfileColor = "color"
	ProfileMono  = "mono"
)

// Color mode names for the color profile.
const (
	ColorModeStatic  = "static"
	ColorModeDynamic = "dynamic"
)

// Config captures the runtime settings of the analyzer.
type Config struct {
	Profile   string // "color" or "mono"
	ColorMode string // "static" or "dynamic"; ignored on mono
	Device    string // serial device for live mode
	Baud      int
	FPS       int    // render loop cadence
	Demo      bool   // start in demo mode
	Patterns  string // optional YAML pattern table for the demo provider
}

const (
	defaultConfigPath = "~/.config/specbar/config.toml"
	defaultDevice     = "/dev/ttyUSB0"
	defaultBaud       = 57600
	defaultFPS        = 40
)

// Load locates and parses the config, falling back to defaults when
// the file is missing. A present-but-unreadable or unparsable file is
// an error; a semantically invalid one fails Validate.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Profile:   ProfileColor,
		ColorMode: ColorModeStatic,
		Device:    defaultDevice,
		Baud:      defaultBaud,
		FPS:       defaultFPS,
		Demo:      true,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Profile   string `toml:"profile"`
		ColorMode string `toml:"color_mode"`
		Device    string `toml:"device"`
		Baud      int    `toml:"baud"`
		FPS       int    `toml:"fps"`
		Demo      *bool  `toml:"demo"`
		Patterns  string `toml:"patterns"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Profile); v != "" {
		cfg.Profile = v
	}
	if v := strings.TrimSpace(raw.ColorMode); v != "" {
		cfg.ColorMode = v
	}
	if v := strings.TrimSpace(raw.Device); v != "" {
		cfg.Device = v
	}
	if raw.Baud > 0 {
		cfg.Baud = raw.Baud
	}
	if raw.FPS > 0 {
		cfg.FPS = raw.FPS
	}
	if raw.Demo != nil {
		cfg.Demo = *raw.Demo
	}
	if v := strings.TrimSpace(raw.Patterns); v != "" {
		cfg.Patterns = mustExpand(v)
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings no display variant supports. This is the
// one fatal startup check: it surfaces as a single line and the
// program exits, the way an unsupported hardware revision would.
func (c Config) Validate() error {
	switch c.Profile {
	case ProfileColor, ProfileMono:
	default:
		return fmt.Errorf("unsupported profile %q (want %q or %q)", c.Profile, ProfileColor, ProfileMono)
	}
	switch c.ColorMode {
	case ColorModeStatic, ColorModeDynamic:
	default:
		return fmt.Errorf("unsupported color_mode %q (want %q or %q)", c.ColorMode, ColorModeStatic, ColorModeDynamic)
	}
	if !c.Demo && strings.TrimSpace(c.Device) == "" {
		return errors.New("live mode requires a serial device")
	}
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("fps %d outside 1..120", c.FPS)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
