// Package config handles loading and validating the specbar runtime
// configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/specbar/config.toml
//  3. If the file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing, use defaults per field
//
// # TOML Format
//
// Example config.toml:
//
//	profile = "color"        # "color" (40x25 + color plane) or "mono" (80x25)
//	color_mode = "static"    # "static" or "dynamic"
//	device = "/dev/ttyUSB0"  # serial device for live packet mode
//	baud = 57600
//	fps = 40
//	demo = true              # start on the canned demo sequence
//	patterns = "~/.config/specbar/patterns.yaml"  # optional demo table
//
// All fields are optional. Tilde expansion is performed automatically.
//
// # Error Handling
//
// A missing config file is not an error. Unreadable or unparsable
// files are, and so is a config no display variant supports (unknown
// profile or color mode, live mode without a device). Those surface
// as a one-line fatal message at startup; there is no retry path.
package config
