// Package ui runs the interactive frame loop for the analyzer display.
//
// # Architecture Overview
//
// The package implements a Bubble Tea program around a single Model.
// The model owns the renderer, the shared frame store, and the demo
// generator, and advances the display one tick at a time at the
// configured frame rate.
//
// # Package Structure
//
//   - ui.go: Model, tick and key handling, and the Run entry point
//   - keys.go: key bindings for the control surface
//   - help.go: help overlay text
//
// # Event Flow
//
//  1. Run() builds the model and starts the program in the alt screen
//  2. Each tick publishes demo data (demo mode, every other tick),
//     fetches the latest frame from state.Store, and redraws the
//     bands and VU gauge only when the store holds something new
//  3. Key messages cycle styles and schemes, toggle demo mode and the
//     border, show the help overlay, or quit
//  4. Style and scheme changes are written back to the prefs file so
//     the next session starts with the same look
//  5. Context cancellation or a quit key ends the program; Bubble Tea
//     restores the terminal on the way out
//
// # External Dependencies
//
//   - state.Store: latest decoded frame plus a sequence counter for
//     edge-triggered redraw
//   - render.Renderer: character-cell frame buffer and band drawing
//   - source.Demo: built-in pattern playback for demo mode
//   - prefs: persisted style and scheme selection
package ui
