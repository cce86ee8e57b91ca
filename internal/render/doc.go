// Package render draws the analyzer into the frame buffer.
//
// # Regions
//
// A Layout splits the fixed 25-row grid into a border frame, a title
// row, the dual-mirrored VU meter, the sixteen-band area, and a
// three-row transient overlay block. All bounds derive from the
// layout; renderers carry no coordinate literals.
//
// # Per-frame vs. chrome
//
// DrawFrame repaints the VU glyphs and all sixteen bands in full on
// every fresh frame; nothing is diffed against the previous frame.
// Everything else — border, title, VU ramp colors, static scheme
// colors — is chrome, repainted only by discrete user commands
// (style cycle, scheme cycle, border toggle).
//
// # Color strategies
//
// A Colorist chosen once at startup decides how colors reach the
// color plane: static (band area painted per scheme change, glyph
// writes skip color), dynamic (band color written with each glyph
// per frame), or off (mono profile). Renderers call the strategy and
// never branch on the mode.
package render
