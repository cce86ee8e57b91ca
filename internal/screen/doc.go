// Package screen implements the character-cell frame buffer the
// analyzer draws into.
//
// A Buffer is a fixed W x H grid of glyphs, optionally paired with a
// same-shaped color plane. Addressing goes through a precomputed
// per-row base table; out-of-range coordinates panic, which keeps the
// bounds contract explicit while the hot path stays a lookup and an
// add.
//
// Primitives (HLine, VLine, FillRect, DrawBox, WriteString) treat
// degenerate sizes as no-ops. Each takes a color; passing "" skips
// the color plane, which is how the static color strategy avoids
// per-glyph color traffic.
//
// The buffer is write-only from the renderers' point of view: cell
// reads exist for tests and serialization, never for drawing
// decisions. Serialization is Lines (plain rows, mono profile) or
// ANSI (lipgloss-colored runs, color profile).
package screen
