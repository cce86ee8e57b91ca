package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the full control surface: single keypresses only, with
// one shifted variant for the reverse scheme direction.
type keyMap struct {
	Style      key.Binding
	SchemeNext key.Binding
	SchemePrev key.Binding
	Demo       key.Binding
	Border     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Style: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle style"),
	),
	SchemeNext: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "next color scheme"),
	),
	SchemePrev: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "previous color scheme"),
	),
	Demo: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "toggle demo mode"),
	),
	Border: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "toggle border"),
	),
	Help: key.NewBinding(
		key.WithKeys("h", "?"),
		key.WithHelp("h/?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "e", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
