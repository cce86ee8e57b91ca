package ui

// helpLines builds the help overlay text from the key map. The
// overlay region holds three rows, so the bindings are packed two
// or three to a line.
func helpLines() []string {
	return []string{
		"s style   c/C scheme   d demo",
		"b border  h/? help     q quit",
	}
}
