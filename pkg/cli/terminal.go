package cli

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// TerminalSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func TerminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// TerminalWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func TerminalWidth() int {
	width, _ := TerminalSize()
	return width
}
