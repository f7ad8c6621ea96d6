package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal is a helper method for detecting whether an [io.Writer] is a
// interactive terminal / TTY.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
