// Package terminal provides the marquee's thin terminal boundary: column
// width detection, SIGWINCH resize watching, and a buffered line writer
// emitting direct ANSI sequences. Output degrades cleanly when stdout is a
// pipe; no terminfo, no screen ownership.
package terminal

import (
	"golang.org/x/term"
)

// fallbackWidth is used when the output is not a terminal (e.g. piped)
const fallbackWidth = 80

// Width returns the column count of the terminal behind fd, or the
// fallback when fd is not a terminal
func Width(fd int) int {
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// IsTerminal reports whether fd is attached to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
