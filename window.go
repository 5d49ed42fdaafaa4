// Package marquee implements the scrolling-text engine: circular window
// extraction over content, per-line frame sequencing, and a registry of
// independently ticking sequencers. The package is pure computation; pacing,
// width detection, and terminal output live with the caller.
package marquee

import (
	"strings"

	"github.com/rivo/uniseg"
)

// graphemes splits content into user-perceived characters (grapheme
// clusters), so combining marks and emoji sequences window as one unit
func graphemes(content string) []string {
	if content == "" {
		return nil
	}
	out := make([]string, 0, len(content))
	g := uniseg.NewGraphemes(content)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Window returns exactly width characters of content starting at cursor,
// treating content as circular: reading past the end re-enters from the
// start, and content shorter than width repeats to fill the window.
// Empty content yields an empty window for any width.
func Window(content string, cursor, width int) string {
	return windowClusters(graphemes(content), cursor, width)
}

// windowClusters is the cluster-slice form of Window, shared with Sequencer
// so content is split once per sequencer rather than once per frame
func windowClusters(clusters []string, cursor, width int) string {
	n := len(clusters)
	if n == 0 || width <= 0 {
		return ""
	}
	cursor = ((cursor % n) + n) % n

	var b strings.Builder
	for i := 0; i < width; i++ {
		b.WriteString(clusters[(cursor+i)%n])
	}
	return b.String()
}

// Advance returns the next cursor position, wrapping at length.
// A zero length returns 0 unchanged so empty content cannot divide by zero.
func Advance(cursor, length int) int {
	if length <= 0 {
		return 0
	}
	return (cursor + 1) % length
}

// Retreat returns the previous cursor position, wrapping below zero to
// length-1. Used for right-to-left scrolling.
func Retreat(cursor, length int) int {
	if length <= 0 {
		return 0
	}
	return (cursor - 1 + length) % length
}
