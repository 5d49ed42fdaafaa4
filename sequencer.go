package marquee

import (
	"github.com/mattn/go-runewidth"
)

// Sequencer produces successive decorated frames for one Spec. It owns the
// cursor and nothing else; window width is supplied per call so the caller
// may change it between frames (e.g. on terminal resize).
//
// A sequencer is single-pass forward-only. To restart, construct a fresh
// one from the same Spec.
type Sequencer struct {
	spec     Spec
	clusters []string // content plus separator, pre-split
	cursor   int
	ticks    int
}

// NewSequencer creates a sequencer at cursor 0
func NewSequencer(spec Spec) *Sequencer {
	scroll := spec.Content
	if spec.Rotate && spec.Content != "" {
		scroll += spec.Separator
	}
	return &Sequencer{
		spec:     spec,
		clusters: graphemes(scroll),
	}
}

// NextFrame returns the decorated frame for the current cursor, then
// advances the cursor when the spec rotates. Non-rotating specs pin the
// cursor at 0 and return the full content untruncated on every call.
func (s *Sequencer) NextFrame(width int) string {
	if !s.spec.Rotate {
		return s.spec.Prefix + s.spec.Content + s.spec.Suffix
	}

	win := windowClusters(s.clusters, s.cursor, width)
	if s.spec.Reverse {
		s.cursor = Retreat(s.cursor, len(s.clusters))
	} else {
		s.cursor = Advance(s.cursor, len(s.clusters))
	}
	s.ticks++
	return s.spec.Prefix + win + s.spec.Suffix
}

// Rotating reports whether successive frames differ in cursor position
func (s *Sequencer) Rotating() bool {
	return s.spec.Rotate
}

// CycleLen returns the number of frames in one full pass over the scroll
// content (content plus separator), measured in grapheme clusters
func (s *Sequencer) CycleLen() int {
	return len(s.clusters)
}

// Wrapped reports whether the cursor has completed at least one full cycle
// and returned to its start. Drivers use this to end a non-looping run.
func (s *Sequencer) Wrapped() bool {
	return s.spec.Rotate && len(s.clusters) > 0 && s.ticks >= len(s.clusters)
}

// Spec returns the immutable spec this sequencer was built from
func (s *Sequencer) Spec() Spec {
	return s.spec
}

// DecorWidth returns the display-cell width of the static decoration,
// letting a driver budget the moving window against the terminal width
func (s *Sequencer) DecorWidth() int {
	return runewidth.StringWidth(s.spec.Prefix) + runewidth.StringWidth(s.spec.Suffix)
}
