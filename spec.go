package marquee

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is returned when a Spec cannot be constructed from its
// input, e.g. a JSON record without content
var ErrInvalidSpec = errors.New("invalid marquee spec")

// Spec describes one marquee line. Immutable once constructed; a Sequencer
// holds the only mutable state (its cursor).
type Spec struct {
	// Content is the text the window slides over. Empty content is
	// tolerated by the engine and produces empty frames.
	Content string

	// Prefix and Suffix are static decoration around the moving window.
	Prefix string
	Suffix string

	// Separator is appended to Content before windowing while rotating,
	// marking the seam where the text wraps around. Ignored when Rotate
	// is false.
	Separator string

	// Rotate advances the cursor every frame. When false the sequencer
	// emits a single static frame of the full content.
	Rotate bool

	// Reverse scrolls right-to-left instead of left-to-right.
	Reverse bool
}

// NewSpec returns a rotating Spec for content with no decoration
func NewSpec(content string) Spec {
	return Spec{Content: content, Rotate: true}
}

// Validate reports whether the spec is usable where non-empty content is
// required. The engine itself tolerates empty content; input layers call
// this to fail fast before any sequencer is constructed.
func (s Spec) Validate() error {
	if s.Content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidSpec)
	}
	return nil
}
