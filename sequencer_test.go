package marquee

import "testing"

func TestSequencerRotates(t *testing.T) {
	seq := NewSequencer(NewSpec("HELLO"))
	expected := []string{"HEL", "ELL", "LLO", "LOH", "OHE", "HEL"}

	for i, want := range expected {
		if got := seq.NextFrame(3); got != want {
			t.Errorf("Expected frame %q at tick %d, got %q", want, i, got)
		}
	}
}

func TestSequencerConsecutiveFramesDiffer(t *testing.T) {
	seq := NewSequencer(NewSpec("HELLO"))

	prev := seq.NextFrame(3)
	for i := 0; i < 4; i++ {
		next := seq.NextFrame(3)
		if next == prev {
			t.Errorf("Expected consecutive frames to differ, got %q twice", next)
		}
		prev = next
	}
}

func TestSequencerStatic(t *testing.T) {
	seq := NewSequencer(Spec{Content: "HELLO WORLD", Prefix: "[", Suffix: "]"})

	// Non-rotating: full content, unwindowed, identical every call
	want := "[HELLO WORLD]"
	for i := 0; i < 5; i++ {
		if got := seq.NextFrame(3); got != want {
			t.Errorf("Expected static frame %q on call %d, got %q", want, i, got)
		}
	}
	if seq.Rotating() {
		t.Error("Expected non-rotating sequencer")
	}
	if seq.Wrapped() {
		t.Error("Expected static sequencer to never wrap")
	}
}

func TestSequencerDecoration(t *testing.T) {
	seq := NewSequencer(Spec{Content: "HELLO", Prefix: "[", Suffix: "]", Rotate: true})

	if got := seq.NextFrame(3); got != "[HEL]" {
		t.Errorf("Expected %q, got %q", "[HEL]", got)
	}
	if got := seq.NextFrame(3); got != "[ELL]" {
		t.Errorf("Expected %q, got %q", "[ELL]", got)
	}
}

func TestSequencerSeparator(t *testing.T) {
	seq := NewSequencer(Spec{Content: "AB", Separator: "-", Rotate: true})

	// Scroll content is "AB-", so the seam shows the separator
	expected := []string{"AB-", "B-A", "-AB", "AB-"}
	for i, want := range expected {
		if got := seq.NextFrame(3); got != want {
			t.Errorf("Expected frame %q at tick %d, got %q", want, i, got)
		}
	}
	if seq.CycleLen() != 3 {
		t.Errorf("Expected cycle length 3, got %d", seq.CycleLen())
	}
}

func TestSequencerReverse(t *testing.T) {
	seq := NewSequencer(Spec{Content: "HELLO", Rotate: true, Reverse: true})

	expected := []string{"HEL", "OHE", "LOH", "LLO", "ELL", "HEL"}
	for i, want := range expected {
		if got := seq.NextFrame(3); got != want {
			t.Errorf("Expected frame %q at tick %d, got %q", want, i, got)
		}
	}
}

func TestSequencerWidthChangeBetweenCalls(t *testing.T) {
	seq := NewSequencer(NewSpec("HELLO"))

	if got := seq.NextFrame(3); got != "HEL" {
		t.Errorf("Expected %q, got %q", "HEL", got)
	}
	// Only the cursor is cached; a new width takes effect immediately
	if got := seq.NextFrame(5); got != "ELLOH" {
		t.Errorf("Expected %q, got %q", "ELLOH", got)
	}
	if got := seq.NextFrame(2); got != "LL" {
		t.Errorf("Expected %q, got %q", "LL", got)
	}
}

func TestSequencerWrapped(t *testing.T) {
	seq := NewSequencer(NewSpec("HELLO"))

	for i := 0; i < 5; i++ {
		if seq.Wrapped() {
			t.Fatalf("Expected no wrap before tick %d", i)
		}
		seq.NextFrame(3)
	}
	if !seq.Wrapped() {
		t.Error("Expected wrap after one full cycle")
	}
}

func TestSequencerEmptyContent(t *testing.T) {
	seq := NewSequencer(NewSpec(""))

	for i := 0; i < 3; i++ {
		if got := seq.NextFrame(10); got != "" {
			t.Errorf("Expected empty frame for empty content, got %q", got)
		}
	}
}

func TestSequencerRestart(t *testing.T) {
	spec := NewSpec("HELLO")
	first := NewSequencer(spec)
	first.NextFrame(3)
	first.NextFrame(3)

	// A fresh sequencer from the same spec begins again at cursor 0
	second := NewSequencer(spec)
	if got := second.NextFrame(3); got != "HEL" {
		t.Errorf("Expected restarted sequencer to emit %q, got %q", "HEL", got)
	}
}

func TestSequencerDecorWidth(t *testing.T) {
	seq := NewSequencer(Spec{Content: "x", Prefix: "[", Suffix: "]", Rotate: true})
	if got := seq.DecorWidth(); got != 2 {
		t.Errorf("Expected decoration width 2, got %d", got)
	}

	// Wide runes count as two display cells
	wide := NewSequencer(Spec{Content: "x", Prefix: "横", Rotate: true})
	if got := wide.DecorWidth(); got != 2 {
		t.Errorf("Expected decoration width 2 for wide rune, got %d", got)
	}
}
