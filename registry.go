package marquee

// Handle identifies a registered sequencer. Handles are stable for the
// life of the registry; deactivating one never renumbers the others.
type Handle int

type entry struct {
	seq    *Sequencer
	active bool
}

// Registry owns one sequencer per input line, each advancing independently.
// Not safe for concurrent use; the driving loop is single-threaded.
type Registry struct {
	entries []entry
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a new sequencer for spec at cursor 0 and returns its handle
func (r *Registry) Add(spec Spec) Handle {
	r.entries = append(r.entries, entry{seq: NewSequencer(spec), active: true})
	return Handle(len(r.entries) - 1)
}

// Replace swaps the sequencer behind h for a fresh one built from spec,
// cursor reset to 0. The handle becomes active again if it was not.
func (r *Registry) Replace(h Handle, spec Spec) {
	if !r.valid(h) {
		return
	}
	r.entries[h] = entry{seq: NewSequencer(spec), active: true}
}

// Deactivate excludes h from subsequent TickAll results. Order and
// identity of the remaining handles are untouched.
func (r *Registry) Deactivate(h Handle) {
	if !r.valid(h) {
		return
	}
	r.entries[h].active = false
}

// Sequencer returns the sequencer behind h, or nil for an unknown handle
func (r *Registry) Sequencer(h Handle) *Sequencer {
	if !r.valid(h) {
		return nil
	}
	return r.entries[h].seq
}

// TickAll advances every active sequencer exactly once and returns their
// frames in registration order. Non-rotating sequencers contribute their
// static frame without advancing.
func (r *Registry) TickAll(width int) []string {
	frames := make([]string, 0, len(r.entries))
	for i := range r.entries {
		if !r.entries[i].active {
			continue
		}
		frames = append(frames, r.entries[i].seq.NextFrame(width))
	}
	return frames
}

// ActiveHandles returns the handles that will contribute to the next
// TickAll, in registration order
func (r *Registry) ActiveHandles() []Handle {
	out := make([]Handle, 0, len(r.entries))
	for i := range r.entries {
		if r.entries[i].active {
			out = append(out, Handle(i))
		}
	}
	return out
}

// MaxDecorWidth returns the widest decoration among active sequencers,
// in display cells
func (r *Registry) MaxDecorWidth() int {
	max := 0
	for i := range r.entries {
		if !r.entries[i].active {
			continue
		}
		if w := r.entries[i].seq.DecorWidth(); w > max {
			max = w
		}
	}
	return max
}

// Len returns the total number of handles ever registered
func (r *Registry) Len() int {
	return len(r.entries)
}

// Active returns the number of sequencers still contributing frames
func (r *Registry) Active() int {
	n := 0
	for i := range r.entries {
		if r.entries[i].active {
			n++
		}
	}
	return n
}

func (r *Registry) valid(h Handle) bool {
	return h >= 0 && int(h) < len(r.entries)
}
