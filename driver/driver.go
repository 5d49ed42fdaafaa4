// Package driver binds the feed, the marquee registry, and the terminal
// writer into a fixed-cadence tick loop. Each tick is a pure synchronous
// computation; the feed goroutine and the resize watcher communicate with
// the loop only through the mailbox and the width channel.
package driver

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/marquee"
	"github.com/lixenwraith/marquee/feed"
	"github.com/lixenwraith/marquee/terminal"
)

// Config carries the CLI-level options the loop needs
type Config struct {
	// Delay is the interval between ticks.
	Delay time.Duration

	// Width is the moving-content width in characters; 0 fits the
	// terminal by subtracting the decoration width from the column count.
	Width int

	// Loop keeps rotating forever; when false the run ends after one
	// full pass over the content.
	Loop bool

	// JSON decodes each input line as a feed.Record.
	JSON bool

	// Multi registers one marquee per input line instead of restarting
	// the single marquee on every new line.
	Multi bool

	// Prefix, Suffix, Separator and Reverse apply to every sequencer;
	// JSON records nest their own decoration inside Prefix/Suffix.
	Prefix    string
	Suffix    string
	Separator string
	Reverse   bool
}

// Driver runs the tick/render loop
type Driver struct {
	cfg    Config
	reg    *marquee.Registry
	lines  *feed.Lines
	out    *terminal.LineWriter
	errOut io.Writer
	log    zerolog.Logger

	termWidth int
	widths    <-chan int // resize updates, may be nil

	// single-marquee state
	handle  marquee.Handle
	bound   bool
	current string
	lastSeq uint64
}

// New creates a driver. termWidth seeds the fit-width calculation; widths
// may be nil when no resize watching is available.
func New(cfg Config, lines *feed.Lines, out *terminal.LineWriter, errOut io.Writer, termWidth int, widths <-chan int, log zerolog.Logger) *Driver {
	return &Driver{
		cfg:       cfg,
		reg:       marquee.NewRegistry(),
		lines:     lines,
		out:       out,
		errOut:    errOut,
		log:       log,
		termWidth: termWidth,
		widths:    widths,
	}
}

// Run ticks at the configured cadence until stop closes or a non-looping
// run completes. Only the remainder of the interval is slept after each
// tick's render work, so the cadence does not drift with frame cost.
func (d *Driver) Run(stop <-chan struct{}) error {
	for {
		start := time.Now()
		done, err := d.tick()
		if err != nil {
			return err
		}
		if done {
			d.log.Debug().Msg("run complete")
			return d.out.Finish()
		}

		remaining := d.cfg.Delay - time.Since(start)
		if remaining < 0 {
			remaining = 0
		}
		timer := time.NewTimer(remaining)

	wait:
		for {
			select {
			case <-stop:
				timer.Stop()
				return d.out.Finish()
			case w := <-d.widths:
				d.termWidth = w
				d.log.Debug().Int("columns", w).Msg("terminal resized")
			case <-timer.C:
				break wait
			}
		}
	}
}

// tick runs one poll/advance/render cycle. The returned bool reports that
// a finite run has produced its last frame.
func (d *Driver) tick() (bool, error) {
	if d.cfg.Multi {
		d.admitQueued()
	} else {
		d.pollLatest()
	}

	frames := d.reg.TickAll(d.windowWidth())

	if len(frames) > 0 {
		var err error
		if d.cfg.Multi {
			err = d.out.WriteBlock(frames)
		} else {
			err = d.out.WriteFrame(frames[0])
		}
		if err != nil {
			return false, fmt.Errorf("write frame: %w", err)
		}
	}

	d.retire()
	return d.done(), nil
}

// admitQueued registers a sequencer for every queued input line
func (d *Driver) admitQueued() {
	for _, line := range d.lines.Drain() {
		spec, err := d.buildSpec(line)
		if err != nil {
			fmt.Fprintf(d.errOut, "marquee: %v\n", err)
			d.log.Warn().Err(err).Msg("input line rejected")
			continue
		}
		h := d.reg.Add(spec)
		d.log.Debug().Int("handle", int(h)).Msg("marquee registered")
	}
}

// pollLatest restarts the single marquee when the mailbox holds a new line.
// A re-sent identical line does not reset the cursor; an empty line
// silences the marquee until new content arrives.
func (d *Driver) pollLatest() {
	line, seq := d.lines.Latest()
	if seq == d.lastSeq {
		return
	}
	d.lastSeq = seq

	if line == "" {
		if d.bound {
			d.reg.Deactivate(d.handle)
		}
		d.current = ""
		return
	}
	if d.bound && line == d.current && d.reg.Active() > 0 {
		return
	}

	spec, err := d.buildSpec(line)
	if err != nil {
		fmt.Fprintf(d.errOut, "marquee: %v\n", err)
		d.log.Warn().Err(err).Msg("input line rejected")
		// Stop re-parsing the bad line on every tick
		d.lines.Clear()
		if d.bound {
			d.reg.Deactivate(d.handle)
		}
		d.current = ""
		return
	}

	if d.bound {
		d.reg.Replace(d.handle, spec)
	} else {
		d.handle = d.reg.Add(spec)
		d.bound = true
	}
	d.current = line
	d.log.Debug().Msg("marquee restarted")
}

// buildSpec turns one input line into a Spec, decoding JSON records when
// configured
func (d *Driver) buildSpec(line string) (marquee.Spec, error) {
	base := marquee.Spec{
		Prefix:    d.cfg.Prefix,
		Suffix:    d.cfg.Suffix,
		Separator: d.cfg.Separator,
		Rotate:    true,
		Reverse:   d.cfg.Reverse,
	}
	if !d.cfg.JSON {
		base.Content = line
		if err := base.Validate(); err != nil {
			return marquee.Spec{}, err
		}
		return base, nil
	}
	rec, err := feed.DecodeRecord(line)
	if err != nil {
		return marquee.Spec{}, err
	}
	return rec.Spec(base), nil
}

// retire deactivates sequencers that have produced their last frame: the
// single static frame of a non-rotating spec, or a completed pass when not
// looping
func (d *Driver) retire() {
	for _, h := range d.reg.ActiveHandles() {
		seq := d.reg.Sequencer(h)
		if !seq.Rotating() {
			d.reg.Deactivate(h)
			continue
		}
		if !d.cfg.Loop && seq.Wrapped() {
			d.reg.Deactivate(h)
		}
	}
}

// done reports whether the run is finite and every marquee has finished.
// Looping rotators never retire, so a looping run only ends via stop.
func (d *Driver) done() bool {
	if d.cfg.Multi {
		return d.lines.Closed() && d.reg.Len() > 0 && d.reg.Active() == 0
	}
	return !d.cfg.Loop && d.bound && d.reg.Active() == 0
}

// windowWidth resolves the moving-content width for this tick
func (d *Driver) windowWidth() int {
	if d.cfg.Width > 0 {
		return d.cfg.Width
	}
	w := d.termWidth - d.reg.MaxDecorWidth()
	if w < 1 {
		w = 1
	}
	return w
}
