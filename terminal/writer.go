package terminal

import (
	"bufio"
	"io"
	"strconv"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiClearEOL  = []byte("\x1b[K")
	csiCursorUp  = []byte("\x1b[") // followed by N and 'A'
	csiLineReset = []byte("\r")
)

// LineWriter renders marquee frames as a stream of terminal lines.
//
// In same-line mode each frame overwrites the previous one in place with a
// carriage return and a clear-to-end-of-line, the classic single-row
// marquee. Otherwise every frame is printed on its own line, which keeps
// the output usable in a pipeline.
type LineWriter struct {
	w        *bufio.Writer
	sameLine bool
	rows     int // rows painted by the previous block flush
	dirty    bool
}

// NewLineWriter wraps w. sameLine selects in-place rewriting.
func NewLineWriter(w io.Writer, sameLine bool) *LineWriter {
	return &LineWriter{
		w:        bufio.NewWriterSize(w, 8192),
		sameLine: sameLine,
	}
}

// WriteFrame emits a single frame and flushes
func (lw *LineWriter) WriteFrame(frame string) error {
	if lw.sameLine {
		lw.w.Write(csiLineReset)
		lw.w.WriteString(frame)
		lw.w.Write(csiClearEOL)
		lw.dirty = true
	} else {
		lw.w.WriteString(frame)
		lw.w.WriteByte('\n')
	}
	return lw.w.Flush()
}

// WriteBlock repaints one line per frame, moving the cursor back up over
// the previous paint so the whole block animates in place
func (lw *LineWriter) WriteBlock(frames []string) error {
	if len(frames) == 0 {
		return nil
	}
	if lw.rows > 0 {
		lw.w.Write(csiCursorUp)
		writeCount(lw.w, lw.rows)
		lw.w.WriteByte('A')
	}
	for _, frame := range frames {
		lw.w.Write(csiLineReset)
		lw.w.WriteString(frame)
		lw.w.Write(csiClearEOL)
		lw.w.WriteByte('\n')
	}
	lw.rows = len(frames)
	return lw.w.Flush()
}

// Finish terminates an in-place line so the shell prompt does not land on
// top of the last frame. Safe to call when nothing was written.
func (lw *LineWriter) Finish() error {
	if lw.sameLine && lw.dirty {
		lw.w.WriteByte('\n')
		lw.dirty = false
	}
	return lw.w.Flush()
}

// writeCount writes a small positive integer without allocation; row
// counts above two digits fall back to strconv
func writeCount(w *bufio.Writer, n int) {
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	w.WriteString(strconv.Itoa(n))
}
