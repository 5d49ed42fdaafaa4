// Package feed supplies marquee content from an input stream: a latest-line
// mailbox for the single-marquee modes and a queue for multi-line mode, plus
// decoding of per-line JSON records.
package feed

import (
	"bufio"
	"io"
	"sync"
)

// Lines reads an input stream line by line on its own goroutine.
//
// In latest mode (the default) only the newest line is kept: the driver
// polls Latest each tick and a fresh line restarts the marquee. In queue
// mode every non-empty line is retained until drained, one marquee per line.
type Lines struct {
	r       io.Reader
	keepAll bool

	mu     sync.Mutex
	latest string
	seq    uint64
	queue  []string
	closed bool
}

// NewLatest creates a feed keeping only the newest line
func NewLatest(r io.Reader) *Lines {
	return &Lines{r: r}
}

// NewQueue creates a feed retaining every non-empty line until drained
func NewQueue(r io.Reader) *Lines {
	return &Lines{r: r, keepAll: true}
}

// Start launches the reader goroutine. Call once.
func (l *Lines) Start() {
	go l.readLoop()
}

func (l *Lines) readLoop() {
	scanner := bufio.NewScanner(l.r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		l.mu.Lock()
		if l.keepAll {
			if line != "" {
				l.queue = append(l.queue, line)
			}
		} else {
			l.latest = line
			l.seq++
		}
		l.mu.Unlock()
	}
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
}

// Latest returns the newest line and a sequence number that increments on
// every received line, so callers can tell a re-sent value from a stale one
func (l *Lines) Latest() (string, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.latest, l.seq
}

// Clear empties the mailbox, e.g. after a JSON parse failure so the bad
// line is not re-parsed every tick
func (l *Lines) Clear() {
	l.mu.Lock()
	l.latest = ""
	l.mu.Unlock()
}

// Drain returns and removes all queued lines, in arrival order
func (l *Lines) Drain() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.queue
	l.queue = nil
	return out
}

// Closed reports whether the input stream has reached EOF
func (l *Lines) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}
