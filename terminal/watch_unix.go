//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// WidthWatcher delivers the new column count on SIGWINCH so the driver can
// recompute the window width between frames
type WidthWatcher struct {
	fd      int
	sigCh   chan os.Signal
	widthCh chan int
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWidthWatcher creates a watcher for the terminal behind fd
func NewWidthWatcher(fd int) *WidthWatcher {
	return &WidthWatcher{
		fd:      fd,
		sigCh:   make(chan os.Signal, 1),
		widthCh: make(chan int, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start begins listening for SIGWINCH
func (w *WidthWatcher) Start() {
	signal.Notify(w.sigCh, syscall.SIGWINCH)
	go w.watchLoop()
}

// Stop stops the watcher and waits for its goroutine to exit
func (w *WidthWatcher) Stop() {
	signal.Stop(w.sigCh)
	close(w.stopCh)
	<-w.doneCh
}

// Widths returns the channel carrying new column counts
func (w *WidthWatcher) Widths() <-chan int {
	return w.widthCh
}

func (w *WidthWatcher) watchLoop() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return
		case <-w.sigCh:
			cols := w.cols()
			if cols <= 0 {
				continue
			}
			// Non-blocking send, replace a stale unconsumed width
			select {
			case w.widthCh <- cols:
			default:
				select {
				case <-w.widthCh:
				default:
				}
				w.widthCh <- cols
			}
		}
	}
}

// cols reads the current column count directly from the tty
func (w *WidthWatcher) cols() int {
	ws, err := unix.IoctlGetWinsize(w.fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}
