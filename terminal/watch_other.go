//go:build !unix

package terminal

// WidthWatcher is inert on platforms without SIGWINCH; the driver keeps the
// width it resolved at startup
type WidthWatcher struct {
	widthCh chan int
}

// NewWidthWatcher creates a watcher that never fires
func NewWidthWatcher(fd int) *WidthWatcher {
	return &WidthWatcher{widthCh: make(chan int)}
}

// Start is a no-op
func (w *WidthWatcher) Start() {}

// Stop is a no-op
func (w *WidthWatcher) Stop() {}

// Widths returns a channel that never delivers
func (w *WidthWatcher) Widths() <-chan int {
	return w.widthCh
}
