// Command marquee reads stdin and prints it as a scrolling marquee.
//
// Each new input line restarts the marquee from the beginning; an empty
// line silences it until more input arrives. With --json every line is a
// record {"content": ..., "prefix": ..., "suffix": ..., "rotate": ...};
// with --multi every line becomes its own animated row.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/marquee/driver"
	"github.com/lixenwraith/marquee/feed"
	"github.com/lixenwraith/marquee/terminal"
)

const version = "1.0.0"

func main() {
	// Panic recovery: terminate the in-place output line so the trace is
	// readable, then report to stderr
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprint(os.Stdout, "\x1b[K\n")
			fmt.Fprintf(os.Stderr, "marquee crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var (
		delayMs   = pflag.Uint64P("delay", "d", 1000, "milliseconds between frames")
		width     = pflag.IntP("width", "w", 20, "width of the moving content in characters, 0 fits the terminal")
		noLoop    = pflag.BoolP("no-loop", "l", false, "stop after one full pass instead of looping")
		prefix    = pflag.StringP("prefix", "p", "", "static text before every output line")
		suffix    = pflag.StringP("suffix", "f", "", "static text after every output line")
		separator = pflag.StringP("separator", "s", "    ", "text marking the wrap seam while looping")
		reverse   = pflag.BoolP("reverse", "r", false, "scroll right-to-left")
		sameLine  = pflag.BoolP("same-line", "L", false, "rewrite one line in place instead of printing a line per frame")
		jsonMode  = pflag.BoolP("json", "j", false, "decode each input line as a JSON record")
		multi     = pflag.BoolP("multi", "m", false, "animate one marquee row per input line")
		debugLog  = pflag.Bool("debug", false, "write a debug log to logs/marquee.log")
		showVer   = pflag.BoolP("version", "v", false, "print version and exit")
	)
	pflag.Parse()

	if *showVer {
		fmt.Println("marquee " + version)
		return
	}

	logger, logFile := setupLogging(*debugLog)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := driver.Config{
		Delay:     time.Duration(*delayMs) * time.Millisecond,
		Width:     *width,
		Loop:      !*noLoop,
		JSON:      *jsonMode,
		Multi:     *multi,
		Prefix:    *prefix,
		Suffix:    *suffix,
		Separator: *separator,
		Reverse:   *reverse,
	}
	if *noLoop {
		// The seam never shows in a single pass
		cfg.Separator = ""
	}

	var lines *feed.Lines
	if cfg.Multi {
		lines = feed.NewQueue(os.Stdin)
	} else {
		lines = feed.NewLatest(os.Stdin)
	}
	lines.Start()

	stdoutFd := int(os.Stdout.Fd())
	var widths <-chan int
	if terminal.IsTerminal(stdoutFd) {
		watcher := terminal.NewWidthWatcher(stdoutFd)
		watcher.Start()
		defer watcher.Stop()
		widths = watcher.Widths()
	}

	stop := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		close(stop)
	}()

	out := terminal.NewLineWriter(os.Stdout, *sameLine)
	d := driver.New(cfg, lines, out, os.Stderr, terminal.Width(stdoutFd), widths, logger)

	logger.Info().Str("version", version).Dur("delay", cfg.Delay).Int("width", cfg.Width).Msg("starting")
	if err := d.Run(stop); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		os.Exit(1)
	}
}
