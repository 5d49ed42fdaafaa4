package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "marquee.log"
)

// setupLogging returns the debug logger and its backing file. With debug
// off everything is discarded: stdout is the render surface and must never
// receive log output, and stderr is reserved for user-facing errors.
func setupLogging(debug bool) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return zerolog.Nop(), nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil
	}

	logger := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return logger, f
}
