// Package debug provides the diagnostic log.
package debug

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// LogFile is the log written inside the config directory.
const LogFile = "debug.log"

// Enabled returns true if debug mode is active (STIXPICK_DEBUG=1).
func Enabled() bool {
	return os.Getenv("STIXPICK_DEBUG") == "1"
}

// NewLogger returns a logger writing to dir/debug.log when debug mode is
// enabled, and a disabled logger otherwise. The TUI owns stdout, so nothing
// is ever written to the terminal. The returned closer must be called on
// exit.
func NewLogger(dir string) (zerolog.Logger, io.Closer, error) {
	if !Enabled() {
		return zerolog.Nop(), nopCloser{}, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	f, err := os.OpenFile(filepath.Join(dir, LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	return New(f), f, nil
}

// New returns a debug-level logger writing JSON lines to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
