// Package logutil configures the process-wide slog logger for urltool.
// The URL value packages themselves are pure and never log; logging is a
// concern of the command layer only.
package logutil

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// EnvDebug enables debug logging when set to "true".
const EnvDebug = "URLTOOL_DEBUG"

var (
	mu           sync.Mutex
	outputWriter io.Writer = os.Stderr
	debugEnabled bool
	structured   bool
)

func init() {
	SetupLogger(os.Getenv(EnvDebug) == "true", false)
}

// SetupLogger configures the global logger.
//
// When debug is true, debug-level records are emitted. When structured is
// true, records are JSON; otherwise the text handler is used. The logger
// writes to stderr unless SetOutput has been called.
// Safe for concurrent use.
func SetupLogger(debug, structuredOutput bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = debug
	structured = structuredOutput
	rebuild()
}

// SetOutput redirects log output, which is useful in tests.
// Safe for concurrent use.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	outputWriter = w
	rebuild()
}

// DebugEnabled reports whether debug logging is active.
func DebugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return debugEnabled
}

// rebuild recreates the default logger. Caller must hold mu.
func rebuild() {
	level := slog.LevelInfo
	if debugEnabled {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if structured {
		handler = slog.NewJSONHandler(outputWriter, opts)
	} else {
		handler = slog.NewTextHandler(outputWriter, opts)
	}
	slog.SetDefault(slog.New(handler))
}
