// Package logging provides debug logging utilities for the station-64 BBS.
package logging

import (
	"log"
	"os"
	"sync/atomic"
)

var debugEnabled atomic.Bool

func init() {
	if os.Getenv("DEBUG") == "1" {
		debugEnabled.Store(true)
	}
}

// SetDebug toggles debug output. Safe to call at runtime (the config
// watcher flips it on hot reload).
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// DebugEnabled reports whether Debug produces output.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// Debug logs a message only when debug output is enabled.
// Set via the -debug flag, DEBUG=1 environment variable, or config.
func Debug(format string, args ...any) {
	if debugEnabled.Load() {
		log.Printf("DEBUG: "+format, args...)
	}
}
