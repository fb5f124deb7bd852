// Package logger holds the library-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() { current.Store(discard()) }

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// L returns the global logger. It discards all output until Init is called.
// Safe for concurrent use with Init.
func L() *slog.Logger { return current.Load() }

// Init routes library logging to w at the given minimum level.
// A nil writer restores the discarding logger.
func Init(w io.Writer, level slog.Level) {
	if w == nil {
		current.Store(discard())
		return
	}
	current.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// ParseLevel maps debug/info/warn/error onto slog levels. Unknown or empty
// strings yield info and ok = false for anything non-empty.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
