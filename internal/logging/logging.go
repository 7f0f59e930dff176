// Package logging provides categorized structured logging for promptlens on
// top of zap. Each subsystem logs through its own named logger; categories
// can be toggled off individually, and production mode (debug_mode false)
// silences everything.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category identifies a logging subsystem.
type Category string

const (
	CategoryEngine Category = "engine" // overlap engine invocations
	CategoryStore  Category = "store"  // history database
	CategoryWatch  Category = "watch"  // file watcher
	CategoryCLI    Category = "cli"    // command dispatch
)

// Options mirrors config.LoggingConfig so this package does not import the
// config package.
type Options struct {
	Level      string
	DebugMode  bool
	Categories map[string]bool
}

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	opts    Options
	loggers = make(map[Category]*zap.Logger)
)

// Init builds the base logger from the given options. Verbose forces the
// debug level regardless of the configured one. Safe to call more than once;
// later calls replace the earlier configuration.
func Init(o Options, verbose bool) error {
	mu.Lock()
	defer mu.Unlock()

	opts = o
	loggers = make(map[Category]*zap.Logger)

	if !o.DebugMode && !verbose {
		base = zap.NewNop()
		return nil
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	} else if o.Level != "" {
		if err := level.Set(o.Level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", o.Level, err)
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	base = built
	return nil
}

// Get returns the logger for a category; a no-op logger when the category is
// disabled.
func Get(c Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[c]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[c]; ok {
		return l
	}
	var l *zap.Logger
	if categoryEnabled(string(c)) {
		l = base.Named(string(c))
	} else {
		l = zap.NewNop()
	}
	loggers[c] = l
	return l
}

// categoryEnabled is called with mu held.
func categoryEnabled(name string) bool {
	if opts.Categories == nil {
		return true
	}
	enabled, ok := opts.Categories[name]
	if !ok {
		return true
	}
	return enabled
}

// Sync flushes buffered log entries. Best effort on shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}
