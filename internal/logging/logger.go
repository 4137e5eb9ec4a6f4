// Package logging provides categorized zap loggers for blueprint.
// Each subsystem logs under its own category name; categories can be
// switched off individually from the logging config. Debug mode lowers the
// level to debug and, when a logs directory is configured, also writes a
// dated log file there.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Boot/initialization
	CategoryEphemeris Category = "ephemeris" // Ephemeris providers, fallback decisions
	CategoryEngine    Category = "engine"    // Classification orchestration
	CategoryAudit     Category = "audit"     // Datalog cross-check
	CategoryCLI       Category = "cli"       // Command line surface
)

// AllCategories lists every known category.
var AllCategories = []Category{CategoryBoot, CategoryEphemeris, CategoryEngine, CategoryAudit, CategoryCLI}

// Options mirrors the relevant parts of config.LoggingConfig
// to avoid circular imports
type Options struct {
	Level      string
	JSON       bool
	DebugMode  bool
	Categories map[string]bool
	LogsDir    string

	// Sink replaces stderr as the destination. Used by tests.
	Sink zapcore.WriteSyncer
}

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	opts    Options
	loggers = make(map[Category]*zap.Logger)
)

// Initialize builds the root logger. It may be called again to reconfigure;
// cached category loggers are dropped.
func Initialize(o Options) (*zap.Logger, error) {
	level, err := parseLevel(o.Level)
	if err != nil {
		return nil, err
	}
	if o.DebugMode {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if o.JSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	sink := o.Sink
	if sink == nil {
		sink = zapcore.Lock(os.Stderr)
	}
	cores := []zapcore.Core{zapcore.NewCore(enc, sink, level)}

	if o.DebugMode && o.LogsDir != "" {
		fileSink, err := openLogFile(o.LogsDir)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), fileSink, zapcore.DebugLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	mu.Lock()
	root = logger
	opts = o
	loggers = make(map[Category]*zap.Logger)
	mu.Unlock()

	Get(CategoryBoot).Debug("logging initialized",
		zap.String("level", level.String()),
		zap.Bool("debug_mode", o.DebugMode),
		zap.Bool("json", o.JSON))
	return logger, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

func openLogFile(dir string) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	name := fmt.Sprintf("%s_blueprint.log", time.Now().Format("2006-01-02"))
	sink, _, err := zap.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return sink, nil
}

// IsCategoryEnabled returns whether a specific category is enabled.
// Categories missing from the filter are enabled.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	if opts.Categories == nil {
		return true
	}
	enabled, exists := opts.Categories[string(category)]
	return !exists || enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if the category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}

	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	l := root.Named(string(category))
	loggers[category] = l
	return l
}

// WithRequestID returns l carrying a correlation ID under the "req" key.
func WithRequestID(l *zap.Logger, requestID string) *zap.Logger {
	return l.With(zap.String("req", requestID))
}

// Sync flushes the root logger.
func Sync() error {
	mu.RLock()
	l := root
	mu.RUnlock()
	return l.Sync()
}

// BootDebug logs debug to the boot category. It is a no-op when the
// category is disabled.
func BootDebug(msg string, fields ...zap.Field) { Get(CategoryBoot).Debug(msg, fields...) }

// =============================================================================
// TIMING HELPERS - For performance logging
// =============================================================================

// Timer helps measure operation duration
type Timer struct {
	logger *zap.Logger
	op     string
	start  time.Time
}

// StartTimerOn begins timing an operation on an explicit logger.
func StartTimerOn(logger *zap.Logger, operation string) *Timer {
	return &Timer{logger: logger, op: operation, start: time.Now()}
}

// Stop ends the timer and logs the duration at debug level
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Debug(t.op+" completed", zap.Duration("elapsed", elapsed))
	return elapsed
}

// StopWithThreshold logs warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		t.logger.Warn(t.op+" slow", zap.Duration("elapsed", elapsed), zap.Duration("threshold", threshold))
	} else {
		t.logger.Debug(t.op+" completed", zap.Duration("elapsed", elapsed))
	}
	return elapsed
}
