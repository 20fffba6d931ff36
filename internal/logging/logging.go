// Package logging builds the logr.Logger shared by the CLI and the library
// packages. Library code only sees the logr interface; zap is the backend.
package logging

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V(...).
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Levels lists the accepted level names in increasing verbosity.
var Levels = []string{"info", "debug", "trace"}

// ParseLevel maps a level name to its verbosity.
func ParseLevel(name string) (int, error) {
	switch name {
	case "", "info":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	case "trace":
		return TRACE, nil
	}
	return 0, fmt.Errorf("unknown log level %q (want one of %v)", name, Levels)
}

// New returns a zap-backed logger at the given verbosity. development selects
// the console encoder; otherwise JSON is used. The returned sync function
// flushes buffered entries.
func New(verbosity int, development bool) (logr.Logger, func(), error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	}
	// zapr maps V(n) to zap level -n.
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("building zap logger: %w", err)
	}
	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}

// NewTestLogger returns a TRACE-level logger whose output is dropped, so tests
// run every log statement without noise.
func NewTestLogger() logr.Logger {
	zl := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(discardSyncer{})),
		zapcore.Level(-TRACE),
	))
	return zapr.NewLogger(zl)
}

type discardSyncer struct{}

func (discardSyncer) Write(p []byte) (int, error) { return len(p), nil }
func (discardSyncer) Sync() error                 { return nil }
