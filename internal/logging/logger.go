// Package logging builds the zap logger shared by every command.
//
// Diagnostics go to stderr so they never interleave with the interactive
// prompts on stdout. The default level is warn; --verbose lowers it to debug.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels accepted by New, lowest first.
var Levels = []string{"debug", "info", "warn", "error"}

// DefaultLevel keeps interactive sessions quiet.
const DefaultLevel = "warn"

// New returns a console-encoded logger writing to w at the given level.
// A nil w means os.Stderr.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core), nil
}

// ParseLevel maps a level name to a zapcore.Level. Empty means DefaultLevel.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		level = DefaultLevel
	}
	for _, l := range Levels {
		if l == level {
			var lvl zapcore.Level
			if err := lvl.UnmarshalText([]byte(level)); err != nil {
				return 0, err
			}
			return lvl, nil
		}
	}
	return 0, fmt.Errorf("invalid log level %q: must be one of %v", level, Levels)
}
