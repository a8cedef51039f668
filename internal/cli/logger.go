package cli

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console logger on stderr. verbose forces debug level.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	if verbose {
		level = "debug"
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.WarnLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return cfg.Build()
}
