// Package logging builds the zap logger shared by every service.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where diagnostics go.
type Options struct {
	Debug      bool   // development logger on stderr, debug level
	File       string // production JSON logger appending to this file
	Level      string // level for File; defaults to info
	AppName    string
	AppVersion string
}

/*
New builds a logger from opts. Debug wins over File. With neither set the
returned logger discards everything, since user-facing messages are printed
separately and must not be interleaved with log lines.
*/
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config

	switch {
	case opts.Debug:
		cfg = zap.NewDevelopmentConfig()
	case opts.File != "":
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{opts.File}
		cfg.ErrorOutputPaths = []string{opts.File}
		if opts.Level != "" {
			level, err := zapcore.ParseLevel(opts.Level)
			if err != nil {
				return zap.NewNop(), fmt.Errorf("invalid log level %q: %w", opts.Level, err)
			}
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	default:
		return zap.NewNop(), nil
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    opts.AppName,
		"appVersion": opts.AppVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
