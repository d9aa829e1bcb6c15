// Package logging builds the zap.Logger shared by recommend.Facade and
// cmd/bnrec, with the level/format convention this module standardizes on:
// zap's production config, which writes structured JSON.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.Logger at the given level name ("debug", "info",
// "warn", "error"; case-insensitive, defaults to info on an empty or
// unrecognized value). A nil *zap.Logger is never returned; callers that
// want to discard output should use zap.NewNop directly.
func New(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}

// parseLevel defaults to info on an empty or unrecognized level name.
func parseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if level == "" {
		return zapcore.InfoLevel
	}
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
