// Package logging builds the structured logger every driver shares.
// Grounded on viamrobotics-rdk's direct go.uber.org/zap dependency; the
// MAPFHET_DEBUG switch is the Go analogue of the original Rust
// binaries' RUST_LOG=info (spec.md 6, "Environment").
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger, or a development logger (colorized,
// caller-annotated, debug-level) when MAPFHET_DEBUG is set to a
// non-empty value.
func New() (*zap.Logger, error) {
	if os.Getenv("MAPFHET_DEBUG") != "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return cfg.Build()
	}
	return zap.NewProduction()
}
