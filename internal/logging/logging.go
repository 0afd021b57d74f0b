// Package logging constructs the process-wide zap logger.
package logging

import (
	"os"

	"go.uber.org/zap"
)

// New builds a logger. Production JSON output by default; human-readable
// development output when LESSONSMITH_DEBUG is set.
func New() (*zap.Logger, error) {
	if os.Getenv("LESSONSMITH_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// NewNop returns a no-op logger. Library constructors default to this so
// callers that don't care about logging never pass nil.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
