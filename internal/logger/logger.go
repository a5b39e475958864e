// Package logger builds the zerolog logger used by the dmp command.
package logger

import (
	"github.com/di-graph/go-dmp/internal/config"
	"github.com/rs/zerolog"
)

// New creates a logger from cfg that writes to stderr and, when a log file
// is configured, to a rotated file.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
