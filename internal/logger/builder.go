package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/di-graph/go-dmp/internal/config"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	config  LoggerConfig
	factory *WriterFactory
	console io.Writer
	noColor bool
	err     error
}

// NewLoggerBuilder creates a new logger builder writing to stderr.
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config:  DefaultLoggerConfig(),
		factory: NewWriterFactory(),
		console: os.Stderr,
	}
}

// WithConfig sets the logger configuration
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	lc, err := FromLogConfig(cfg)
	if err != nil {
		lb.err = err
		return lb
	}
	lb.config = lc
	return lb
}

// WithConsole replaces stderr as the console destination. A nil writer
// disables console output.
func (lb *LoggerBuilder) WithConsole(w io.Writer) *LoggerBuilder {
	lb.console = w
	return lb
}

// WithNoColor disables colored console output.
func (lb *LoggerBuilder) WithNoColor(noColor bool) *LoggerBuilder {
	lb.noColor = noColor
	return lb
}

// WithLevel overrides the configured level.
func (lb *LoggerBuilder) WithLevel(level zerolog.Level) *LoggerBuilder {
	lb.config.Level = level
	return lb
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (zerolog.Logger, error) {
	if lb.err != nil {
		return zerolog.Nop(), lb.err
	}
	if lb.config.FilePath != "" && lb.config.MaxSizeMB <= 0 {
		return zerolog.Nop(), errors.New("max_log_size_mb must be positive")
	}

	var writers []io.Writer
	if lb.console != nil {
		writers = append(writers, lb.factory.CreateConsoleWriter(lb.console, lb.config.Format, lb.noColor))
	}
	if lb.config.FilePath != "" {
		fw, err := lb.factory.CreateFileWriter(lb.config)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("failed to open log file %s: %w", lb.config.FilePath, err)
		}
		writers = append(writers, fw)
	}
	if len(writers) == 0 {
		return zerolog.Nop(), nil
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger(), nil
}
