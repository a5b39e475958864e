package logger

import (
	"fmt"
	"strings"

	"github.com/di-graph/go-dmp/internal/config"
	"github.com/rs/zerolog"
)

// LoggerConfig holds configuration for logger setup
type LoggerConfig struct {
	Level      zerolog.Level
	Format     LogFormat
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// LogFormat represents available log formats
type LogFormat int

const (
	FormatConsole LogFormat = iota
	FormatJSON
	FormatText
)

func (lf LogFormat) String() string {
	switch lf {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// ParseFormat maps a format name to a LogFormat. Unknown names fall back to
// the console format.
func ParseFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}

// ParseLevel parses a level name. The empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}

// DefaultLoggerConfig returns default logger configuration
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		MaxSizeMB:  config.DefaultMaxLogSizeMB,
		MaxBackups: config.DefaultMaxLogBackups,
	}
}

// FromLogConfig converts the file configuration.
func FromLogConfig(cfg config.LogConfig) (LoggerConfig, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return LoggerConfig{}, err
	}
	lc := DefaultLoggerConfig()
	lc.Level = level
	lc.Format = ParseFormat(cfg.LogFormat)
	lc.FilePath = cfg.LogFile
	if cfg.MaxLogSizeMB > 0 {
		lc.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		lc.MaxBackups = cfg.MaxLogBackups
	}
	return lc, nil
}
