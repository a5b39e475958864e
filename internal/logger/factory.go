package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterStrategy wraps a destination in a formatting writer.
type WriterStrategy interface {
	CreateWriter(out io.Writer) io.Writer
}

// JSONWriterStrategy writes zerolog's native JSON lines.
type JSONWriterStrategy struct{}

func (JSONWriterStrategy) CreateWriter(out io.Writer) io.Writer {
	return out
}

// ConsoleWriterStrategy writes human readable, optionally colored lines.
type ConsoleWriterStrategy struct {
	NoColor bool
}

func (s ConsoleWriterStrategy) CreateWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: out, NoColor: s.NoColor, TimeFormat: time.Kitchen}
}

// TextWriterStrategy writes plain lines without timestamps or color.
type TextWriterStrategy struct{}

func (TextWriterStrategy) CreateWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:          out,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
}

// WriterFactory creates writers based on format
type WriterFactory struct {
	strategies map[LogFormat]WriterStrategy
}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{
		strategies: map[LogFormat]WriterStrategy{
			FormatJSON:    JSONWriterStrategy{},
			FormatConsole: ConsoleWriterStrategy{},
			FormatText:    TextWriterStrategy{},
		},
	}
}

// CreateConsoleWriter creates a writer on out in the given format.
func (wf *WriterFactory) CreateConsoleWriter(out io.Writer, format LogFormat, noColor bool) io.Writer {
	if format == FormatConsole {
		return ConsoleWriterStrategy{NoColor: noColor}.CreateWriter(out)
	}
	strategy, exists := wf.strategies[format]
	if !exists {
		strategy = ConsoleWriterStrategy{NoColor: noColor}
	}
	return strategy.CreateWriter(out)
}

// CreateFileWriter creates a file writer with rotation.
func (wf *WriterFactory) CreateFileWriter(cfg LoggerConfig) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, err
	}

	lumberjackLogger := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		LocalTime:  true,
		MaxBackups: cfg.MaxBackups,
	}

	// Never write escape codes into a file.
	if cfg.Format == FormatConsole {
		return ConsoleWriterStrategy{NoColor: true}.CreateWriter(lumberjackLogger), nil
	}
	strategy, exists := wf.strategies[cfg.Format]
	if !exists {
		strategy = JSONWriterStrategy{}
	}
	return strategy.CreateWriter(lumberjackLogger), nil
}
