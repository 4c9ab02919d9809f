// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Writes every entry to the console and, optionally, to a rotating log file

package structured

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a StructuredLogger
type Options struct {
	// Level is a logrus level name (debug, info, warn, error). Empty means info.
	Level string

	// FilePath is the log file; empty disables the file sink
	FilePath string

	// Console receives every entry; nil means os.Stdout
	Console io.Writer

	// RunID is attached to every entry when set
	RunID string
}

// StructuredLogger implements the Logger interface using logrus
type StructuredLogger struct {
	entry *logrus.Entry
	file  *lumberjack.Logger
}

// NewStructuredLogger creates a logger writing to the configured sinks
func NewStructuredLogger(opts Options) (*StructuredLogger, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	base := logrus.New()
	base.SetLevel(level)
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	l := &StructuredLogger{}
	if opts.FilePath != "" {
		l.file = &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		base.SetOutput(io.MultiWriter(console, l.file))
	} else {
		base.SetOutput(console)
	}

	l.entry = logrus.NewEntry(base)
	if opts.RunID != "" {
		l.entry = l.entry.WithField("run_id", opts.RunID)
	}

	return l, nil
}

// Debug logs a debug message
func (l *StructuredLogger) Debug(msg string, fields map[string]interface{}) {
	l.withFields(fields).Debug(msg)
}

// Info logs an info message
func (l *StructuredLogger) Info(msg string, fields map[string]interface{}) {
	l.withFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *StructuredLogger) Warn(msg string, fields map[string]interface{}) {
	l.withFields(fields).Warn(msg)
}

// Error logs an error message
func (l *StructuredLogger) Error(msg string, fields map[string]interface{}) {
	l.withFields(fields).Error(msg)
}

// Close releases the log file, if one is open
func (l *StructuredLogger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *StructuredLogger) withFields(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	return l.entry.WithFields(logrus.Fields(fields))
}
