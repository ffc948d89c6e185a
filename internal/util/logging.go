// Package util provides common utilities including logging setup,
// file system locations, and display formatting helpers.
package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger. The TUI owns stdout, so SetupLogging
// points it at a file.
var Logger = logrus.New()

// SetupLogging sets the log level and redirects output to path (created if
// missing). An empty path keeps the current output. The returned closer
// releases the file.
func SetupLogging(level, path string) (io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	Logger.SetLevel(lvl)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if path == "" {
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Logger.SetOutput(f)
	return f, nil
}

// SetLevel changes the level at runtime, ignoring unknown names.
func SetLevel(level string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		Logger.SetLevel(lvl)
	}
}

// Component returns a logger entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Logger.WithField("component", name)
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		Logger.WithError(err).Error(context)
	}
}
