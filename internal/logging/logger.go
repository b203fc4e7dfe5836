// Package logging provides the leveled logger used across daybelt.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Level           string
	Format          string
	ReportTimestamp bool
	Prefix          string
}

var (
	mu            sync.RWMutex
	defaultLogger = New(os.Stderr, Options{Level: "warn", Prefix: "belt"})
)

// New builds a charmbracelet logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	level := ParseLevel(opts.Level)
	if DebugEnabled() {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       ParseFormatter(opts.Format),
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// Default returns the process-wide logger.
func Default() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

// ParseLevel maps a level name to a log.Level, defaulting to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning", "":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter maps a formatter name to a log.Formatter.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// ValidLevel reports whether level is a recognized level name.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// ValidFormat reports whether format is a recognized formatter name.
func ValidFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "json", "logfmt":
		return true
	}
	return false
}
