// Package output provides terminal output utilities: the stderr logger,
// lipgloss styles, tables, file trees and the TTY spinner.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global stderr logger. Stdout is reserved for user-facing
// output written through Print and Println.
var logger = log.NewWithOptions(os.Stderr, log.Options{})

var stdout io.Writer = os.Stdout

// LogConfig holds the settings SetupLogging applies.
type LogConfig struct {
	// Verbose enables debug level, timestamps and caller reporting.
	Verbose bool

	// Timestamps overrides timestamp reporting. Nil means off. Verbose
	// forces timestamps on regardless.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := cfg.Verbose
	if !timestamps && cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// Logger returns the global logger for packages that take a *log.Logger.
func Logger() *log.Logger {
	return logger
}

// KindLogger returns a child logger prefixed with the project kind.
func KindLogger(kind string) *log.Logger {
	return logger.WithPrefix(StyleNoun.Render(kind))
}

// SetOutput redirects Print and Println, typically to a command's stdout.
func SetOutput(w io.Writer) {
	stdout = w
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	io.WriteString(stdout, msg) //nolint:errcheck // best-effort terminal output
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	io.WriteString(stdout, msg+"\n") //nolint:errcheck // best-effort terminal output
}
