// Package logger provides a simple logging interface for pagedots components.
// Packages log warnings and diagnostics through it without being coupled to
// where the output goes. While the player TUI is running, the standard log
// package is redirected to a file (or discarded) so log lines never land on
// the alt screen.
package logger

import (
	"fmt"
	"log"
	"os"
)

// DebugEnv enables Debug output for loggers created by NewEnvLogger.
const DebugEnv = "PAGEDOTS_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger writes through the standard log package.
type envLogger struct {
	prefix string
	debug  bool
}

// NewEnvLogger creates a logger that respects the PAGEDOTS_DEBUG environment variable.
// The prefix is prepended to all log messages (e.g., "[pagecontrol]" or "[player]").
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix, debug: os.Getenv(DebugEnv) != ""}
}

func (l *envLogger) logf(tag, format string, args ...interface{}) {
	log.Print(l.prefix + " " + tag + fmt.Sprintf(format, args...))
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if l.debug {
		l.logf("", format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.logf("", format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.logf("WARN: ", format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.logf("ERROR: ", format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(format string, args ...interface{}) {}
func (noopLogger) Info(format string, args ...interface{})  {}
func (noopLogger) Warn(format string, args ...interface{})  {}
func (noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for test assertions.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) record(level, format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record("debug", format, args...) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.record("info", format, args...) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record("warn", format, args...) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.record("error", format, args...) }

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	return l.Count(level) > 0
}

// Count returns the number of messages logged at the given level.
func (l *BufferLogger) Count(level string) int {
	n := 0
	for _, m := range l.Messages {
		if m.Level == level {
			n++
		}
	}
	return n
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("[pagedots]")

// Default returns the package-level default logger.
func Default() Logger {
	return defaultLogger
}
