package logger

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// defaultLogger is the global default Logger instance stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(NewLogger(os.Stderr))
}

// Default returns the global default Logger instance.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault sets a new global default Logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// New creates a new Logger writing to stderr.
func New() *Logger {
	return NewLogger(os.Stderr)
}

func Trace(msg any, keyvals ...any) {
	Default().Trace(msg, keyvals...)
}

func Debug(msg any, keyvals ...any) {
	Default().Debug(msg, keyvals...)
}

func Info(msg any, keyvals ...any) {
	Default().Info(msg, keyvals...)
}

func Warn(msg any, keyvals ...any) {
	Default().Warn(msg, keyvals...)
}

func Error(msg any, keyvals ...any) {
	Default().Error(msg, keyvals...)
}

// SetLevel sets the level of the default logger.
func SetLevel(level log.Level) {
	Default().SetLevel(level)
}

// GetLevel returns the level of the default logger.
func GetLevel() log.Level {
	return Default().GetLevel()
}

// SetOutput redirects the default logger.
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}
