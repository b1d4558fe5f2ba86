package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/cloudposse/ekscli/pkg/schema"
)

const (
	// TraceLevel is one step more verbose than Debug.
	TraceLevel = log.DebugLevel - 1
	DebugLevel = log.DebugLevel
	InfoLevel  = log.InfoLevel
	WarnLevel  = log.WarnLevel
	ErrorLevel = log.ErrorLevel
	// OffLevel is above every level the logger emits.
	OffLevel = log.FatalLevel + 1
)

type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

const (
	stdoutPath  = "/dev/stdout"
	stderrPath  = "/dev/stderr"
	logFileMode = 0o644
)

// ErrInvalidLogLevel is returned when a log level name is not recognized.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Logger wraps a charmbracelet logger and adds a Trace level.
type Logger struct {
	*log.Logger
	file *os.File
}

// NewLogger creates a Logger writing to w.
func NewLogger(w io.Writer) *Logger {
	l := log.New(w)
	l.SetReportTimestamp(false)
	l.SetStyles(styles())
	return &Logger{Logger: l}
}

// NewLoggerFromConfig creates a Logger from the `logs` section of the configuration.
func NewLoggerFromConfig(cfg *schema.Configuration) (*Logger, error) {
	level, err := ParseLogLevel(cfg.Logs.Level)
	if err != nil {
		return nil, err
	}

	var l *Logger
	switch cfg.Logs.File {
	case "", stderrPath:
		l = NewLogger(os.Stderr)
	case stdoutPath:
		l = NewLogger(os.Stdout)
	default:
		f, err := os.OpenFile(cfg.Logs.File, os.O_WRONLY|os.O_APPEND|os.O_CREATE, logFileMode)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %q: %w", cfg.Logs.File, err)
		}
		l = NewLogger(f)
		l.file = f
	}

	l.SetLevel(level)
	return l, nil
}

// ParseLogLevel converts a configured level name to a log.Level.
// Names are case-sensitive. An empty name means Info.
func ParseLogLevel(logLevel string) (log.Level, error) {
	switch LogLevel(logLevel) {
	case "", LogLevelInfo:
		return InfoLevel, nil
	case LogLevelTrace:
		return TraceLevel, nil
	case LogLevelDebug:
		return DebugLevel, nil
	case LogLevelWarning:
		return WarnLevel, nil
	case LogLevelOff:
		return OffLevel, nil
	default:
		return InfoLevel, fmt.Errorf("%w '%s'. Supported log levels are Trace, Debug, Info, Warning, Off", ErrInvalidLogLevel, logLevel)
	}
}

// Trace logs a message at TraceLevel.
func (l *Logger) Trace(msg any, keyvals ...any) {
	l.Log(TraceLevel, msg, keyvals...)
}

// GetLevelString returns the lowercase name of the current level.
func (l *Logger) GetLevelString() string {
	switch level := l.GetLevel(); level {
	case TraceLevel:
		return "trace"
	case OffLevel:
		return "off"
	default:
		return level.String()
	}
}

// Close releases the log file, if the logger owns one.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRCE").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("61"))
	return s
}
