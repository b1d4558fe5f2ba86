package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudposse/ekscli/pkg/schema"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    log.Level
		expectError bool
	}{
		{"Empty string returns Info", "", log.InfoLevel, false},
		{"Valid Trace level", "Trace", TraceLevel, false},
		{"Valid Debug level", "Debug", log.DebugLevel, false},
		{"Valid Info level", "Info", log.InfoLevel, false},
		{"Valid Warning level", "Warning", log.WarnLevel, false},
		{"Valid Off level", "Off", log.FatalLevel + 1, false},
		{"Invalid lowercase level", "trace", 0, true},
		{"Invalid mixed case level", "TrAcE", 0, true},
		{"Invalid level", "InvalidLevel", 0, true},
		{"Invalid empty spaces", "  ", 0, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			level, err := ParseLogLevel(test.input)
			if test.expectError {
				assert.ErrorIs(t, err, ErrInvalidLogLevel)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expected, level)
		})
	}
}

func TestTraceLevel_RelativeToDebug(t *testing.T) {
	assert.Equal(t, log.DebugLevel-1, TraceLevel)
	assert.Less(t, int(TraceLevel), int(log.DebugLevel))
}

func TestLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.SetLevel(DebugLevel)
	l.Trace("hidden trace message")
	assert.Empty(t, buf.String())

	l.SetLevel(TraceLevel)
	l.Trace("visible trace message", "key", "value")
	assert.Contains(t, buf.String(), "visible trace message")
	assert.Contains(t, buf.String(), "key=value")
}

func TestLogger_GetLevelString(t *testing.T) {
	l := New()

	l.SetLevel(TraceLevel)
	assert.Equal(t, "trace", l.GetLevelString())

	l.SetLevel(DebugLevel)
	assert.Equal(t, "debug", l.GetLevelString())

	l.SetLevel(OffLevel)
	assert.Equal(t, "off", l.GetLevelString())
}

func TestLogger_OffSuppressesErrors(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.SetLevel(OffLevel)

	l.Error("should not appear")
	assert.Empty(t, buf.String())
}

func TestNewLoggerFromConfig(t *testing.T) {
	cfg := schema.Configuration{Logs: schema.Logs{Level: "Debug", File: "/dev/stderr"}}

	l, err := NewLoggerFromConfig(&cfg)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, l.GetLevel())
	assert.NoError(t, l.Close())
}

func TestNewLoggerFromConfig_InvalidLevel(t *testing.T) {
	cfg := schema.Configuration{Logs: schema.Logs{Level: "Verbose"}}

	_, err := NewLoggerFromConfig(&cfg)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestNewLoggerFromConfig_File(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "ekscli.log")
	cfg := schema.Configuration{Logs: schema.Logs{Level: "Info", File: logFile}}

	l, err := NewLoggerFromConfig(&cfg)
	require.NoError(t, err)
	l.Info("File logging test")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "File logging test")
}

func TestPackageLevelFunctions(t *testing.T) {
	oldLogger := Default()
	defer SetDefault(oldLogger)

	var buf bytes.Buffer
	testLogger := NewLogger(&buf)
	testLogger.SetLevel(TraceLevel)
	SetDefault(testLogger)

	Trace("package level trace")
	Debug("package level debug")
	Info("package level info")
	Warn("package level warn")
	Error("package level error")

	output := buf.String()
	for _, msg := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.Contains(t, output, "package level "+msg)
	}
	assert.Equal(t, TraceLevel, GetLevel())
}

func TestSetDefault_IgnoresNil(t *testing.T) {
	oldLogger := Default()
	SetDefault(nil)
	assert.Same(t, oldLogger, Default())
}
