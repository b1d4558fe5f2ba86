package errors

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noColor() FormatterConfig {
	config := DefaultFormatterConfig()
	config.Color = "never"
	return config
}

func TestDefaultFormatterConfig(t *testing.T) {
	config := DefaultFormatterConfig()

	assert.False(t, config.Verbose)
	assert.Equal(t, "auto", config.Color)
	assert.Equal(t, 80, config.MaxLineLength)
}

func TestFormat_NilError(t *testing.T) {
	assert.Empty(t, Format(nil, noColor()))
}

func TestFormat_SimpleError(t *testing.T) {
	result := Format(errors.New("test error"), noColor())

	assert.Equal(t, "test error", result)
	assert.NotContains(t, result, hintPrefix)
}

func TestFormat_ErrorWithMultipleHints(t *testing.T) {
	err := errors.WithHint(errors.WithHint(errors.New("test error"), "First hint"), "Second hint")

	result := Format(err, noColor())

	assert.Contains(t, result, "test error")
	assert.Contains(t, result, "First hint")
	assert.Contains(t, result, "Second hint")
	assert.Equal(t, 2, strings.Count(result, hintPrefix))
}

func TestFormat_LongErrorMessage(t *testing.T) {
	longMsg := "This is a very long error message that exceeds the maximum line length and should be wrapped to multiple lines for better readability in the terminal output"

	result := Format(errors.New(longMsg), noColor())

	for _, line := range strings.Split(result, "\n") {
		assert.LessOrEqual(t, len(line), DefaultMaxLineLength)
	}
	assert.Equal(t, longMsg, strings.ReplaceAll(result, "\n", " "))
}

func TestFormat_Verbose(t *testing.T) {
	config := noColor()
	config.Verbose = true

	result := Format(errors.New("verbose error"), config)

	assert.Contains(t, result, "verbose error")
	// %+v of a cockroachdb error includes the stack.
	assert.Contains(t, result, "formatter_test.go")
}

func TestFormat_ExplanationIsWrapped(t *testing.T) {
	explanation := strings.Repeat("word ", 30)
	err := errors.WithDetail(errors.New("test error"), explanation)

	result := Format(err, noColor())

	lines := strings.Split(strings.TrimSpace(result), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "test error", lines[0])
	for _, line := range lines[2:] {
		assert.LessOrEqual(t, len(line), DefaultMaxLineLength)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{"short", "hello world", 80, "hello world"},
		{"wraps", "aaa bbb ccc", 7, "aaa bbb\nccc"},
		{"default width", "word", 0, "word"},
		{"long word kept", "abcdefghij k", 4, "abcdefghij\nk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wrapText(tt.text, tt.width))
		})
	}
}
