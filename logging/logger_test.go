package logging

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Interface compliance (compile-time assertions)
var (
	_ Logger = (*SlogAdapter)(nil)
	_ Logger = (*SliceKitLogger)(nil)
	_ Logger = NoOpLogger{}
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, LogLevelError, ParseLogLevel("error"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("info"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("bogus"))
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "INFO", LogLevelInfo.String())
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestSlogAdapter_ForwardsRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))

	logger.Info("hello", "key", "value")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "key=value")

	assert.NotNil(t, NewDefaultSlogLogger())
}

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"json", "text", "pretty"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: format, Output: &buf})

			logger.Info("format check")
			assert.Contains(t, buf.String(), "format check")
		})
	}
}

func TestSliceKitLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelWarn, Format: "text", Output: &buf})

	logger.Debug("dropped")
	logger.Info("dropped too")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestSliceKitLogger_WithContextAndComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "json", Output: &buf})

	logger.WithComponent("alloc").WithContext("block", "b-1").Info("attrs attached")
	out := buf.String()
	assert.Contains(t, out, `"component":"alloc"`)
	assert.Contains(t, out, `"block":"b-1"`)
	assert.Contains(t, out, "attrs attached")

	// The derived loggers must not leak attributes back to the original.
	buf.Reset()
	logger.Info("plain")
	assert.NotContains(t, buf.String(), "component")
}

func TestSliceKitLogger_AccountingHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelDebug, Format: "json", Output: &buf})

	logger.LogAllocation("alloc-1", 8, 64)
	assert.Contains(t, buf.String(), `"allocation_id":"alloc-1"`)
	assert.Contains(t, buf.String(), `"slots":8`)

	buf.Reset()
	logger.LogRelease("alloc-1", false)
	assert.Contains(t, buf.String(), "Storage released")

	buf.Reset()
	logger.LogRelease("", true)
	assert.Contains(t, buf.String(), "already freed")

	buf.Reset()
	logger.LogLeakReport(2, time.Second)
	assert.Contains(t, buf.String(), "Outstanding allocations detected")

	buf.Reset()
	logger.LogLeakReport(0, time.Second)
	assert.Contains(t, buf.String(), "No outstanding allocations")
}
