package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedLogger(buf *bytes.Buffer, verbose bool) *ColoredLogger {
	cl := New(buf, verbose)
	cl.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }
	return cl
}

func TestColoredLogger_DebugRequiresVerbose(t *testing.T) {
	var buf bytes.Buffer
	cl := fixedLogger(&buf, false)

	cl.Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	cl.verbose = true
	cl.Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestColoredLogger_FormatsLevelAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	cl := fixedLogger(&buf, false)

	cl.Warn("skipping %s", "a/b")

	line := buf.String()
	assert.Contains(t, line, "25-03-04 05:06:07")
	assert.Contains(t, line, ColorYellow+"WARN ")
	assert.True(t, strings.HasSuffix(line, "skipping a/b"+ColorReset+"\n"))
}

func TestColoredLogger_AddWriterFansOut(t *testing.T) {
	var first, second bytes.Buffer
	cl := fixedLogger(&first, false)

	cl.addWriter(INFO, &second)
	cl.addWriter(INFO, &second)
	cl.Info("hello")

	assert.Contains(t, first.String(), "hello")
	assert.Equal(t, 2, strings.Count(second.String(), "hello"))

	cl.Warn("only first")
	assert.NotContains(t, second.String(), "only first")
}

func TestDiscard(t *testing.T) {
	require.NotPanics(t, func() {
		s := Discard()
		s.Debug("x")
		s.Info("x %d", 1)
		s.Warn("x")
	})
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "FATAL", FATAL.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}
