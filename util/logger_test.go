package util

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(3) // debug level
	l.SetOutput(&buf)
	l.SetTimestamps(false)

	l.Error("e")
	l.Warn("w")
	l.Info("i")
	l.Verbose("v")
	l.Debug("d")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5, buf.String())

	want := []string{"[ERR] e", "[WRN] w", "[INF] i", "[VRB] v", "[DBG] d"}
	for i, w := range want {
		assert.Equal(t, w, lines[i])
	}
}

func TestLogger_Thresholds(t *testing.T) {
	tests := []struct {
		verbosity int
		want      []string
	}{
		{0, []string{"[ERR]"}},
		{1, []string{"[ERR]", "[WRN]", "[INF]"}},
		{2, []string{"[ERR]", "[WRN]", "[INF]", "[VRB]"}},
		{3, []string{"[ERR]", "[WRN]", "[INF]", "[VRB]", "[DBG]"}},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		l := NewLogger(tt.verbosity)
		l.SetOutput(&buf)
		l.SetTimestamps(false)

		l.Error("x")
		l.Warn("x")
		l.Info("x")
		l.Verbose("x")
		l.Debug("x")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, len(tt.want), "verbosity %d:\n%s", tt.verbosity, buf.String())
		for i, prefix := range tt.want {
			assert.True(t, strings.HasPrefix(lines[i], prefix), "line %q missing %s", lines[i], prefix)
		}
	}
}

func TestLogger_Formatting(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(1)
	l.SetOutput(&buf)

	l.Info("connected to %s after %d tries", "127.0.0.1:80", 1)

	assert.Equal(t, "[INF] connected to 127.0.0.1:80 after 1 tries\n", buf.String())
}

func TestLogger_Timestamps(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(1)
	l.SetOutput(&buf)
	l.SetTimestamps(true)

	l.Info("test")

	// Timestamp format is "HH:MM:SS.mmm"
	assert.Regexp(t, regexp.MustCompile(`^\d\d:\d\d:\d\d\.\d{3} \[INF\] test\n$`), buf.String())
}

func TestLogger_DebugEnablesTimestamps(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(3)
	l.SetOutput(&buf)

	l.Debug("tick")

	assert.Regexp(t, `^\d\d:\d\d:\d\d\.\d{3} \[DBG\] tick`, buf.String())
	assert.Equal(t, LogDebug, l.Level())
}

func TestLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(1)
	l.SetOutput(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.Info("line")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 400)
	for _, line := range lines {
		assert.Equal(t, "[INF] line", line)
	}
}
