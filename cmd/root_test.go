package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ncerr "tcptalk/internal/errors"
)

// capture redirects usage and info output for the duration of a test.
func capture(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() { stdout, stderr = prevOut, prevErr })

	for _, k := range []string{"HOST", "PORT", "NO_DNS", "TIMEOUT", "EXIT_ON_CLOSE", "VERBOSE", "QUIET", "NO_COLOR"} {
		t.Setenv("TCPTALK_"+k, "")
	}
	return out, errOut
}

func configField(t *testing.T, err error) string {
	t.Helper()
	var ce *ncerr.ConfigError
	require.True(t, ncerr.As(err, &ce), "expected ConfigError, got %v", err)
	return ce.Field
}

// TestExecute_Version verifies --version prints a version string.
func TestExecute_Version(t *testing.T) {
	out, _ := capture(t)
	require.NoError(t, Execute(context.Background(), []string{"--version"}))
	assert.Equal(t, "tcptalk "+version+"\n", out.String())
}

func TestExecute_Help(t *testing.T) {
	_, errOut := capture(t)
	require.NoError(t, Execute(context.Background(), []string{"--help"}))
	assert.Contains(t, errOut.String(), "tcptalk [options] <host> <port>")
	assert.Contains(t, errOut.String(), "--exit-on-close")
}

// TestExecute_MissingArgs verifies that a missing host or port prints
// usage and fails.
func TestExecute_MissingArgs(t *testing.T) {
	tests := []struct {
		args  []string
		field string
	}{
		{nil, "host"},
		{[]string{"example.com"}, "port"},
	}
	for _, tt := range tests {
		_, errOut := capture(t)
		err := Execute(context.Background(), tt.args)
		require.Error(t, err)
		assert.Equal(t, tt.field, configField(t, err))
		assert.Contains(t, errOut.String(), "Usage:")
	}
}

func TestExecute_TooManyArgs(t *testing.T) {
	capture(t)
	err := Execute(context.Background(), []string{"a", "1", "extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many arguments")
}

// TestExecute_InvalidFlags verifies unknown flags produce an error.
func TestExecute_InvalidFlags(t *testing.T) {
	capture(t)
	assert.Error(t, Execute(context.Background(), []string{"--nonexistent-flag"}))
}

// TestExecute_DryRun verifies --dry-run validates and exits cleanly.
func TestExecute_DryRun(t *testing.T) {
	out, _ := capture(t)
	err := Execute(context.Background(), []string{"--dry-run", "-w", "3", "127.0.0.1", "08080"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "would connect to 127.0.0.1:8080")
	assert.Contains(t, out.String(), "timeout 3s")
}

func TestExecute_DryRunServiceName(t *testing.T) {
	out, _ := capture(t)
	require.NoError(t, Execute(context.Background(), []string{"--dry-run", "example.com", "http"}))
	assert.Contains(t, out.String(), "example.com:http")
}

// TestExecute_DryRunInvalid verifies --dry-run still catches bad configs.
func TestExecute_DryRunInvalid(t *testing.T) {
	capture(t)

	err := Execute(context.Background(), []string{"--dry-run", "localhost", "70000"})
	require.Error(t, err)
	assert.Equal(t, "port", configField(t, err))

	err = Execute(context.Background(), []string{"--dry-run", "localhost", "80-90"})
	require.Error(t, err)
	assert.Equal(t, "port", configField(t, err))

	err = Execute(context.Background(), []string{"--dry-run", "-n", "localhost", "80"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DNS disabled")
}

// TestExecute_EnvThenFlags verifies flags win over the environment,
// which wins over defaults.
func TestExecute_EnvThenFlags(t *testing.T) {
	out, _ := capture(t)
	t.Setenv("TCPTALK_HOST", "10.0.0.1")
	t.Setenv("TCPTALK_PORT", "7")
	t.Setenv("TCPTALK_TIMEOUT", "9")
	t.Setenv("TCPTALK_EXIT_ON_CLOSE", "yes")

	require.NoError(t, Execute(context.Background(), []string{"--dry-run"}))
	assert.Contains(t, out.String(), "10.0.0.1:7")
	assert.Contains(t, out.String(), "timeout 9s")
	assert.Contains(t, out.String(), "exit-on-close true")

	out.Reset()
	require.NoError(t, Execute(context.Background(),
		[]string{"--dry-run", "-w", "2", "--exit-on-close=false", "10.0.0.2", "8"}))
	assert.Contains(t, out.String(), "10.0.0.2:8")
	assert.Contains(t, out.String(), "timeout 2s")
	assert.Contains(t, out.String(), "exit-on-close false")
}
