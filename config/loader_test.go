package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv_HostPort(t *testing.T) {
	t.Setenv("TCPTALK_HOST", "test.example.com")
	t.Setenv("TCPTALK_PORT", "8080")
	cfg := &Config{}
	LoadFromEnv(cfg)
	assert.Equal(t, "test.example.com", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadFromEnv_Booleans(t *testing.T) {
	tests := []struct {
		key    string
		values []string
		get    func(*Config) bool
	}{
		{"TCPTALK_NO_DNS", []string{"1", "true", "yes", "TRUE", "Yes"}, func(c *Config) bool { return c.NoDNS }},
		{"TCPTALK_EXIT_ON_CLOSE", []string{"1", "true"}, func(c *Config) bool { return c.ExitOnClose }},
		{"TCPTALK_QUIET", []string{"yes"}, func(c *Config) bool { return c.Quiet }},
		{"TCPTALK_NO_COLOR", []string{"1"}, func(c *Config) bool { return c.NoColor }},
	}

	for _, tt := range tests {
		for _, v := range tt.values {
			t.Run(tt.key+"="+v, func(t *testing.T) {
				t.Setenv(tt.key, v)
				cfg := &Config{}
				LoadFromEnv(cfg)
				assert.True(t, tt.get(cfg))
			})
		}
	}
}

func TestLoadFromEnv_FalseyBooleans(t *testing.T) {
	t.Setenv("TCPTALK_QUIET", "no")
	t.Setenv("TCPTALK_NO_DNS", "0")
	cfg := &Config{}
	LoadFromEnv(cfg)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.NoDNS)
}

func TestLoadFromEnv_Timeout(t *testing.T) {
	t.Setenv("TCPTALK_TIMEOUT", "10")
	cfg := &Config{}
	LoadFromEnv(cfg)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoadFromEnv_NoOverrideWhenEmpty(t *testing.T) {
	// Ensure no TCPTALK_ vars are set.
	os.Clearenv()

	cfg := &Config{Host: "original", Port: "1234"}
	LoadFromEnv(cfg)

	assert.Equal(t, "original", cfg.Host)
	assert.Equal(t, "1234", cfg.Port)
}

func TestLoadFromEnv_InvalidIntIgnored(t *testing.T) {
	t.Setenv("TCPTALK_TIMEOUT", "not-a-number")
	t.Setenv("TCPTALK_VERBOSE", "lots")
	cfg := &Config{}
	LoadFromEnv(cfg)
	assert.Zero(t, cfg.Timeout)
	assert.Zero(t, cfg.Verbose)
}

func TestLoadFromEnv_Verbose(t *testing.T) {
	t.Setenv("TCPTALK_VERBOSE", "3")
	cfg := &Config{}
	LoadFromEnv(cfg)
	assert.Equal(t, 3, cfg.Verbose)
}
