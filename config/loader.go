package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the TCPTALK_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv(EnvPrefix + "PORT"); v != "" {
		cfg.Port = v
	}
	if envBool("NO_DNS") {
		cfg.NoDNS = true
	}
	if v := envInt("TIMEOUT"); v > 0 {
		cfg.Timeout = secondsDuration(v)
	}

	// Session
	if envBool("EXIT_ON_CLOSE") {
		cfg.ExitOnClose = true
	}

	// Output
	if v := envInt("VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
	if envBool("QUIET") {
		cfg.Quiet = true
	}
	if envBool("NO_COLOR") {
		cfg.NoColor = true
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(EnvPrefix + key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(EnvPrefix + key))
	return v == "1" || v == "true" || v == "yes"
}

func secondsDuration(sec int) time.Duration {
	return time.Duration(sec) * time.Second
}
