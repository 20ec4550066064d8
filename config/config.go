// Package config defines the runtime configuration for tcptalk and
// validates it before a session is built.
package config

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	ncerr "tcptalk/internal/errors"
)

// Config holds every tuneable for a single tcptalk session.
type Config struct {
	// ── Connection ───────────────────────────────────────────────────
	Host    string
	Port    string        // numeric port or TCP service name
	Timeout time.Duration // connect timeout; 0 waits for the OS
	NoDNS   bool

	// ── Session ──────────────────────────────────────────────────────
	ExitOnClose bool // stop the sender once the peer closes

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
	Quiet   bool // hide progress lines
	NoColor bool
}

// ── Port helpers ─────────────────────────────────────────────────────

// IsNumericPort reports whether spec is made of digits only.
func IsNumericPort(spec string) bool {
	if spec == "" {
		return false
	}
	for _, r := range spec {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// serviceRe matches IANA-style service names such as "http" or "sip-tls".
var serviceRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// ParsePort accepts "80" or a service name such as "http".  Numeric
// ports are range-checked; names are left for the resolver.
func ParsePort(spec string) (string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", &ncerr.ConfigError{Field: "port", Message: "required"}
	}
	if !IsNumericPort(spec) {
		if !serviceRe.MatchString(spec) {
			return "", &ncerr.ConfigError{
				Field:   "port",
				Value:   spec,
				Message: "not a port number or service name",
			}
		}
		return spec, nil
	}
	port, err := strconv.Atoi(spec)
	if err != nil || port < 1 || port > 65535 {
		return "", &ncerr.ConfigError{
			Field:   "port",
			Value:   spec,
			Message: "out of range 1-65535",
			Hint:    "use a port between 1 and 65535",
		}
	}
	return strconv.Itoa(port), nil
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Host == "" {
		return &ncerr.ConfigError{
			Field:   "host",
			Message: "required",
			Hint:    "usage: tcptalk <host> <port>",
		}
	}
	port, err := ParsePort(c.Port)
	if err != nil {
		return err
	}
	c.Port = port

	if c.Timeout < 0 {
		return &ncerr.ConfigError{
			Field:   "timeout",
			Value:   c.Timeout,
			Message: "must not be negative",
		}
	}
	if c.Verbose < 0 {
		c.Verbose = 0
	}
	return nil
}
