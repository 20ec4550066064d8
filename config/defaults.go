package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultSentinel is the peer message that ends a session.  It is
	// matched case-insensitively against a whole received chunk.
	DefaultSentinel = "bye\n"

	// EnvPrefix prefixes every environment variable the loader reads.
	EnvPrefix = "TCPTALK_"
)
