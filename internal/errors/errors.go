// Package errors provides domain-specific error types for tcptalk.
//
// Every failure that ends a session before its loops run (or that
// breaks the join afterwards) is fatal and carries one of the sentinel
// kinds below, so callers can branch with [Is] while the message keeps
// the operation, the address and the underlying cause.
package errors

import (
	"errors"
	"fmt"
	"os"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrResolutionFailed   = errors.New("address resolution failed")
	ErrSocketCreateFailed = errors.New("socket creation failed")
	ErrConnectFailed      = errors.New("connection failed")
	ErrSpawnFailed        = errors.New("cannot start transfer loop")
	ErrJoinFailed         = errors.New("transfer loop did not finish cleanly")
)

// ── Structured error types ───────────────────────────────────────────

// NetworkError represents a fatal failure in a network operation.
type NetworkError struct {
	Kind error  // one of the sentinel errors above
	Op   string // operation: "resolve", "dial"
	Addr string // network address involved
	Err  error  // underlying error
}

func (e *NetworkError) Error() string {
	if e.Addr == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

// Unwrap exposes both the kind and the cause to [Is] and [As].
func (e *NetworkError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// Resolve wraps a lookup failure for host:port.
func Resolve(addr string, err error) *NetworkError {
	return &NetworkError{Kind: ErrResolutionFailed, Op: "resolve", Addr: addr, Err: err}
}

// Dial wraps a connection failure, telling socket creation apart from
// the connect itself.
func Dial(addr string, err error) *NetworkError {
	kind := ErrConnectFailed
	if isSocketCall(err) {
		kind = ErrSocketCreateFailed
	}
	return &NetworkError{Kind: kind, Op: "dial", Addr: addr, Err: err}
}

// isSocketCall reports whether err came out of the socket(2) syscall
// rather than connect(2).
func isSocketCall(err error) bool {
	var se *os.SyscallError
	if errors.As(err, &se) {
		return se.Syscall == "socket"
	}
	return false
}

// Kind returns the sentinel that classifies err, or nil.
func Kind(err error) error {
	for _, k := range []error{
		ErrResolutionFailed, ErrSocketCreateFailed, ErrConnectFailed,
		ErrSpawnFailed, ErrJoinFailed,
	} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use tcptalk/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
