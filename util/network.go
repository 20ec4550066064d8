package util

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
)

// FormatAddr returns "host:port", bracketing IPv6 literals.
func FormatAddr(host, port string) string {
	return net.JoinHostPort(host, port)
}

// RequireNumericHost rejects anything that is not an IP literal.  It
// backs the -n flag.
func RequireNumericHost(host string) error {
	if net.ParseIP(host) == nil {
		return fmt.Errorf("cannot parse %q as an IP address (DNS disabled with -n)", host)
	}
	return nil
}

// IsHarmless returns true for errors that are expected during shutdown:
// end of stream, a closed connection or pipe, or an expired deadline.
func IsHarmless(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.ErrClosedPipe) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	// net.OpError wrapping "use of closed network connection"
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, net.ErrClosed)
	}
	return false
}
