package transport

import (
	"context"
	"fmt"
	"net"
	"net/netip"

	ncerr "tcptalk/internal/errors"
	"tcptalk/util"
)

// DNSResolver resolves through the system resolver, like getaddrinfo
// with an unspecified family and a stream socket hint.
type DNSResolver struct {
	NoDNS    bool          // accept IP literals only
	Resolver *net.Resolver // nil means net.DefaultResolver
}

func (r *DNSResolver) resolver() *net.Resolver {
	if r.Resolver != nil {
		return r.Resolver
	}
	return net.DefaultResolver
}

// Resolve returns every address of host paired with the numeric port.
// Failures are wrapped as [ncerr.ErrResolutionFailed].
func (r *DNSResolver) Resolve(ctx context.Context, host, port string) ([]Endpoint, error) {
	addr := util.FormatAddr(host, port)

	portNum, err := r.resolver().LookupPort(ctx, "tcp", port)
	if err != nil {
		return nil, ncerr.Resolve(addr, err)
	}

	if ip, err := netip.ParseAddr(host); err == nil {
		return []Endpoint{{Addr: netip.AddrPortFrom(ip.Unmap(), uint16(portNum))}}, nil
	}
	if r.NoDNS {
		return nil, ncerr.Resolve(addr, util.RequireNumericHost(host))
	}

	ips, err := r.resolver().LookupNetIP(ctx, "ip", host)
	if err != nil {
		return nil, ncerr.Resolve(addr, err)
	}
	if len(ips) == 0 {
		return nil, ncerr.Resolve(addr, fmt.Errorf("no addresses for %q", host))
	}

	eps := make([]Endpoint, 0, len(ips))
	for _, ip := range ips {
		eps = append(eps, Endpoint{Addr: netip.AddrPortFrom(ip.Unmap(), uint16(portNum))})
	}
	return eps, nil
}
