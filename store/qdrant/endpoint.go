package qdrant

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// DefaultGRPCPort is Qdrant's well-known gRPC port. Managed-cloud clusters
// expose REST and gRPC on ports differing only by this value, and operators
// habitually paste the REST endpoint.
const DefaultGRPCPort = 6334

// Endpoint is a normalized connection target for the gRPC transport.
type Endpoint struct {
	Host   string
	Port   int
	UseTLS bool

	url *url.URL // canonical form with the port applied
}

// String renders the canonical URL, with the applied port and every other
// component of the original string preserved.
func (e Endpoint) String() string {
	return e.url.String()
}

// ParseEndpoint canonicalizes a user-supplied endpoint string so it targets
// the gRPC port. An explicit port is left untouched; a URL without one gets
// DefaultGRPCPort. The scheme selects TLS: https dials encrypted, anything
// else plaintext.
func ParseEndpoint(raw string) (Endpoint, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.Hostname() == "" {
		// Relative forms like "localhost" and opaque forms like
		// "localhost:6334" parse without an authority, leaving nothing to
		// attach a port to.
		return Endpoint{}, fmt.Errorf("%w: %q has no host", ErrInvalidEndpoint, raw)
	}

	port := DefaultGRPCPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port < 1 || port > 65535 {
			return Endpoint{}, fmt.Errorf("%w: %q has an unusable port", ErrInvalidEndpoint, raw)
		}
	} else {
		u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(DefaultGRPCPort))
	}

	return Endpoint{
		Host:   u.Hostname(),
		Port:   port,
		UseTLS: u.Scheme == "https",
		url:    u,
	}, nil
}
