// Package dev resolves the local dev server's bind address and upstream
// host, and proxies local requests to the deployed preview.
package dev

import "fmt"

// Protocol selects http or https for a listener or upstream.
type Protocol string

const (
	ProtocolHTTP  Protocol = "http"
	ProtocolHTTPS Protocol = "https"
)

// ParseProtocol parses "http" or "https". An empty value selects the given
// fallback.
func ParseProtocol(s string, fallback Protocol) (Protocol, error) {
	switch s {
	case "":
		return fallback, nil
	case "http":
		return ProtocolHTTP, nil
	case "https":
		return ProtocolHTTPS, nil
	default:
		return "", fmt.Errorf("invalid protocol %q, must be http or https", s)
	}
}
