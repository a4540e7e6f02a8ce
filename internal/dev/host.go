package dev

import (
	"fmt"
	"net/url"
	"strings"
)

// Host is the upstream the dev server forwards requests to.
type Host struct {
	scheme string
	name   string
}

// NewHost parses a host given as a bare hostname or an http(s) URL. A bare
// hostname defaults to https.
func NewHost(raw string) (Host, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return Host{}, fmt.Errorf("host cannot be empty")
	}
	if !strings.Contains(input, "://") {
		input = "https://" + input
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return Host{}, fmt.Errorf("invalid host %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Host{}, fmt.Errorf("invalid host %q: scheme must be http or https", raw)
	}
	if parsed.Host == "" {
		return Host{}, fmt.Errorf("invalid host %q: no hostname", raw)
	}

	return Host{scheme: parsed.Scheme, name: parsed.Host}, nil
}

// Name returns the hostname (with port, if any).
func (h Host) Name() string {
	return h.name
}

// URL returns the base URL for forwarded requests.
func (h Host) URL() *url.URL {
	return &url.URL{Scheme: h.scheme, Host: h.name}
}

func (h Host) String() string {
	return h.scheme + "://" + h.name
}
