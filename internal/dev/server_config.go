package dev

import (
	"fmt"
	"net"
	"strconv"
)

const (
	// DefaultIP and DefaultPort are used when --ip / --port are not given.
	DefaultIP   = "127.0.0.1"
	DefaultPort = 8787

	// tutorialHost serves the getting-started preview when no explicit
	// host is configured.
	tutorialHost = "tutorial.edgeplane.workers.dev"
)

// ServerConfig is a resolved dev server: a bound listener and the upstream
// host requests are forwarded to.
type ServerConfig struct {
	Host     Host
	Listener net.Listener
}

// NewServerConfig binds the listening socket and resolves the upstream
// host. A failed bind is fatal to the dev command: the error names the
// exact address attempted so the user can pick another or stop the process
// holding it. No explicit host selects the tutorial host over the upstream
// protocol.
func NewServerConfig(host, ip string, port int, upstream Protocol) (*ServerConfig, error) {
	if ip == "" {
		ip = DefaultIP
	}
	if port == 0 {
		port = DefaultPort
	}

	addr := net.JoinHostPort(ip, strconv.Itoa(port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%s is unavailable, try binding to another address with the --ip and --port flags, or stop other edgeplane dev processes", addr)
	}

	var resolved Host
	if host != "" {
		resolved, err = NewHost(host)
		if err != nil {
			listener.Close()
			return nil, err
		}
	} else {
		resolved = Host{scheme: string(upstream), name: tutorialHost}
	}

	return &ServerConfig{Host: resolved, Listener: listener}, nil
}

// ListeningAddress returns the bound address, with the concrete port when 0
// was requested.
func (c *ServerConfig) ListeningAddress() net.Addr {
	return c.Listener.Addr()
}

// Close releases the listening socket.
func (c *ServerConfig) Close() error {
	return c.Listener.Close()
}
