package dev

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"time"
)

// Proxy forwards local requests to the configured upstream host, rewriting
// the Host header so the platform routes them to the previewed script.
type Proxy struct {
	config  *ServerConfig
	verbose bool
}

// NewProxy wraps a resolved server config.
func NewProxy(config *ServerConfig, verbose bool) *Proxy {
	return &Proxy{config: config, verbose: verbose}
}

// Serve accepts connections on the bound listener until it is closed.
func (p *Proxy) Serve() error {
	target := p.config.Host.URL()
	proxy := httputil.NewSingleHostReverseProxy(target)

	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		req.Host = target.Host
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		fmt.Fprintf(os.Stderr, "proxy %s %s: %v\n", r.Method, r.URL.Path, err)
		w.WriteHeader(http.StatusBadGateway)
	}

	var handler http.Handler = proxy
	if p.verbose {
		handler = p.logRequests(proxy)
	}

	server := &http.Server{Handler: handler}
	return server.Serve(p.config.Listener)
}

func (p *Proxy) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		fmt.Fprintf(os.Stderr, "[%s] %s %s (%s)\n",
			start.Format("15:04:05"), r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}
