// Package netpolicy decides how outbound HTTP traffic leaves the process.
//
// Local development often sits behind a restrictive network, so every
// outbound call (garment downloads, model invocation, result downloads) is
// routed through a forwarding proxy there; production deployments connect
// directly. The policy is an explicit value handed to whoever makes outbound
// calls, so tests can substitute their own.
package netpolicy

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Policy selects between direct and proxied outbound connections.
type Policy struct {
	proxyURL *url.URL
}

// Direct returns a policy that connects straight to the internet.
func Direct() Policy {
	return Policy{}
}

// Proxied returns a policy routing all traffic through the given proxy address.
func Proxied(addr string) (Policy, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return Policy{}, fmt.Errorf("invalid proxy address %q: %w", addr, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Policy{}, fmt.Errorf("invalid proxy address %q", addr)
	}
	return Policy{proxyURL: u}, nil
}

// Proxied reports whether the policy routes traffic through a proxy.
func (p Policy) Proxied() bool {
	return p.proxyURL != nil
}

// ProxyURL returns the configured proxy address, or "" for a direct policy.
func (p Policy) ProxyURL() string {
	if p.proxyURL == nil {
		return ""
	}
	return p.proxyURL.String()
}

// Client builds an HTTP client honoring the policy with the given timeout.
func (p Policy) Client(timeout time.Duration) *http.Client {
	client := &http.Client{Timeout: timeout}
	if p.proxyURL != nil {
		client.Transport = &http.Transport{Proxy: http.ProxyURL(p.proxyURL)}
	}
	return client
}
