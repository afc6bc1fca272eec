package client

import (
	"fmt"
	"net/url"
)

// Resolve selects an analyzer: the local one when offline, otherwise the
// HTTP analyzer for the configured endpoint.
func Resolve(s Settings) (Analyzer, error) {
	if s.Offline {
		return NewLocal(), nil
	}
	if s.Endpoint == "" {
		return nil, fmt.Errorf("no analysis endpoint configured: set --endpoint or REVIEWSTARS_ENDPOINT, or use --offline")
	}
	u, err := url.Parse(s.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid analysis endpoint %q: want an http(s) URL", s.Endpoint)
	}
	return NewHTTP(s.Endpoint, s.HealthURL, s.Timeout), nil
}
