package httpclient

import (
	"net/http"
	"time"
)

// New returns an HTTP client for calls to the platform backend. The
// connection pool is kept small since the panel talks to a single host.
func New(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 8

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
