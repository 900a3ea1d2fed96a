package metadata

import (
	"net"
	"net/http"
	"time"
)

// pinnedHostTransport rewrites outgoing requests to a fixed metadata host.
// The GCE client addresses its link-local IP unless GCE_METADATA_HOST is set;
// pinning here keeps the address independent of the environment.
type pinnedHostTransport struct {
	host string
	base http.RoundTripper
}

func (t *pinnedHostTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrip must not modify the original request
	cloned := req.Clone(req.Context())
	cloned.URL.Host = t.host
	cloned.Host = ""

	return t.base.RoundTrip(cloned)
}

func defaultTransport() *http.Transport {
	// metadata traffic never goes through a proxy
	if h, ok := http.DefaultTransport.(*http.Transport); ok {
		t := h.Clone()
		t.Proxy = nil
		return t
	}
	return &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}
