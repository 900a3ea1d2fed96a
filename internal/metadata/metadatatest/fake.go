// Package metadatatest provides an in-process fake of the GCE metadata server.
package metadatatest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

const prefix = "/computeMetadata/v1/"

// Server answers metadata queries from a fixed map of sub-resource to value.
// Paths listed in Fail answer with their status code instead.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	values   map[string]string
	fail     map[string]int
	requests []*http.Request
}

// NewServer starts a fake serving values keyed by sub-resource path
func NewServer(values map[string]string) *Server {
	s := &Server{values: values, fail: map[string]int{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Host returns host:port of the fake
func (s *Server) Host() string {
	return strings.TrimPrefix(s.URL, "http://")
}

// Fail makes path answer with status from now on
func (s *Server) Fail(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[path] = status
}

// Set replaces the value served for path
func (s *Server) Set(path, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[path] = value
}

// Requests returns the requests received so far
func (s *Server) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

// Paths returns the sub-resource paths requested so far, in order
func (s *Server) Paths() []string {
	var paths []string
	for _, r := range s.Requests() {
		paths = append(paths, strings.TrimPrefix(r.URL.Path, prefix))
	}
	return paths
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.Clone(r.Context()))
	path := strings.TrimPrefix(r.URL.Path, prefix)
	status, failing := s.fail[path]
	value, found := s.values[path]
	s.mu.Unlock()

	if r.Header.Get("Metadata-Flavor") != "Google" {
		http.Error(w, "missing Metadata-Flavor header", http.StatusForbidden)
		return
	}
	if failing {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if !found {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Metadata-Flavor", "Google")
	w.Header().Set("Content-Type", "application/text")
	_, _ = w.Write([]byte(value))
}
