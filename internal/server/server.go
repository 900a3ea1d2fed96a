package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/go-logr/logr"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"gcp-instance-page/internal/config"
	"gcp-instance-page/internal/hostinfo"
	"gcp-instance-page/internal/page"
	"gcp-instance-page/pkg/models"
)

// InstanceSource reports the details of the running instance
type InstanceSource interface {
	Instance(ctx context.Context) (models.Instance, error)
}

// Server serves the instance page
type Server struct {
	cfg      config.Config
	source   InstanceSource
	hostname func() (string, error)
	log      logr.Logger
}

// Option customizes a Server
type Option func(*Server)

// WithHostname replaces the local hostname lookup
func WithHostname(fn func() (string, error)) Option {
	return func(s *Server) {
		s.hostname = fn
	}
}

// New creates a server reading instance details from source
func New(cfg config.Config, source InstanceSource, log logr.Logger, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		source:   source,
		hostname: hostinfo.FQDN,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the instrumented router
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet, http.MethodHead)

	return otelhttp.NewHandler(withAccessLog(s.log, router), "instance-page")
}

// Run listens on the configured address and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.cfg.Addr())
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then drains
// in-flight requests for the configured grace period
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}

	grace := s.cfg.ShutdownGrace
	if grace <= 0 {
		grace = config.DefaultShutdownGrace
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	s.log.Info("shutting down", "grace", grace)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to shut down cleanly")
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	log := logr.FromContextOrDiscard(r.Context())

	inst, err := s.source.Instance(r.Context())
	if err != nil {
		internalError(w, log, err)
		return
	}

	inst.Hostname, err = s.hostname()
	if err != nil {
		internalError(w, log, err)
		return
	}

	render, contentType := page.RenderHTML, "text/html; charset=utf-8"
	if r.URL.Query().Get("format") == "yaml" {
		render, contentType = page.RenderYAML, "application/yaml"
	}

	// render fully before writing so a failure never leaves a partial page
	var buf bytes.Buffer
	if err := render(&buf, inst); err != nil {
		internalError(w, log, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, &buf); err != nil {
		log.V(1).Info("failed to write response", "error", err.Error())
	}
}

func internalError(w http.ResponseWriter, log logr.Logger, err error) {
	log.Error(err, "request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
