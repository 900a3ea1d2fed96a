package server

import (
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/felixge/httpsnoop"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// withAccessLog tags each request with an ID, exposes a request-scoped logger
// through the context and logs one line once the response is written.
func withAccessLog(log logr.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(requestIDHeader, id)

		reqLog := log.WithValues("requestID", id)
		r = r.WithContext(logr.NewContext(r.Context(), reqLog))

		m := httpsnoop.CaptureMetrics(next, w, r)
		reqLog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"duration", m.Duration.String(),
			"size", humanize.Bytes(uint64(m.Written)),
		)
	})
}
