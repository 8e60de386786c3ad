package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength bounds caller-supplied trace ids before they reach logs.
	maxTraceIDLength = 128
)

// withTraceID reuses the caller's X-Trace-ID or generates a new one, attaches
// a child logger carrying trace_id to the request context and echoes the id
// in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := traceIDFromRequest(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func traceIDFromRequest(r *http.Request) string {
	traceID := r.Header.Get(traceIDHeader)
	if traceID == "" || len(traceID) > maxTraceIDLength {
		return uuid.NewString()
	}
	return traceID
}
