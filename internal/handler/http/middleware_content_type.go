package http

import (
	"mime"
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/logger"
)

const (
	jsonMediaType               = "application/json"
	unsupportedMediaTypeMessage = "Content-Type must be application/json"
)

// requireJSON rejects requests whose Content-Type is not application/json
// with 415 before the body is read. Media type parameters such as charset
// are accepted.
func requireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != jsonMediaType {
			logger.FromRequest(r).Warn().
				Err(ErrUnsupportedMediaType).
				Str("content_type", r.Header.Get("Content-Type")).
				Msg("request rejected")
			writeError(w, http.StatusUnsupportedMediaType, unsupportedMediaTypeMessage)
			return
		}

		next.ServeHTTP(w, r)
	})
}
