package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/service"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
)

const internalErrorMessage = "the server encountered an unexpected error"

var errorStatusMap = map[error]int{
	ErrInvalidJSON:               http.StatusBadRequest,
	ErrUnsupportedMediaType:      http.StatusUnsupportedMediaType,
	utils.ErrRequestBodyTooLarge: http.StatusRequestEntityTooLarge,
	service.ErrInvalidAccount:    http.StatusBadRequest,

	service.ErrAccountNotFound: http.StatusNotFound,
	store.ErrAccountNotFound:   http.StatusNotFound,

	store.ErrInvalidAccountData: http.StatusBadRequest,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// accountNotFoundMessage is the 404 message for the raw {id} path segment.
func accountNotFoundMessage(rawID string) string {
	return fmt.Sprintf("Account with id [%s] was not found.", rawID)
}

// writeError writes the JSON error body used by every non-2xx response.
func writeError(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
	}, status)
}

// writeServiceError maps err to a status code and writes the error body.
// rawID is the {id} path segment of the request, if any. Details of 5xx
// errors are logged and never sent to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, fn, rawID string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var message string
	switch {
	case status == http.StatusNotFound:
		message = accountNotFoundMessage(rawID)
		log.Info().Str("func", fn).Str("id", rawID).Msg("account was not found")
	case status >= http.StatusInternalServerError:
		message = internalErrorMessage
		log.Err(err).Str("func", fn).Msg("request failed")
	default:
		message = err.Error()
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	writeError(w, status, message)
}
