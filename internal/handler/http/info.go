// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
)

// healthStatusOK is the only status the health endpoint reports.
const healthStatusOK = "OK"

// index describes the service: its name, version and the collection path.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	response := models.IndexResponse{
		Name:    h.services.AppInfoService.GetAppName(ctx),
		Version: h.services.AppInfoService.GetAppVersion(ctx),
		Paths:   "/accounts",
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.index").Msg("error writing response")
	}
}

// health reports that the process is able to serve requests.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.HealthResponse{Status: healthStatusOK}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("error writing response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "The requested URL "+r.URL.Path+" was not found on the server.")
}
