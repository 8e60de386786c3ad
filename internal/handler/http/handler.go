package http

import (
	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/metrics"
	"github.com/MKhiriev/go-account-service/internal/service"
)

type Handler struct {
	services *service.Services
	security config.Security
	metrics  *metrics.HTTP

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. The security settings are fixed for
// the lifetime of the handler; a nil metrics disables instrumentation and the
// /metrics endpoint.
func NewHandler(services *service.Services, security config.Security, metrics *metrics.HTTP, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		security: security,
		metrics:  metrics,
		logger:   logger,
	}
}
