package grpc

import (
	"github.com/MKhiriev/go-account-service/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// AccountServiceName is the service name reported by the health server next
// to the overall ("") status.
const AccountServiceName = "accounts"

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1.Health service, mirroring the HTTP
// /health endpoint, and registers server reflection. A handler instance is
// created once at startup and shared by the gRPC server.
type Handler struct {
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both the overall status and
// [AccountServiceName] start as SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	healthServer := health.NewServer()
	healthServer.SetServingStatus(AccountServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: healthServer,
		logger: logger,
	}
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// Shutdown switches every service to NOT_SERVING so that health probes fail
// while in-flight calls drain.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
