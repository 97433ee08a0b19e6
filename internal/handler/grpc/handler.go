// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-locker/internal/logger"
)

// ServiceName is the name the locker API is reported under in the health
// service. The empty name reports the server as a whole.
const ServiceName = "locker.v1.Locker"

// Pinger reports whether a dependency of the server is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It serves the standard gRPC health protocol. The status follows the
// storage: [Handler.CheckHealth] pings it and flips both the overall and
// the locker service status between SERVING and NOT_SERVING.
type Handler struct {
	health *health.Server
	pinger Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The initial status is NOT_SERVING
// until the first successful [Handler.CheckHealth].
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// CheckHealth pings the storage and publishes the result.
func (h *Handler) CheckHealth(ctx context.Context) error {
	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.CheckHealth").Msg("storage is unreachable")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}

	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// UnaryLogger logs every unary call with its method, code and duration.
func (h *Handler) UnaryLogger(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	h.logger.Debug().
		Str("method", info.FullMethod).
		Str("code", statusCode(err)).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func statusCode(err error) string {
	return status.Code(err).String()
}
