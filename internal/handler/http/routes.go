// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	sessionRoute        = "/api/session"
	lockerRoute         = "/api/locker"
	recoveryRoute       = "/api/recovery"
	recoveryLockerRoute = "/api/recovery/locker"
	versionRoute        = "/api/version"
	metricsRoute        = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// promhttp compresses on its own
	router.Method("GET", metricsRoute, h.metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get(versionRoute, h.getServerVersion)

		// called by the login gateway
		r.With(h.gatewayHash).Post(sessionRoute, h.openSession)

		// routes with session authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Delete(sessionRoute, h.closeSession)

			r.Post(lockerRoute, h.saveLocker)
			r.Get(lockerRoute, h.getLocker)

			r.Post(recoveryRoute, h.setupRecovery)
			r.Delete(recoveryRoute, h.removeRecovery)
			r.With(h.rateLimit(h.recoveryLimiter, recoveryLockerRoute)).Get(recoveryLockerRoute, h.getRecoveryLocker)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
