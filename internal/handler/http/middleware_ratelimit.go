// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-locker/internal/utils"
)

// rateLimit limits requests per user. It must run after auth; requests
// without a session are passed through.
func (h *Handler) rateLimit(limiter *utils.KeyedLimiter, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := utils.GetSessionFromContext(r.Context())
			if ok && !limiter.Allow(session.UserIdentifier, time.Now()) {
				h.metrics.RateLimited(route)
				w.Header().Set("Retry-After", "5")
				writeError(w, r, ErrRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
