// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/utils"
)

// auth is an HTTP middleware that authorizes the caller's session.
//
// The request must carry the session JWT as "Authorization: Bearer <jwt>"
// and the authorization token derived from the session key in
// "X-Authorization-Token". The session is resolved through
// [service.SessionService.Authorize] and stored in the request context, where
// handlers read it with [utils.GetSessionFromContext].
//
// Any failure is answered with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(utils.AuthorizationHeader)
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		authorizationToken := r.Header.Get(utils.AuthorizationTokenHeader)
		if authorizationToken == "" {
			writeError(w, r, ErrEmptyAuthorizationToken)
			return
		}

		ctx := r.Context()
		session, err := h.services.SessionService.Authorize(ctx, tokenString, authorizationToken)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("session_id", session.SessionID).Str("session_kind", string(session.Kind))
		})
		ctx = l.WithContext(utils.WithSession(ctx, session))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
