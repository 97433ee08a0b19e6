// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-locker/internal/utils"
	"github.com/MKhiriev/go-locker/internal/validators"
	"github.com/MKhiriev/go-locker/models"
)

type openSessionResponse struct {
	SessionID string             `json:"sessionId"`
	Kind      models.SessionKind `json:"kind"`
	ExpiresAt time.Time          `json:"expiresAt"`
}

// openSession handles POST /api/session. The login gateway posts the
// outcome of a finished PAKE login; the session JWT is returned in the
// Authorization header.
func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	var request models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, validators.ErrValidation)
		return
	}

	session, token, err := h.services.SessionService.OpenSession(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set(utils.AuthorizationHeader, "Bearer "+token.String())
	_, _ = utils.WriteJSON(w, openSessionResponse{
		SessionID: session.SessionID,
		Kind:      session.Kind,
		ExpiresAt: session.ExpiresAt,
	}, http.StatusCreated)
}

// closeSession handles DELETE /api/session.
func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	if err := h.services.SessionService.CloseSession(r.Context(), session.SessionID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
