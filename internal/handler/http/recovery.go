// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-locker/internal/utils"
	"github.com/MKhiriev/go-locker/internal/validators"
	"github.com/MKhiriev/go-locker/models"
)

// setupRecovery handles POST /api/recovery. Password sessions only.
func (h *Handler) setupRecovery(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	var lockbox models.RecoveryLockbox
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&lockbox); err != nil {
		writeError(w, r, validators.ErrValidation)
		return
	}

	if err := h.services.RecoveryService.SetupRecovery(r.Context(), session, lockbox); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// removeRecovery handles DELETE /api/recovery. Password sessions only.
func (h *Handler) removeRecovery(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	if err := h.services.RecoveryService.RemoveRecovery(r.Context(), session); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getRecoveryLocker handles GET /api/recovery/locker. Recovery sessions
// only, rate limited per user.
func (h *Handler) getRecoveryLocker(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	resp, err := h.services.RecoveryService.GetRecoveryLocker(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}
