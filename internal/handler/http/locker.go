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

// saveLocker handles POST /api/locker.
func (h *Handler) saveLocker(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	var locker models.Locker
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&locker); err != nil {
		writeError(w, r, validators.ErrValidation)
		return
	}

	if err := h.services.LockerService.SaveLocker(r.Context(), session, locker); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// getLocker handles GET /api/locker.
func (h *Handler) getLocker(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	locker, err := h.services.LockerService.GetLocker(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, locker, http.StatusOK)
}
