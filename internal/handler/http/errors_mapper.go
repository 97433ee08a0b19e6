// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-locker/internal/app"
	"github.com/MKhiriev/go-locker/internal/crypto"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/service"
	"github.com/MKhiriev/go-locker/internal/store"
	"github.com/MKhiriev/go-locker/internal/utils"
	"github.com/MKhiriev/go-locker/internal/validators"
)

type errorStatus struct {
	err     error
	status  int
	message string
}

// errorStatuses is matched in order; the first errors.Is hit wins.
var errorStatuses = []errorStatus{
	{validators.ErrValidation, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{crypto.ErrInvalidTag, http.StatusUnauthorized, app.MsgInvalidTag},
	{crypto.ErrSerialization, http.StatusBadRequest, app.MsgMalformedLocker},
	{crypto.ErrMalformedEncoding, http.StatusBadRequest, app.MsgMalformedLocker},
	{crypto.ErrCiphertextTooShort, http.StatusBadRequest, app.MsgMalformedLocker},
	{crypto.ErrDecryptionFailed, http.StatusBadRequest, app.MsgMalformedLocker},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{utils.ErrInvalidBearer, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrSessionExpired, http.StatusUnauthorized, app.MsgSessionExpired},
	{store.ErrSessionNotFound, http.StatusUnauthorized, app.MsgSessionExpired},
	{ErrNoSession, http.StatusUnauthorized, app.MsgSessionExpired},
	{ErrEmptyAuthorizationToken, http.StatusUnauthorized, app.MsgInvalidAuthorizationToken},
	{service.ErrInvalidAuthorizationToken, http.StatusUnauthorized, app.MsgInvalidAuthorizationToken},
	{ErrInvalidHash, http.StatusUnauthorized, app.MsgInvalidHash},

	{service.ErrWrongSessionKind, http.StatusForbidden, app.MsgWrongSessionKind},

	{store.ErrLockerNotFound, http.StatusNotFound, app.MsgLockerNotFound},
	{store.ErrRecoveryLockboxNotFound, http.StatusNotFound, app.MsgRecoveryLockboxNotFound},
	{store.ErrRecoveryLockboxExists, http.StatusConflict, app.MsgRecoveryLockboxExists},

	{ErrRateLimited, http.StatusTooManyRequests, app.MsgTooManyRequests},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status and message.
// Internal errors are never echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
