// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/utils"
)

// gatewayHash checks that the body was signed by the login gateway: the
// HashSHA256 header must hold the hex HMAC-SHA256 of the raw body under the
// gateway hash key. The body is restored for the next handler.
func (h *Handler) gatewayHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err != nil {
			log.Err(err).Str("func", "*Handler.gatewayHash").Msg("failed to read request body")
			utils.WriteError(w, "", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.gatewayHasher.Verify(body, r.Header.Get(utils.HashHeader)) {
			writeError(w, r, ErrInvalidHash)
			return
		}

		log.Debug().Str("func", "*Handler.gatewayHash").Msg("gateway hash verified")
		next.ServeHTTP(w, r)
	})
}
