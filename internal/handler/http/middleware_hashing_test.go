// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-locker/internal/utils"
)

func TestGatewayHash(t *testing.T) {
	body := `{"userIdentifier":"alice"}`
	valid := utils.NewHasher(testGatewayKey).HashHex([]byte(body))
	otherKey := utils.NewHasher("other-key").HashHex([]byte(body))

	tests := []struct {
		name       string
		signature  string
		wantStatus int
	}{
		{"valid signature", valid, http.StatusOK},
		{"missing signature", "", http.StatusUnauthorized},
		{"not hex", "zz", http.StatusUnauthorized},
		{"signed with another key", otherKey, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, passwordSession())

			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				seen = string(b)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, sessionRoute, strings.NewReader(body))
			if tt.signature != "" {
				req.Header.Set(utils.HashHeader, tt.signature)
			}
			rec := httptest.NewRecorder()

			h.gatewayHash(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, body, seen, "body must be restored for the next handler")
			} else {
				assert.Empty(t, seen)
			}
		})
	}
}

func TestGatewayHash_BodyTooLarge(t *testing.T) {
	h, _ := newTestHandler(t, passwordSession())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	req := httptest.NewRequest(http.MethodPost, sessionRoute, strings.NewReader(strings.Repeat("a", maxBodySize+1)))
	rec := httptest.NewRecorder()

	h.gatewayHash(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
