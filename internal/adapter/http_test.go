// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-locker/internal/config"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/utils"
	"github.com/MKhiriev/go-locker/models"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server
// with credentials already set.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	h := a.(*httpServerAdapter)
	h.SetCredentials("jwt-token", "auth-token")
	return h
}

func assertCredentials(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "Bearer jwt-token", r.Header.Get(utils.AuthorizationHeader))
	assert.Equal(t, "auth-token", r.Header.Get(utils.AuthorizationTokenHeader))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	utils.WriteError(w, msg, status)
}

var sampleLocker = models.Locker{
	Data:                 models.EncryptedBlob{Ciphertext: "ct", Nonce: "n"},
	PublicAdditionalData: models.EncryptedBlob{Ciphertext: "pct", Nonce: "pn"},
	Tag:                  "tag",
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://locker.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://locker.example.com", got)
}

// ── Locker ───────────────────────────────────────────────────────────────────

func TestPutLocker_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/locker", r.URL.Path)
		assertCredentials(t, r)

		var got models.Locker
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, sampleLocker, got)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.PutLocker(context.Background(), sampleLocker))
}

func TestPutLocker_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "invalid tag")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.PutLocker(context.Background(), sampleLocker)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid tag")
}

func TestPutLocker_NoCredentials(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	a.SetCredentials("", "")

	err := a.PutLocker(context.Background(), sampleLocker)

	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestGetLocker_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/locker", r.URL.Path)
		assertCredentials(t, r)
		_, _ = utils.WriteJSON(w, sampleLocker, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetLocker(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sampleLocker, got)
}

func TestGetLocker_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "locker not found")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetLocker(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Recovery ─────────────────────────────────────────────────────────────────

func TestPutRecoveryLockbox_Conflict(t *testing.T) {
	lockbox := models.RecoveryLockbox{ReceiverPublicKey: "r", CreatorPublicKey: "c", Ciphertext: "ct", Nonce: "n"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/recovery", r.URL.Path)

		var got models.RecoveryLockbox
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, lockbox, got)

		writeError(w, http.StatusConflict, "recovery lockbox already exists")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.PutRecoveryLockbox(context.Background(), lockbox)

	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteRecoveryLockbox_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/recovery", r.URL.Path)
		assertCredentials(t, r)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteRecoveryLockbox(context.Background()))
}

func TestGetRecoveryLocker_Success(t *testing.T) {
	want := models.RecoveryLockerResponse{
		RecoveryLockbox: models.RecoveryLockbox{ReceiverPublicKey: "r", CreatorPublicKey: "c", Ciphertext: "ct", Nonce: "n"},
		Locker:          sampleLocker,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recovery/locker", r.URL.Path)
		_, _ = utils.WriteJSON(w, want, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetRecoveryLocker(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetRecoveryLocker_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusTooManyRequests, "")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetRecoveryLocker(context.Background())

	assert.ErrorIs(t, err, ErrTooManyRequests)
}

// ── Session / version ────────────────────────────────────────────────────────

func TestLogout_ForgetsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/session", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Logout(context.Background()))

	assert.ErrorIs(t, a.Logout(context.Background()), ErrNoCredentials)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Empty(t, r.Header.Get(utils.AuthorizationHeader))
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, tt.status, "")
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			err := a.DeleteRecoveryLockbox(context.Background())

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestErrorBody(t *testing.T) {
	assert.Equal(t, "locker not found", errorBody([]byte(`{"error":"locker not found"}`)))
	assert.Equal(t, "plain text", errorBody([]byte("plain text\n")))
}
