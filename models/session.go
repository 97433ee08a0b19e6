// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionKind tells which credential the PAKE login was performed with.
type SessionKind string

const (
	// PasswordSession is opened after a login with the user's password.
	PasswordSession SessionKind = "password"
	// RecoverySession is opened after a login with the recovery key.
	RecoverySession SessionKind = "recovery"
)

// Valid reports whether k is one of the known session kinds.
func (k SessionKind) Valid() bool {
	return k == PasswordSession || k == RecoverySession
}

// SessionRequest is posted by the login gateway once a PAKE login has
// finished. SessionKey is the shared PAKE session key, base64 encoded.
type SessionRequest struct {
	UserIdentifier string      `json:"userIdentifier"`
	SessionKey     string      `json:"sessionKey"`
	Kind           SessionKind `json:"kind"`
}

// Session is an authenticated server session bound to a PAKE session key.
type Session struct {
	SessionID      string
	UserIdentifier string
	SessionKey     string
	Kind           SessionKind
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
