// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the middlewares when reading request headers.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyAuthorizationToken is returned when the
	// "X-Authorization-Token" header is missing.
	ErrEmptyAuthorizationToken = errors.New("empty `X-Authorization-Token` header")

	// ErrInvalidHash is returned when the gateway hash header is missing or
	// does not match the body.
	ErrInvalidHash = errors.New("invalid `HashSHA256` header")

	// ErrNoSession is returned when a handler behind auth finds no session
	// in the request context.
	ErrNoSession = errors.New("no session in request context")

	ErrRateLimited = errors.New("rate limited")
)
