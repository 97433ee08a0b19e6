// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingKey      = errors.New("required key is not configured")
	ErrNoSessionConfig = errors.New("session token and session key are required")
	ErrTooManyArgs     = errors.New("too many arguments")
)
