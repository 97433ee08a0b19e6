// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the locker command line client.
//
// Each invocation runs one command against the server: save, load,
// setup-recovery, remove-recovery, recover, logout or version. Session
// material (JWT, session key, export keys) comes from the client
// configuration; lockers are sealed and opened locally.
package client
