// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the end-to-end encrypted locker.
//
// All key material comes from the two outputs of a PAKE login:
//
//   - the export key, stable per password and known only to the client;
//   - the session key, fresh per login and shared by client and server.
//
// The locker payload is sealed with XChaCha20-Poly1305 under a key derived
// from the export key. The caller's public additional data is bound into the
// payload as associated data and, separately, sealed with a secret box under
// the session key. A tag (HMAC-SHA-512-256 under the session key) over the
// canonical form of both blobs lets the server reject forged writes without
// ever learning the locker key.
//
// A recovery lockbox seals the locker key from the owner's key pair to the
// key pair of a second credential. Key pairs are derived deterministically
// from 32-byte seeds, so an export key must be treated exactly like a
// private key: never persisted, never logged, never sent to the server.
//
// Every operation re-derives its keys from the caller's inputs. Nothing is
// cached, and an [Engine] is safe for concurrent use. The package never logs.
package crypto
