// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-locker/models"

// VerifyWrite implements [LockerCodec]. The server calls it before it stores
// a submitted locker and must answer 401 when it returns false. It never
// touches the locker secret key.
func (e *Engine) VerifyWrite(locker models.Locker, sessionKey []byte) bool {
	return e.IsValidLockerTag(locker, sessionKey)
}
