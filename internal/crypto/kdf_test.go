// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testExportKey         = "iX3NooF-7W5dXzJWEso-ilpcYE-v_vj1Uam3rpDvKBQ"
	testRecoveryExportKey = "J3aJn5inymm39WL11Yb0qewnAHL3hB_CMB6V2VV_GQg"
	testSessionKey        = "dQcJZvTqCgDzW36bzQrnJ6PIcVcZgiRRaFHwC5D4QxY"
)

func mustSeed(t *testing.T, s string) []byte {
	t.Helper()
	seed, err := DecodeSeed(s)
	require.NoError(t, err, "DecodeSeed(%q)", s)
	return seed
}

func mustKey(t *testing.T, s string) []byte {
	t.Helper()
	key, err := DecodeKey(s)
	require.NoError(t, err, "DecodeKey(%q)", s)
	return key
}

func TestDeriveLockerSecretKey_KnownVector(t *testing.T) {
	key, err := DeriveLockerSecretKey(mustSeed(t, testExportKey))

	require.NoError(t, err)
	assert.Equal(t, "D6vDDBnREzeo6270ksFamANbgyEmwmw1-2kx6bQBHaI", EncodeKey(key[:]))
}

func TestDeriveLockerSecretKey_Deterministic(t *testing.T) {
	seed := mustSeed(t, testExportKey)

	k1, err := DeriveLockerSecretKey(seed)
	require.NoError(t, err)
	k2, err := DeriveLockerSecretKey(seed)
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, seed, k1[:])
}

func TestDeriveLockerSecretKey_DifferentSeeds(t *testing.T) {
	k1, err := DeriveLockerSecretKey(mustSeed(t, testExportKey))
	require.NoError(t, err)
	k2, err := DeriveLockerSecretKey(mustSeed(t, testRecoveryExportKey))
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
}

func TestDeriveLockerSecretKey_InvalidSeedLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		_, err := DeriveLockerSecretKey(make([]byte, n))
		assert.ErrorIs(t, err, ErrInvalidSeedLength, "len %d", n)
	}
}

func TestDeriveKeyPair_KnownVectors(t *testing.T) {
	tests := []struct {
		seed      string
		publicKey string
	}{
		{seed: testExportKey, publicKey: "TIIhpkyZRdSI4jIS7exm6Hp-wVFIkJqrAiYwD8MLFSo"},
		{seed: testRecoveryExportKey, publicKey: "rTTA6RfRF8CU3d8L833m7FJcWmL_K035Z7mRaGk0Wnk"},
	}

	for _, tt := range tests {
		kp, err := DeriveKeyPair(mustSeed(t, tt.seed))
		require.NoError(t, err)
		assert.Equal(t, tt.publicKey, EncodeKey(kp.PublicKey[:]))
	}
}

func TestDeriveKeyPair_InvalidSeedLength(t *testing.T) {
	_, err := DeriveKeyPair([]byte("short"))
	assert.ErrorIs(t, err, ErrInvalidSeedLength)
}

func TestDeriveAuthSubkey_KnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		subkeyID uint64
		want     string
	}{
		{name: "authorization id", subkeyID: AuthorizationSubkeyID, want: "2TicYPonoBFZZ9XydRp5JxjYyKNMLDnOPWWFQcvn9JQ"},
		{name: "custom id", subkeyID: 80, want: "ZuTIrwzwIFxwrSaATjkRLNA6Xwz5pg125xASzybQEXw"},
	}

	sessionKey := mustKey(t, testSessionKey)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subkey, err := DeriveAuthSubkey(sessionKey, tt.subkeyID)

			require.NoError(t, err)
			assert.Len(t, subkey, KeySize)
			assert.Equal(t, tt.want, EncodeKey(subkey))
		})
	}
}

func TestDeriveAuthSubkey_InvalidKeyLength(t *testing.T) {
	_, err := DeriveAuthSubkey(make([]byte, 10), AuthorizationSubkeyID)
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestDeriveSubkey_ContextTooLong(t *testing.T) {
	out := make([]byte, KeySize)
	err := deriveSubkey(out, mustKey(t, testSessionKey), 1, "too-long-context")
	assert.Error(t, err)
}

func TestAuthorizationToken(t *testing.T) {
	token, err := AuthorizationToken(mustKey(t, testSessionKey))

	require.NoError(t, err)
	assert.Equal(t, "2TicYPonoBFZZ9XydRp5JxjYyKNMLDnOPWWFQcvn9JQ", token)
	assert.NotEqual(t, testSessionKey, token)
}

func TestDecodeSeed_Errors(t *testing.T) {
	_, err := DecodeSeed("invalidKey")
	assert.ErrorIs(t, err, ErrInvalidSeedLength)

	_, err = DecodeSeed("not base64 !!")
	assert.ErrorIs(t, err, ErrInvalidSeedLength)
}

func TestDecodeKey_RejectsNonCanonicalTrailingBits(t *testing.T) {
	_, err := DecodeKey(lowBitNeighbour(testSessionKey))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = DecodeSeed(lowBitNeighbour(testExportKey))
	assert.ErrorIs(t, err, ErrInvalidSeedLength)
}
