// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-locker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testData = `{"secretNotes":[{"id":"1","text":"secret"}]}`

var testPublicAdditionalData = Object{"createdAt": String("2023-10-31T00:00:00.000Z")}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := Init()
	require.NoError(t, err)
	return e
}

func newTestLocker(t *testing.T, e *Engine) models.Locker {
	t.Helper()
	locker, err := e.EncryptLocker(testData, testPublicAdditionalData, mustSeed(t, testExportKey), mustKey(t, testSessionKey))
	require.NoError(t, err)
	return locker
}

// flipFirstByte decodes a field, flips one bit of its first byte and
// re-encodes it.
func flipFirstByte(t *testing.T, s string) string {
	t.Helper()
	b, err := Encoding.DecodeString(s)
	require.NoError(t, err)
	b[0] ^= 0x01
	return Encoding.EncodeToString(b)
}

const base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// lowBitNeighbour swaps the last character of an encoded 32-byte value for
// the one that differs only in its lowest bit. That bit is padding, so a
// lenient decoder maps both strings to the same bytes.
func lowBitNeighbour(s string) string {
	last := strings.IndexByte(base64URLAlphabet, s[len(s)-1])
	return s[:len(s)-1] + string(base64URLAlphabet[last^1])
}

func TestEncryptDecryptLocker_RoundTrip(t *testing.T) {
	e := newTestEngine(t)
	locker := newTestLocker(t, e)

	plain, err := e.DecryptLocker(locker, mustSeed(t, testExportKey), mustKey(t, testSessionKey), FormatString)
	require.NoError(t, err)

	assert.Equal(t, testData, plain.Data)
	assert.Equal(t, Value(testPublicAdditionalData), plain.PublicAdditionalData)
}

func TestEncryptDecryptLocker_Bytes(t *testing.T) {
	e := newTestEngine(t)
	payload := []byte{0x00, 0xff, 0x10, 0x20}
	seed := mustSeed(t, testExportKey)
	sessionKey := mustKey(t, testSessionKey)

	locker, err := e.EncryptLocker(payload, Object{}, seed, sessionKey)
	require.NoError(t, err)

	plain, err := e.DecryptLocker(locker, seed, sessionKey, FormatBytes)
	require.NoError(t, err)
	assert.Equal(t, payload, plain.Data)
	assert.Equal(t, payload, plain.Bytes())
}

func TestEncryptLocker_FreshNonces(t *testing.T) {
	e := newTestEngine(t)
	l1 := newTestLocker(t, e)
	l2 := newTestLocker(t, e)

	assert.NotEqual(t, l1.Data.Nonce, l2.Data.Nonce)
	assert.NotEqual(t, l1.PublicAdditionalData.Nonce, l2.PublicAdditionalData.Nonce)
	assert.NotEqual(t, l1.Tag, l2.Tag)
}

func TestEncryptLocker_Errors(t *testing.T) {
	e := newTestEngine(t)
	seed := mustSeed(t, testExportKey)
	sessionKey := mustKey(t, testSessionKey)

	tests := []struct {
		name       string
		data       any
		pad        Value
		seed       []byte
		sessionKey []byte
		wantErr    error
	}{
		{name: "short seed", data: testData, pad: Object{}, seed: seed[:16], sessionKey: sessionKey, wantErr: ErrInvalidSeedLength},
		{name: "short session key", data: testData, pad: Object{}, seed: seed, sessionKey: sessionKey[:31], wantErr: ErrInvalidKeyLength},
		{name: "unsupported data", data: 42, pad: Object{}, seed: seed, sessionKey: sessionKey, wantErr: ErrUnsupportedInputType},
		{name: "nil pad", data: testData, pad: nil, seed: seed, sessionKey: sessionKey, wantErr: ErrSerialization},
		{name: "nested nil pad", data: testData, pad: Object{"a": nil}, seed: seed, sessionKey: sessionKey, wantErr: ErrSerialization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.EncryptLocker(tt.data, tt.pad, tt.seed, tt.sessionKey)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsValidLockerTag(t *testing.T) {
	e := newTestEngine(t)
	locker := newTestLocker(t, e)
	sessionKey := mustKey(t, testSessionKey)

	assert.True(t, e.IsValidLockerTag(locker, sessionKey))
	assert.True(t, e.VerifyWrite(locker, sessionKey))

	appended := locker
	appended.Tag += "a"
	assert.False(t, e.IsValidLockerTag(appended, sessionKey))

	trailingBits := locker
	trailingBits.Tag = lowBitNeighbour(locker.Tag)
	require.NotEqual(t, locker.Tag, trailingBits.Tag)
	assert.False(t, e.IsValidLockerTag(trailingBits, sessionKey))
	_, err := e.DecryptLocker(trailingBits, mustSeed(t, testExportKey), sessionKey, FormatString)
	assert.ErrorIs(t, err, ErrInvalidTag)

	assert.False(t, e.IsValidLockerTag(locker, nil))
	assert.False(t, e.IsValidLockerTag(models.Locker{Tag: "%%%"}, sessionKey))
	assert.False(t, e.IsValidLockerTag(models.Locker{}, sessionKey))
}

func TestDecryptLocker_TamperDetection(t *testing.T) {
	e := newTestEngine(t)
	seed := mustSeed(t, testExportKey)
	sessionKey := mustKey(t, testSessionKey)

	mutations := map[string]func(l *models.Locker){
		"data ciphertext": func(l *models.Locker) { l.Data.Ciphertext = flipFirstByte(t, l.Data.Ciphertext) },
		"data nonce":      func(l *models.Locker) { l.Data.Nonce = flipFirstByte(t, l.Data.Nonce) },
		"pad ciphertext": func(l *models.Locker) {
			l.PublicAdditionalData.Ciphertext = flipFirstByte(t, l.PublicAdditionalData.Ciphertext)
		},
		"pad nonce": func(l *models.Locker) { l.PublicAdditionalData.Nonce = flipFirstByte(t, l.PublicAdditionalData.Nonce) },
		"tag":       func(l *models.Locker) { l.Tag = flipFirstByte(t, l.Tag) },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			locker := newTestLocker(t, e)
			mutate(&locker)

			assert.False(t, e.IsValidLockerTag(locker, sessionKey))

			_, err := e.DecryptLocker(locker, seed, sessionKey, FormatString)
			assert.True(t, errors.Is(err, ErrInvalidTag) || errors.Is(err, ErrDecryptionFailed), "got %v", err)
		})
	}
}

func TestDecryptLocker_WrongSessionKey(t *testing.T) {
	e := newTestEngine(t)
	locker := newTestLocker(t, e)

	other := bytes.Repeat([]byte{0x42}, KeySize)
	_, err := e.DecryptLocker(locker, mustSeed(t, testExportKey), other, FormatString)
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestDecryptLocker_WrongSeed(t *testing.T) {
	e := newTestEngine(t)
	locker := newTestLocker(t, e)

	_, err := e.DecryptLocker(locker, mustSeed(t, testRecoveryExportKey), mustKey(t, testSessionKey), FormatString)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecryptLocker_CiphertextTooShort(t *testing.T) {
	e := newTestEngine(t)
	sessionKey := mustKey(t, testSessionKey)
	locker := newTestLocker(t, e)

	// a short data blob that is correctly tagged by the holder of the session key
	short, err := e.CreateLockerForClient(Encoding.EncodeToString([]byte("tiny")), locker.Data.Nonce, testPublicAdditionalData, sessionKey)
	require.NoError(t, err)

	_, err = e.DecryptLocker(short, mustSeed(t, testExportKey), sessionKey, FormatString)
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestDecryptLocker_UnsupportedOutputFormat(t *testing.T) {
	e := newTestEngine(t)
	locker := newTestLocker(t, e)

	_, err := e.DecryptLocker(locker, mustSeed(t, testExportKey), mustKey(t, testSessionKey), OutputFormat(7))
	assert.ErrorIs(t, err, ErrUnsupportedOutputFormat)
}

func TestOpenPublicAdditionalData(t *testing.T) {
	e := newTestEngine(t)
	locker := newTestLocker(t, e)

	pad, err := e.OpenPublicAdditionalData(locker, mustKey(t, testSessionKey))
	require.NoError(t, err)
	assert.Equal(t, Value(testPublicAdditionalData), pad)

	_, err = e.OpenPublicAdditionalData(locker, bytes.Repeat([]byte{0x01}, KeySize))
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestCreateLockerForClient_RewrapsUnderNewSession(t *testing.T) {
	e := newTestEngine(t)
	seed := mustSeed(t, testExportKey)
	locker := newTestLocker(t, e)
	newSessionKey := bytes.Repeat([]byte{0x07}, KeySize)

	rewrapped, err := e.CreateLockerForClient(locker.Data.Ciphertext, locker.Data.Nonce, testPublicAdditionalData, newSessionKey)
	require.NoError(t, err)

	assert.Equal(t, locker.Data, rewrapped.Data)
	assert.True(t, e.IsValidLockerTag(rewrapped, newSessionKey))
	assert.False(t, e.IsValidLockerTag(rewrapped, mustKey(t, testSessionKey)))

	plain, err := e.DecryptLocker(rewrapped, seed, newSessionKey, FormatString)
	require.NoError(t, err)
	assert.Equal(t, testData, plain.String())
}

func TestCreateLockerForClient_ChangedPublicDataFailsDecryption(t *testing.T) {
	e := newTestEngine(t)
	sessionKey := mustKey(t, testSessionKey)
	locker := newTestLocker(t, e)

	forged, err := e.CreateLockerForClient(locker.Data.Ciphertext, locker.Data.Nonce, Object{"createdAt": String("2000-01-01T00:00:00.000Z")}, sessionKey)
	require.NoError(t, err)

	_, err = e.DecryptLocker(forged, mustSeed(t, testExportKey), sessionKey, FormatString)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestParseOutputFormat(t *testing.T) {
	for in, want := range map[string]OutputFormat{"": FormatString, "string": FormatString, "bytes": FormatBytes, "uint8array": FormatBytes} {
		got, err := ParseOutputFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseOutputFormat("hex")
	assert.ErrorIs(t, err, ErrUnsupportedOutputFormat)
}
