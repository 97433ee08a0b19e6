// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"

	"github.com/MKhiriev/go-locker/models"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/nacl/secretbox"
)

// OutputFormat selects the type of [Plaintext.Data].
type OutputFormat int

const (
	// FormatString returns the payload as a string.
	FormatString OutputFormat = iota
	// FormatBytes returns the payload as a []byte.
	FormatBytes
)

// ParseOutputFormat maps the wire names "string", "bytes" and "uint8array"
// to an OutputFormat. The empty string selects FormatString.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "string":
		return FormatString, nil
	case "bytes", "uint8array":
		return FormatBytes, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOutputFormat, s)
	}
}

func (f OutputFormat) valid() bool {
	return f == FormatString || f == FormatBytes
}

// Plaintext is an opened locker.
type Plaintext struct {
	// Data is a string or a []byte depending on the requested OutputFormat.
	Data                 any
	PublicAdditionalData Value
}

// Bytes returns Data as a byte slice regardless of the output format.
func (p Plaintext) Bytes() []byte {
	switch d := p.Data.(type) {
	case []byte:
		return d
	case string:
		return []byte(d)
	}
	return nil
}

// String returns Data as a string regardless of the output format.
func (p Plaintext) String() string {
	switch d := p.Data.(type) {
	case string:
		return d
	case []byte:
		return string(d)
	}
	return ""
}

// EncryptLocker implements [LockerCodec].
func (e *Engine) EncryptLocker(data any, publicAdditionalData Value, seed, sessionKey []byte) (models.Locker, error) {
	lockerKey, err := DeriveLockerSecretKey(seed)
	if err != nil {
		return models.Locker{}, err
	}
	if err = checkSessionKey(sessionKey); err != nil {
		return models.Locker{}, err
	}

	payload, err := payloadBytes(data)
	if err != nil {
		return models.Locker{}, err
	}

	associatedData, err := Canonicalize(publicAdditionalData)
	if err != nil {
		return models.Locker{}, fmt.Errorf("public additional data: %w", err)
	}

	aead, err := chacha20poly1305.NewX(lockerKey[:])
	if err != nil {
		return models.Locker{}, fmt.Errorf("init aead: %w", err)
	}
	dataNonce, err := e.nonce()
	if err != nil {
		return models.Locker{}, err
	}
	ciphertext := aead.Seal(nil, dataNonce[:], payload, associatedData)

	return e.wrap(models.EncryptedBlob{
		Ciphertext: Encoding.EncodeToString(ciphertext),
		Nonce:      Encoding.EncodeToString(dataNonce[:]),
	}, associatedData, sessionKey)
}

// DecryptLocker implements [LockerCodec].
func (e *Engine) DecryptLocker(locker models.Locker, seed, sessionKey []byte, format OutputFormat) (Plaintext, error) {
	if !format.valid() {
		return Plaintext{}, fmt.Errorf("%w: %d", ErrUnsupportedOutputFormat, format)
	}

	lockerKey, err := DeriveLockerSecretKey(seed)
	if err != nil {
		return Plaintext{}, err
	}
	if err = checkTag(locker, sessionKey); err != nil {
		return Plaintext{}, err
	}

	return openLocker(locker, lockerKey[:], sessionKey, format)
}

// IsValidLockerTag implements [LockerCodec].
func (e *Engine) IsValidLockerTag(locker models.Locker, sessionKey []byte) bool {
	return checkTag(locker, sessionKey) == nil
}

// OpenPublicAdditionalData implements [LockerCodec].
func (e *Engine) OpenPublicAdditionalData(locker models.Locker, sessionKey []byte) (Value, error) {
	if err := checkTag(locker, sessionKey); err != nil {
		return nil, err
	}

	pad, _, err := openPublicAdditionalData(locker.PublicAdditionalData, sessionKey)
	return pad, err
}

// CreateLockerForClient implements [LockerCodec].
func (e *Engine) CreateLockerForClient(ciphertext, nonce string, publicAdditionalData Value, sessionKey []byte) (models.Locker, error) {
	if err := checkSessionKey(sessionKey); err != nil {
		return models.Locker{}, err
	}

	associatedData, err := Canonicalize(publicAdditionalData)
	if err != nil {
		return models.Locker{}, fmt.Errorf("public additional data: %w", err)
	}

	return e.wrap(models.EncryptedBlob{Ciphertext: ciphertext, Nonce: nonce}, associatedData, sessionKey)
}

// wrap seals the canonical public additional data under sessionKey and tags
// the result together with data.
func (e *Engine) wrap(data models.EncryptedBlob, publicAdditionalData, sessionKey []byte) (models.Locker, error) {
	var key [KeySize]byte
	copy(key[:], sessionKey)

	padNonce, err := e.nonce()
	if err != nil {
		return models.Locker{}, err
	}
	sealed := secretbox.Seal(nil, publicAdditionalData, padNonce, &key)

	locker := models.Locker{
		Data: data,
		PublicAdditionalData: models.EncryptedBlob{
			Ciphertext: Encoding.EncodeToString(sealed),
			Nonce:      Encoding.EncodeToString(padNonce[:]),
		},
	}

	tag, err := computeTag(locker, sessionKey)
	if err != nil {
		return models.Locker{}, err
	}
	locker.Tag = Encoding.EncodeToString(tag)

	return locker, nil
}

func openLocker(locker models.Locker, lockerKey, sessionKey []byte, format OutputFormat) (Plaintext, error) {
	pad, associatedData, err := openPublicAdditionalData(locker.PublicAdditionalData, sessionKey)
	if err != nil {
		return Plaintext{}, err
	}

	nonce, err := decodeNonce("data.nonce", locker.Data.Nonce)
	if err != nil {
		return Plaintext{}, err
	}
	ciphertext, err := decodeField("data.ciphertext", locker.Data.Ciphertext)
	if err != nil {
		return Plaintext{}, err
	}

	aead, err := chacha20poly1305.NewX(lockerKey)
	if err != nil {
		return Plaintext{}, fmt.Errorf("init aead: %w", err)
	}
	if len(ciphertext) < aead.Overhead() {
		return Plaintext{}, fmt.Errorf("%w: data is %d bytes", ErrCiphertextTooShort, len(ciphertext))
	}

	payload, err := aead.Open(nil, nonce[:], ciphertext, associatedData)
	if err != nil {
		return Plaintext{}, fmt.Errorf("%w: data", ErrDecryptionFailed)
	}

	plain := Plaintext{PublicAdditionalData: pad}
	if format == FormatBytes {
		plain.Data = payload
	} else {
		plain.Data = string(payload)
	}
	return plain, nil
}

// openPublicAdditionalData opens the secret box and returns the value along
// with its canonical encoding, which is the AEAD associated data.
func openPublicAdditionalData(blob models.EncryptedBlob, sessionKey []byte) (Value, []byte, error) {
	if err := checkSessionKey(sessionKey); err != nil {
		return nil, nil, err
	}

	nonce, err := decodeNonce("publicAdditionalData.nonce", blob.Nonce)
	if err != nil {
		return nil, nil, err
	}
	ciphertext, err := decodeField("publicAdditionalData.ciphertext", blob.Ciphertext)
	if err != nil {
		return nil, nil, err
	}
	if len(ciphertext) < secretbox.Overhead {
		return nil, nil, fmt.Errorf("%w: public additional data is %d bytes", ErrCiphertextTooShort, len(ciphertext))
	}

	var key [KeySize]byte
	copy(key[:], sessionKey)
	opened, ok := secretbox.Open(nil, ciphertext, nonce, &key)
	if !ok {
		return nil, nil, fmt.Errorf("%w: public additional data", ErrDecryptionFailed)
	}

	pad, err := ParseValue(opened)
	if err != nil {
		return nil, nil, fmt.Errorf("public additional data: %w", err)
	}
	associatedData, err := Canonicalize(pad)
	if err != nil {
		return nil, nil, fmt.Errorf("public additional data: %w", err)
	}

	return pad, associatedData, nil
}

// tagInput is the canonical form of the two blobs as they appear on the
// wire. The tag covers the encoded text, not the decoded bytes.
func tagInput(locker models.Locker) ([]byte, error) {
	return Canonicalize(Object{
		"data": Object{
			"ciphertext": String(locker.Data.Ciphertext),
			"nonce":      String(locker.Data.Nonce),
		},
		"publicAdditionalData": Object{
			"ciphertext": String(locker.PublicAdditionalData.Ciphertext),
			"nonce":      String(locker.PublicAdditionalData.Nonce),
		},
	})
}

// computeTag is HMAC-SHA-512 truncated to 256 bits.
func computeTag(locker models.Locker, sessionKey []byte) ([]byte, error) {
	input, err := tagInput(locker)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(sha512.New, sessionKey)
	mac.Write(input)
	return mac.Sum(nil)[:TagSize], nil
}

func checkTag(locker models.Locker, sessionKey []byte) error {
	if err := checkSessionKey(sessionKey); err != nil {
		return err
	}

	tag, err := Encoding.DecodeString(locker.Tag)
	if err != nil || len(tag) != TagSize {
		return ErrInvalidTag
	}

	expected, err := computeTag(locker, sessionKey)
	if err != nil {
		return ErrInvalidTag
	}
	if !hmac.Equal(tag, expected) {
		return ErrInvalidTag
	}

	return nil
}

func checkSessionKey(sessionKey []byte) error {
	if len(sessionKey) != KeySize {
		return fmt.Errorf("%w: session key is %d bytes, want %d", ErrInvalidKeyLength, len(sessionKey), KeySize)
	}
	return nil
}

func payloadBytes(data any) ([]byte, error) {
	switch d := data.(type) {
	case string:
		return []byte(d), nil
	case []byte:
		return d, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInputType, data)
	}
}
