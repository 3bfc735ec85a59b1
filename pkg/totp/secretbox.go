package totp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// SealKeySize is the key length required for AES-256-GCM.
const SealKeySize = 32

// SealSecret encrypts a shared secret for at-rest storage using
// AES-256-GCM and returns the nonce-prefixed ciphertext base64-encoded.
func SealSecret(secret string, key []byte) (string, error) {
	aead, err := newGCM(key)
	if err != nil {
		return "", errors.Join(ErrSealFailed, err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrSealFailed, err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(secret), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenSecret decrypts a secret previously produced by SealSecret.
func OpenSecret(sealed string, key []byte) (string, error) {
	aead, err := newGCM(key)
	if err != nil {
		return "", errors.Join(ErrOpenFailed, err)
	}

	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Join(ErrOpenFailed, err)
	}
	if len(raw) < aead.NonceSize() {
		return "", errors.Join(ErrOpenFailed, ErrCiphertextShort)
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	secret, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errors.Join(ErrOpenFailed, err)
	}
	return string(secret), nil
}

// GenerateSealKey returns a fresh random AES-256 key, base64-encoded for
// storage in configuration.
func GenerateSealKey() (string, error) {
	key := make([]byte, SealKeySize)
	if _, err := rand.Read(key); err != nil {
		return "", errors.Join(ErrSealKeyGeneration, err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// DecodeSealKey decodes a base64 key from configuration and checks its length.
func DecodeSealKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	if len(key) != SealKeySize {
		return nil, ErrInvalidSealKey
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != SealKeySize {
		return nil, ErrInvalidSealKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
