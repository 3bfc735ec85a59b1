package totp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
)

// GenerateRecoveryCodes creates single-use backup codes for accounts
// that may lose access to their authenticator. Each code carries 64 bits
// of entropy rendered as 16 uppercase hex characters.
func GenerateRecoveryCodes(count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidRecoveryCodeCount
	}

	codes := make([]string, count)
	for i := 0; i < count; i++ {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			return nil, errors.Join(ErrRecoveryCodeGeneration, err)
		}
		codes[i] = fmt.Sprintf("%X", buf)
	}
	return codes, nil
}

// HashRecoveryCode returns the SHA-256 digest under which a recovery
// code is stored; plaintext codes are shown once and never persisted.
func HashRecoveryCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// VerifyRecoveryCode compares a submitted code against its stored hash
// in constant time.
func VerifyRecoveryCode(code, hashedCode string) bool {
	computed := HashRecoveryCode(code)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedCode)) == 1
}
