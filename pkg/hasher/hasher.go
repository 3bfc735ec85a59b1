package hasher

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/google/uuid"
)

// Hash derives the stored credential digest from a password and its
// per-account salt. The digest is SHA-256 over the concatenation
// password+salt, rendered as lowercase hex (64 characters).
func Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// GenerateSalt returns a fresh random salt for a new account.
// Salts are UUIDv4 strings (122 bits of entropy) and are never reused
// or derived from any account attribute.
func GenerateSalt() string {
	return uuid.NewString()
}

// Verify recomputes the digest for a submitted password and compares it
// against the stored one in constant time.
func Verify(password, salt, storedHash string) bool {
	computed := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
