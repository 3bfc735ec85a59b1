package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	// Digits is the number of digits in generated codes (RFC 6238 default).
	Digits = 6
	// Period is the code validity window in seconds (RFC 6238 default).
	Period = 30
	// Algorithm is the HMAC algorithm identifier advertised in key URIs.
	Algorithm = "SHA1"

	// secretSize is 160 bits, the RFC 4226 recommended secret strength.
	secretSize = 20
)

var (
	// secretRegex matches Base32 secrets: uppercase A-Z, digits 2-7, optional padding.
	secretRegex = regexp.MustCompile(`^[A-Z2-7]+=*$`)
	codeRegex   = regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, Digits))

	b32 = base32.StdEncoding.WithPadding(base32.NoPadding)
)

// KeyParams describes a TOTP key for provisioning-URI construction.
type KeyParams struct {
	Secret      string // Base32-encoded shared secret (required)
	AccountName string // user identifier shown in authenticator apps, usually the email (required)
	Issuer      string // service name shown in authenticator apps (required)
}

func (p KeyParams) validate() error {
	if p.Secret == "" {
		return ErrMissingSecret
	}
	if !secretRegex.MatchString(p.Secret) {
		return ErrInvalidSecret
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// GenerateSecret returns a new Base32-encoded 160-bit shared secret.
func GenerateSecret() (string, error) {
	buf := make([]byte, secretSize)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrSecretGeneration, err)
	}
	return b32.EncodeToString(buf), nil
}

// KeyURI builds an otpauth:// provisioning URI for authenticator apps,
// following the Key Uri Format specification:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
func KeyURI(params KeyParams) (string, error) {
	if err := params.validate(); err != nil {
		return "", err
	}

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", params.Secret)
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", Algorithm)
	query.Set("digits", fmt.Sprintf("%d", Digits))
	query.Set("period", fmt.Sprintf("%d", Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}

// Validate checks a submitted code against the secret for the current
// 30-second step and the immediately adjacent steps (window of ±1,
// tolerating up to 30s of clock skew either way).
func Validate(code, secret string) (bool, error) {
	return ValidateAt(code, secret, time.Now())
}

// ValidateAt is Validate evaluated at an arbitrary point in time.
func ValidateAt(code, secret string, t time.Time) (bool, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return false, err
	}

	code = strings.TrimSpace(code)
	if !codeRegex.MatchString(code) {
		return false, ErrMalformedCode
	}

	counter := t.Unix() / int64(Period)

	// All three window candidates are always computed and compared with
	// subtle.ConstantTimeCompare so the check never exits early on a
	// match; verification time is independent of which step (if any)
	// produced the submitted code.
	match := 0
	for _, offset := range [...]int64{-1, 0, 1} {
		candidate := fmt.Sprintf("%0*d", Digits, hotp(key, counter+offset))
		match |= subtle.ConstantTimeCompare([]byte(candidate), []byte(code))
	}

	return match == 1, nil
}

// GenerateCode returns the code for the current 30-second step.
func GenerateCode(secret string) (string, error) {
	return GenerateCodeAt(secret, time.Now())
}

// GenerateCodeAt returns the code for the step containing t. Useful in
// tests and when pre-computing codes for specific moments.
func GenerateCodeAt(secret string, t time.Time) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	counter := t.Unix() / int64(Period)
	return fmt.Sprintf("%0*d", Digits, hotp(key, counter)), nil
}

func decodeSecret(secret string) ([]byte, error) {
	secret = strings.TrimSpace(strings.ToUpper(secret))
	if !secretRegex.MatchString(secret) {
		return nil, ErrInvalidSecret
	}
	key, err := b32.DecodeString(strings.TrimRight(secret, "="))
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	return key, nil
}

// hotp implements the RFC 4226 HMAC-based one-time password algorithm
// for a single counter value.
func hotp(key []byte, counter int64) int {
	// Counter is encoded big-endian into 8 bytes (RFC 4226 §5.1).
	msg := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		msg[i] = byte(counter & 0xff)
		counter >>= 8
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(msg)
	sum := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 §5.3): low nibble of the last byte
	// selects the offset, MSB is cleared to keep the value positive.
	offset := sum[len(sum)-1] & 0x0f
	value := (int(sum[offset]&0x7f) << 24) |
		(int(sum[offset+1]) << 16) |
		(int(sum[offset+2]) << 8) |
		int(sum[offset+3])

	return value % int(math.Pow10(Digits))
}
