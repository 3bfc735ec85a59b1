package totp

import "errors"

var (
	ErrMissingSecret      = errors.New("missing secret")
	ErrInvalidSecret      = errors.New("invalid secret")
	ErrMissingAccountName = errors.New("missing account name")
	ErrMissingIssuer      = errors.New("missing issuer")
	ErrMalformedCode      = errors.New("malformed one-time code")
	ErrSecretGeneration   = errors.New("failed to generate shared secret")

	ErrSealFailed        = errors.New("failed to seal secret")
	ErrOpenFailed        = errors.New("failed to open sealed secret")
	ErrCiphertextShort   = errors.New("ciphertext too short")
	ErrInvalidSealKey    = errors.New("seal key must be 32 bytes")
	ErrSealKeyGeneration = errors.New("failed to generate seal key")

	ErrInvalidRecoveryCodeCount = errors.New("recovery code count must be positive")
	ErrRecoveryCodeGeneration   = errors.New("failed to generate recovery code")
)
