package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password; the caller-visible message deliberately does not say
	// which.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountExists is returned when registering an email that is
	// already taken.
	ErrAccountExists = errors.New("an account with this email already exists")
	// ErrInvalidMfaCode is returned when an enrollment confirmation or
	// login verification code is rejected.
	ErrInvalidMfaCode = errors.New("invalid one-time code")
	// ErrConfiguration is returned when a stored record shadows the
	// administrative bootstrap identity.
	ErrConfiguration = errors.New("administrative account is managed by deployment configuration")
	// ErrInvalidState is returned when an operation is fired from a
	// state that does not allow it.
	ErrInvalidState = errors.New("operation not available in the current state")
	// ErrInvalidResetToken is returned when redeeming a reset token
	// that is malformed, expired, superseded or already used.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
