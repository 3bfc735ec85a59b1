package auth

import "time"

// Config carries the environment-injected settings of the auth service.
// Values are read once at construction and passed in explicitly; no
// business logic reads the environment ad hoc.
type Config struct {
	// AdminPass is the bootstrap secret injected by the deployment
	// (Docker CMD in the reference setup). When empty, bootstrap login
	// is disabled entirely.
	AdminPass string `env:"ADMIN_PASS"`
	// Issuer is the service name shown in authenticator apps.
	Issuer string `env:"MFA_ISSUER" envDefault:"MineMind Forge"`
	// MfaSealKey is an optional base64 AES-256 key. When set, MFA
	// secrets are sealed before they reach the store.
	MfaSealKey string `env:"MFA_SEAL_KEY"`
	// ResetTokenSecret signs password-reset tokens. When empty, a
	// random per-process secret is generated, which still works but
	// invalidates outstanding tokens on restart.
	ResetTokenSecret string `env:"RESET_TOKEN_SECRET"`
	// ResetTokenTTL bounds how long an issued reset token stays
	// redeemable.
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"1h"`
	// RecoveryCodeCount is how many backup codes are handed out when
	// MFA enrollment is confirmed.
	RecoveryCodeCount int `env:"MFA_RECOVERY_CODES" envDefault:"8"`
}
