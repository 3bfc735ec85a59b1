package auth

import "crypto/subtle"

const (
	// AdminEmail is the fixed address of the operator bootstrap
	// identity.
	AdminEmail = "admin@minemind.net"
	// adminAccountID marks the synthetic, never-persisted admin record.
	adminAccountID = "docker-admin-001"
)

// Bootstrap authenticates the single operator identity against a secret
// injected by the deployment environment instead of the store. The
// resulting account is synthetic: it carries no credential material and
// is never written anywhere.
type Bootstrap struct {
	secret string
}

// NewBootstrap builds a resolver around the injected secret. An empty
// secret disables bootstrap login.
func NewBootstrap(secret string) *Bootstrap {
	return &Bootstrap{secret: secret}
}

// Resolve returns the synthetic admin account when email is the
// administrative address and password matches the injected secret.
// Any other combination reports not-applicable and the caller falls
// through to standard login. The secret comparison is constant-time.
func (b *Bootstrap) Resolve(email, password string) (*Account, bool) {
	if email != AdminEmail || b.secret == "" {
		return nil, false
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(b.secret)) != 1 {
		return nil, false
	}
	return &Account{
		ID:              adminAccountID,
		Email:           AdminEmail,
		MFAEnabled:      false,
		CustomLanguages: map[string]any{},
		IsAdmin:         true,
	}, true
}
