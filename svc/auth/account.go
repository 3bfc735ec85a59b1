package auth

import "maps"

// Account is the persisted identity record. It serializes as a flat
// mapping; the only secrets it carries are the password digest, its
// salt, the (optionally sealed) MFA secret and hashed recovery codes.
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Salt         string `json:"salt"`
	MFAEnabled   bool   `json:"mfaEnabled"`
	// MFASecret is set iff MFAEnabled is true. When a seal key is
	// configured it holds the AES-GCM sealed secret, otherwise the raw
	// base32 value.
	MFASecret string `json:"mfaSecret,omitempty"`
	// RecoveryCodes holds SHA-256 hashes of unused one-time backup
	// codes; plaintext codes are shown once at enrollment.
	RecoveryCodes []string `json:"recoveryCodes,omitempty"`
	// ResetTokenID binds the most recently issued password-reset token
	// to the account. Cleared on redemption so tokens are single-use.
	ResetTokenID string `json:"resetTokenId,omitempty"`
	// CustomLanguages is an opaque per-user bag mutated by the
	// localization features. It takes no part in any credential
	// computation.
	CustomLanguages map[string]any `json:"customLanguages"`
	// IsAdmin marks the synthetic bootstrap identity. It is never true
	// on a stored record and is excluded from serialization.
	IsAdmin bool `json:"-"`
}

// Clone returns a deep copy so store implementations can hand out
// accounts without sharing mutable internals.
func (a Account) Clone() Account {
	a.RecoveryCodes = append([]string(nil), a.RecoveryCodes...)
	a.CustomLanguages = maps.Clone(a.CustomLanguages)
	return a
}
