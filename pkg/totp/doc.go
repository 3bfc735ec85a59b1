// Package totp implements time-based one-time passwords per RFC 6238
// with the RFC 4226 HOTP core, plus the supporting pieces a login flow
// needs around them: provisioning-URI construction for authenticator
// apps, AES-256-GCM sealing of shared secrets for at-rest storage, and
// single-use recovery codes.
//
// Codes are 6 digits over HMAC-SHA1 with a 30-second step, matching the
// defaults of every mainstream authenticator app. Validation accepts
// the current step and both adjacent steps (±30s of clock skew) and
// compares all three candidates in constant time.
//
// The package holds no state: every function is a pure computation over
// its inputs and, for code generation/validation, the wall clock.
//
// # Usage
//
//	secret, _ := totp.GenerateSecret()
//	uri, _ := totp.KeyURI(totp.KeyParams{
//	    Secret:      secret,
//	    AccountName: "alice@example.com",
//	    Issuer:      "MineMind Forge",
//	})
//	// render uri as a QR code, then confirm the user's first code:
//	ok, _ := totp.Validate(submitted, secret)
package totp
