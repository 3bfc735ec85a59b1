// Package token issues and verifies compact HMAC-signed tokens carrying
// a JSON payload, used for password-reset links and similar short-lived
// out-of-band credentials.
//
// Tokens are not encrypted; the payload is readable by anyone holding
// the token. Put nothing secret in it. What the signature guarantees is
// that the payload was produced by a holder of the signing secret and
// has not been altered.
//
// # Usage
//
//	type resetClaims struct {
//	    Email     string    `json:"email"`
//	    TokenID   string    `json:"jti"`
//	    ExpiresAt time.Time `json:"exp"`
//	}
//
//	tok, err := token.Issue(resetClaims{...}, signingSecret)
//	claims, err := token.Parse[resetClaims](tok, signingSecret)
package token
