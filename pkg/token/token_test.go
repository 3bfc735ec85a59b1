package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minemind/authkit/pkg/token"
)

type testClaims struct {
	Email     string    `json:"email"`
	TokenID   string    `json:"jti"`
	ExpiresAt time.Time `json:"exp"`
}

func TestIssueParse(t *testing.T) {
	t.Parallel()

	claims := testClaims{
		Email:     "alice@example.com",
		TokenID:   "token-1",
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}

	tok, err := token.Issue(claims, "signing-secret")
	require.NoError(t, err)
	assert.Contains(t, tok, ".")

	parsed, err := token.Parse[testClaims](tok, "signing-secret")
	require.NoError(t, err)
	assert.Equal(t, claims.Email, parsed.Email)
	assert.Equal(t, claims.TokenID, parsed.TokenID)
	assert.True(t, claims.ExpiresAt.Equal(parsed.ExpiresAt))
}

func TestParseRejects(t *testing.T) {
	t.Parallel()

	tok, err := token.Issue(testClaims{Email: "alice@example.com"}, "signing-secret")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		_, err := token.Parse[testClaims](tok, "other-secret")
		assert.ErrorIs(t, err, token.ErrInvalidSignature)
	})

	t.Run("tampered payload", func(t *testing.T) {
		t.Parallel()
		parts := strings.SplitN(tok, ".", 2)
		tampered := parts[0] + "x." + parts[1]
		_, err := token.Parse[testClaims](tampered, "signing-secret")
		assert.Error(t, err)
	})

	t.Run("missing separator", func(t *testing.T) {
		t.Parallel()
		_, err := token.Parse[testClaims]("nodothere", "signing-secret")
		assert.ErrorIs(t, err, token.ErrMalformedToken)
	})

	t.Run("garbage base64", func(t *testing.T) {
		t.Parallel()
		_, err := token.Parse[testClaims]("%%%.%%%", "signing-secret")
		assert.ErrorIs(t, err, token.ErrMalformedToken)
	})
}
