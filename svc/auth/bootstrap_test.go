package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minemind/authkit/svc/auth"
)

func TestBootstrapResolve(t *testing.T) {
	t.Parallel()

	boot := auth.NewBootstrap("injected-secret")

	t.Run("matching secret yields synthetic admin", func(t *testing.T) {
		t.Parallel()
		acct, ok := boot.Resolve(auth.AdminEmail, "injected-secret")
		require.True(t, ok)
		require.NotNil(t, acct)
		assert.True(t, acct.IsAdmin)
		assert.Equal(t, auth.AdminEmail, acct.Email)
		assert.Empty(t, acct.PasswordHash)
		assert.Empty(t, acct.Salt)
		assert.False(t, acct.MFAEnabled)
	})

	t.Run("wrong secret not applicable", func(t *testing.T) {
		t.Parallel()
		acct, ok := boot.Resolve(auth.AdminEmail, "wrong")
		assert.False(t, ok)
		assert.Nil(t, acct)
	})

	t.Run("other email not applicable", func(t *testing.T) {
		t.Parallel()
		acct, ok := boot.Resolve("alice@example.com", "injected-secret")
		assert.False(t, ok)
		assert.Nil(t, acct)
	})
}

func TestBootstrapDisabledWithoutSecret(t *testing.T) {
	t.Parallel()

	boot := auth.NewBootstrap("")
	acct, ok := boot.Resolve(auth.AdminEmail, "")
	assert.False(t, ok)
	assert.Nil(t, acct)
}
