package totp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minemind/authkit/pkg/totp"
)

func TestGenerateSecret(t *testing.T) {
	t.Parallel()

	secret, err := totp.GenerateSecret()
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Z2-7]+$`, secret)
	// 20 bytes encode to 32 base32 characters without padding.
	assert.Len(t, secret, 32)

	other, err := totp.GenerateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestKeyURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  totp.KeyParams
		want    string
		wantErr error
	}{
		{
			name: "basic uri",
			params: totp.KeyParams{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "alice@example.com",
				Issuer:      "MineMind Forge",
			},
			want: "otpauth://totp/MineMind%20Forge:alice@example.com?algorithm=SHA1&digits=6&issuer=MineMind+Forge&period=30&secret=ABCDEFGHIJKLMNOP",
		},
		{
			name: "missing secret",
			params: totp.KeyParams{
				AccountName: "alice@example.com",
				Issuer:      "MineMind Forge",
			},
			wantErr: totp.ErrMissingSecret,
		},
		{
			name: "secret not base32",
			params: totp.KeyParams{
				Secret:      "not-base32!",
				AccountName: "alice@example.com",
				Issuer:      "MineMind Forge",
			},
			wantErr: totp.ErrInvalidSecret,
		},
		{
			name: "missing account name",
			params: totp.KeyParams{
				Secret: "ABCDEFGHIJKLMNOP",
				Issuer: "MineMind Forge",
			},
			wantErr: totp.ErrMissingAccountName,
		},
		{
			name: "missing issuer",
			params: totp.KeyParams{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "alice@example.com",
			},
			wantErr: totp.ErrMissingIssuer,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := totp.KeyURI(tt.params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateAt(t *testing.T) {
	t.Parallel()

	secret, err := totp.GenerateSecret()
	require.NoError(t, err)

	// Aligned to a step boundary so relative offsets land in known steps.
	now := time.Unix(1699999980, 0)
	code, err := totp.GenerateCodeAt(secret, now)
	require.NoError(t, err)
	require.Len(t, code, 6)

	t.Run("current step accepted", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateAt(code, secret, now)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("previous step accepted", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateAt(code, secret, now.Add(30*time.Second))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("next step accepted", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateAt(code, secret, now.Add(-30*time.Second))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("two steps away rejected", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateAt(code, secret, now.Add(61*time.Second))
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = totp.ValidateAt(code, secret, now.Add(-61*time.Second))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("code with surrounding whitespace accepted", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateAt(" "+code+" ", secret, now)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("malformed codes", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"", "12345", "1234567", "12345a"} {
			_, err := totp.ValidateAt(bad, secret, now)
			assert.ErrorIs(t, err, totp.ErrMalformedCode, "code %q", bad)
		}
	})

	t.Run("invalid secret", func(t *testing.T) {
		t.Parallel()
		_, err := totp.ValidateAt("123456", "not-base32!", now)
		assert.ErrorIs(t, err, totp.ErrInvalidSecret)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	secret, err := totp.GenerateSecret()
	require.NoError(t, err)

	code, err := totp.GenerateCode(secret)
	require.NoError(t, err)

	ok, err := totp.Validate(code, secret)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerateCodeAt(t *testing.T) {
	t.Parallel()

	secret, err := totp.GenerateSecret()
	require.NoError(t, err)

	now := time.Unix(1699999980, 0) // step boundary

	// Same step yields the same code, the next step a different one
	// with overwhelming probability.
	a, err := totp.GenerateCodeAt(secret, now)
	require.NoError(t, err)
	b, err := totp.GenerateCodeAt(secret, now.Add(29*time.Second))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// RFC 6238 appendix B reference vector (SHA1, 8 digits truncated to
	// our 6): secret "12345678901234567890", T=59s yields 94287082.
	refSecret := "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"
	code, err := totp.GenerateCodeAt(refSecret, time.Unix(59, 0))
	require.NoError(t, err)
	assert.Equal(t, "287082", code)
}
