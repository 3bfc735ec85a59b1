package hasher_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minemind/authkit/pkg/hasher"
)

var hexDigestRegex = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestHash(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, hasher.Hash("pw123", "salt"), hasher.Hash("pw123", "salt"))
	})

	t.Run("lowercase hex output", func(t *testing.T) {
		t.Parallel()
		assert.Regexp(t, hexDigestRegex, hasher.Hash("pw123", "salt"))
	})

	t.Run("different salts produce different digests", func(t *testing.T) {
		t.Parallel()
		s1 := hasher.GenerateSalt()
		s2 := hasher.GenerateSalt()
		require.NotEqual(t, s1, s2)
		assert.NotEqual(t, hasher.Hash("pw123", s1), hasher.Hash("pw123", s2))
	})

	t.Run("different passwords produce different digests", func(t *testing.T) {
		t.Parallel()
		salt := hasher.GenerateSalt()
		assert.NotEqual(t, hasher.Hash("pw123", salt), hasher.Hash("pw124", salt))
	})
}

func TestGenerateSalt(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		salt := hasher.GenerateSalt()
		require.NotEmpty(t, salt)
		_, dup := seen[salt]
		require.False(t, dup, "salt reused: %s", salt)
		seen[salt] = struct{}{}
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	salt := hasher.GenerateSalt()
	digest := hasher.Hash("correct horse", salt)

	assert.True(t, hasher.Verify("correct horse", salt, digest))
	assert.False(t, hasher.Verify("wrong horse", salt, digest))
	assert.False(t, hasher.Verify("correct horse", hasher.GenerateSalt(), digest))
	assert.False(t, hasher.Verify("correct horse", salt, ""))
}
