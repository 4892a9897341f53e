package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-123"

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "asklocal", 15*time.Minute)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, role, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "user", role)
}

func TestJWTManager_ValidateAccessToken_Errors(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "asklocal", 15*time.Minute)

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()
		_, _, err := m.ValidateAccessToken("")
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()
		_, _, err := m.ValidateAccessToken("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		other := NewJWTManager("another-secret-that-is-long-enough", "asklocal", 15*time.Minute)
		token, err := other.GenerateAccessToken(uuid.New(), "user")
		require.NoError(t, err)

		_, _, err = m.ValidateAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		t.Parallel()
		other := NewJWTManager(testSecret, "someone-else", 15*time.Minute)
		token, err := other.GenerateAccessToken(uuid.New(), "user")
		require.NoError(t, err)

		_, _, err = m.ValidateAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		short := NewJWTManager(testSecret, "asklocal", -time.Minute)
		token, err := short.GenerateAccessToken(uuid.New(), "user")
		require.NoError(t, err)

		_, _, err = short.ValidateAccessToken(token)
		assert.Error(t, err)
	})
}

func TestJWTManager_GenerateRefreshToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "asklocal", 15*time.Minute)

	raw, hash, err := m.GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, HashToken(raw), hash)

	raw2, hash2, err := m.GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
	assert.NotEqual(t, hash, hash2)
}
