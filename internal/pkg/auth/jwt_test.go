package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomark-service/internal/pkg/auth"
)

func TestNewTokenManager(t *testing.T) {
	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := auth.NewTokenManager("", time.Hour)
		assert.Error(t, err)
	})

	t.Run("accepts non-empty secret", func(t *testing.T) {
		m, err := auth.NewTokenManager("test-secret", time.Hour)
		assert.NoError(t, err)
		assert.NotNil(t, m)
	})
}

func TestTokenManager_GenerateValidate(t *testing.T) {
	m, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	t.Run("round trip returns the embedded user id", func(t *testing.T) {
		token, err := m.Generate(42)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, err := m.Validate(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other, err := auth.NewTokenManager("other-secret", time.Hour)
		require.NoError(t, err)

		token, err := other.Generate(42)
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired, err := auth.NewTokenManager("test-secret", -time.Minute)
		require.NoError(t, err)

		token, err := expired.Generate(42)
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := m.Validate("not-a-token")
		assert.Error(t, err)
	})

	t.Run("rejects alg none", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"user_id": 42,
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})
}
