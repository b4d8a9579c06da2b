//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"purchase-approval/internal/pkg/jwt"
	"purchase-approval/tests/common/builder"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("test-session-secret", time.Hour)
	id := builder.NewIdentity(t, "Alice", "alice@example.com", "alt@example.com")

	t.Run("round trip keeps the identity", func(t *testing.T) {
		token, err := svc.GenerateToken(id)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "Alice", claims.DisplayName)
		assert.Equal(t, []string{"alice@example.com", "alt@example.com"}, claims.Emails)
		assert.Equal(t, "alice@example.com", claims.Subject)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("test-session-secret", -time.Minute)
		token, err := expired.GenerateToken(id)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("another-secret", time.Hour)
		token, err := other.GenerateToken(id)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
			DisplayName: "Alice",
			Emails:      []string{"alice@example.com"},
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("test-session-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
