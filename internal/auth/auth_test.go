// server/internal/auth/auth_test.go
package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestGenerateJWTRoundTrip(t *testing.T) {
	tokenString, err := GenerateJWT("64f0c0ffee", "retailer@example.com", "retailer")
	require.NoError(t, err)

	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtSecret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "64f0c0ffee", claims.UserID)
	assert.Equal(t, "retailer@example.com", claims.Email)
	assert.Equal(t, "retailer", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
}
