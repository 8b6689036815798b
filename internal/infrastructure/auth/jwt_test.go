package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskboard/backend/internal/infrastructure/config"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-at-least-32-characters!!",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "taskboard-backend",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService()
	accountID := uuid.New()

	token, err := svc.GenerateAccessToken(accountID, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.True(t, token.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateAccessToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.AccountID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	parsed, err := claims.GetAccountUUID()
	require.NoError(t, err)
	assert.Equal(t, accountID, parsed)
}

func TestJWTService_ValidateAccessToken_Errors(t *testing.T) {
	svc := newTestService()

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "another-secret-also-32-characters!!!",
			AccessTokenExpiration: 15 * time.Minute,
			Issuer:                "taskboard-backend",
		})
		token, err := other.GenerateAccessToken(uuid.New(), "")
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTService(config.JWTConfig{
			Secret:                "test-secret-at-least-32-characters!!",
			AccessTokenExpiration: -time.Minute,
			Issuer:                "taskboard-backend",
		})
		token, err := expired.GenerateAccessToken(uuid.New(), "")
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("rejects missing account id", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
			TokenType: TokenTypeAccess,
		}
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := raw.SignedString([]byte("test-secret-at-least-32-characters!!"))
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(signed)
		assert.ErrorIs(t, err, ErrMissingAccountID)
	})

	t.Run("rejects wrong token type", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
			AccountID: uuid.New().String(),
			TokenType: TokenType("refresh"),
		}
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := raw.SignedString([]byte("test-secret-at-least-32-characters!!"))
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(signed)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})
}
