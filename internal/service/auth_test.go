package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantry-finder/backend/internal/service"
	"github.com/pageza/pantry-finder/backend/internal/types"
)

func TestGenerateAndValidateToken(t *testing.T) {
	authSvc := service.NewAuthService("test-secret")
	userID := uuid.New()

	token, err := authSvc.GenerateToken(userID, "cook", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "cook", claims.Username)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := service.NewAuthService("one").GenerateToken(uuid.New(), "cook", time.Hour)
	require.NoError(t, err)

	_, err = service.NewAuthService("two").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	authSvc := service.NewAuthService("test-secret")
	token, err := authSvc.GenerateToken(uuid.New(), "cook", -time.Minute)
	require.NoError(t, err)

	_, err = authSvc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTokenWithoutUser(t *testing.T) {
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.NewAuthService("test-secret").ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := service.NewAuthService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
