package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthlog/backend/internal/service"
	"github.com/pageza/healthlog/backend/internal/testhelpers"
	"github.com/pageza/healthlog/backend/internal/types"
)

const testSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := service.NewAuthService(db, testSecret, "healthlog", time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, " Anna@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)

	_, err = svc.Register(ctx, "anna@example.com", "another-password")
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	loggedIn, err := svc.Login(ctx, "ANNA@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	_, err = svc.Login(ctx, "anna@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := service.NewAuthService(nil, testSecret, "healthlog", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(&types.TokenClaims{UserID: userID, Email: "anna@example.com"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "anna@example.com", claims.Email)
	assert.Equal(t, "healthlog", claims.Issuer)
}

func TestValidateTokenInvalid(t *testing.T) {
	svc := service.NewAuthService(nil, testSecret, "healthlog", time.Hour)

	claims, err := svc.ValidateToken("invalid.token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	other := service.NewAuthService(nil, "other-secret", "healthlog", time.Hour)
	token, err := other.GenerateToken(&types.TokenClaims{UserID: uuid.New()})
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := service.NewAuthService(nil, testSecret, "healthlog", -time.Minute)

	token, err := svc.GenerateToken(&types.TokenClaims{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestValidateTokenRejectsOtherAlgorithms(t *testing.T) {
	svc := service.NewAuthService(nil, testSecret, "healthlog", time.Hour)

	claims := &types.TokenClaims{UserID: uuid.New()}
	claims.Issuer = "healthlog"
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(token, "."))

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
