package auth

import (
	"testing"
	"time"

	"homeradar/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test-access-secret"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Success(t *testing.T) {
	svc := newTestJWTService(t)

	userID := uuid.New()
	tokenString := signToken(t, testAccessSecret, jwt.MapClaims{
		"user_id": userID.String(),
		"role":    "seeker",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateToken(tokenString)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "seeker", claims.Role)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	tokenString := signToken(t, "another-secret", jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "owner",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(t)

	tokenString := signToken(t, testAccessSecret, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "owner",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)

	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_ValidateToken_RejectsUnexpectedAlgorithm(t *testing.T) {
	svc := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "owner",
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_InvalidUserID(t *testing.T) {
	svc := newTestJWTService(t)

	tokenString := signToken(t, testAccessSecret, jwt.MapClaims{
		"user_id": "not-a-uuid",
		"role":    "seeker",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user ID")
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("not.a.token")

	assert.Error(t, err)
}
