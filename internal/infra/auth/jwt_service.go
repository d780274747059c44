// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"homeradar/config"
	"homeradar/internal/domain/service"
)

// jwtService validates access tokens issued by the hosted auth provider.
// Token issuance lives with the provider; this service only verifies HS256
// signatures against the shared project secret.
type jwtService struct {
	accessSecret string
}

// claimsPayload mirrors the JWT claim layout the hosted provider emits.
type claimsPayload struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
	}, nil
}

// ValidateToken checks the validity of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	var payload claimsPayload

	token, err := jwt.ParseWithClaims(tokenString, &payload, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return nil, errors.New("token carries an invalid user ID")
	}

	return &service.Claims{
		UserID:           userID,
		Role:             payload.Role,
		RegisteredClaims: payload.RegisteredClaims,
	}, nil
}
