// Package auth provides token validation for the API surface. Session
// management, registration, and password handling live in a separate auth
// service; this package only verifies the bearer tokens that service mints.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Common authentication errors
var (
	// ErrInvalidToken is returned when a token fails signature or claims
	// validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token is past its expiry.
	ErrExpiredToken = errors.New("token expired")

	// ErrEmptySecret is returned when constructing a service without a
	// signing secret.
	ErrEmptySecret = errors.New("JWT secret cannot be empty")
)

// Claims are the token claims this service cares about: the subject user
// plus the registered claim set.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// JWTService validates bearer tokens and exposes token generation for
// tests and tooling.
type JWTService interface {
	// ValidateToken verifies the token signature and expiry and returns
	// the parsed claims.
	ValidateToken(ctx context.Context, token string) (*Claims, error)

	// GenerateToken mints a token for the given user with the service's
	// configured lifetime. Production tokens come from the auth service;
	// this exists for tests and local tooling.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)
}

// hmacJWTService is the HMAC-SHA256 implementation of JWTService.
type hmacJWTService struct {
	secret   []byte
	lifetime time.Duration
}

// NewJWTService creates a JWTService signing and verifying with the given
// shared secret.
func NewJWTService(secret string, lifetime time.Duration) (JWTService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if lifetime <= 0 {
		lifetime = time.Hour
	}

	return &hmacJWTService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}, nil
}

// ValidateToken implements JWTService.ValidateToken.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateToken implements JWTService.GenerateToken.
func (s *hmacJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
