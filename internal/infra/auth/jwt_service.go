// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"noticetrack/config"
	"noticetrack/internal/domain/service"
)

const defaultAccessTTL = time.Minute * 15

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		accessTTL = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    accessTTL,
	}, nil
}

// GenerateAccessToken creates a session token bound to a wallet address.
func (s *jwtService) GenerateAccessToken(walletAddress string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  walletAddress,                      // Subject (the authenticated wallet)
		"iat":  time.Now().Unix(),                  // Issued At
		"exp":  time.Now().Add(s.accessTTL).Unix(), // Expiration Time
		"type": "access",                           // Type of token
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// ValidateToken checks the validity of a token string against a secret.
func (s *jwtService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
}
