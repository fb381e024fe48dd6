package service

import "github.com/golang-jwt/jwt/v5"

// TokenService defines the interface for wallet-session token operations.
type TokenService interface {
	// GenerateAccessToken issues a short-lived session token bound to a
	// wallet address.
	GenerateAccessToken(walletAddress string) (string, error)

	// ValidateToken parses and validates a token string with the given secret.
	ValidateToken(tokenString, secret string) (*jwt.Token, error)
}
