// Package middleware holds the record store API's echo middleware.
package middleware

import (
	"net/http"
	"strings"

	"noticetrack/config"
	deliverycontext "noticetrack/internal/delivery/context"
	"noticetrack/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for wallet-session authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the session token and stores the wallet address it
// is bound to on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		walletAddress, ok := claims["sub"].(string)
		if !ok || walletAddress == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Wallet address missing from token"})
		}

		deliverycontext.SetWalletAddress(c, walletAddress)

		return next(c)
	}
}

// RequireWalletParam checks that the authenticated wallet matches the named
// path parameter. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireWalletParam(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			wallet := deliverycontext.GetWalletAddress(c)
			if wallet == "" || wallet != c.Param(param) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Token is not bound to the requested wallet"})
			}

			return next(c)
		}
	}
}
