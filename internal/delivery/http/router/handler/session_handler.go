package handler

import (
	"log/slog"
	"net/http"

	"noticetrack/internal/delivery/http/response"
	"noticetrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for wallet sign-in handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

type challengeRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required"`
}

// RequestChallenge issues a one-time sign-in challenge for a wallet.
func (h *SessionHandler) RequestChallenge(c echo.Context) error {
	var input challengeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid challenge input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	challenge, err := h.uc.RequestChallenge(c.Request().Context(), input.WalletAddress)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"challenge": challenge}, "")
}

type verifyRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required"`
	Challenge     string `json:"challenge" validate:"required"`
	Signature     string `json:"signature" validate:"required"`
}

// VerifySignature exchanges a signed challenge for a session token.
func (h *SessionHandler) VerifySignature(c echo.Context) error {
	var input verifyRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.VerifySignature(c.Request().Context(), input.WalletAddress, input.Challenge, input.Signature)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"access_token": token}, "Session established")
}
