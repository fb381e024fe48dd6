package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "noticetrack/internal/delivery/context"
	"noticetrack/internal/delivery/http/response"
	"noticetrack/internal/domain/entity"
	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultActivityPageSize = 50

// ActivityHandler holds dependencies for audit-trail handlers.
type ActivityHandler struct {
	uc     usecase.ActivityUsecase
	logger *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordActivity appends a recipient interaction to the audit trail. The
// event's wallet must match the wallet the session token is bound to.
func (h *ActivityHandler) RecordActivity(c echo.Context) error {
	var event entity.RecipientActivityEvent
	if err := c.Bind(&event); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity event input")
	}

	tokenWallet := deliverycontext.GetWalletAddress(c)
	if event.WalletAddress == "" {
		event.WalletAddress = tokenWallet
	}
	if event.WalletAddress != tokenWallet {
		return errors.WithStack(domainerrors.ErrWalletMismatch)
	}

	// Connection metadata comes from the transport, not the client body.
	if event.IPAddress == "" {
		event.IPAddress = c.RealIP()
	}
	if event.UserAgent == "" {
		event.UserAgent = c.Request().UserAgent()
	}

	recorded, err := h.uc.RecordEvent(c.Request().Context(), &event)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, recorded, "Activity recorded successfully")
}

type acknowledgeCaseRequest struct {
	TransactionHash string    `json:"transaction_hash"`
	SignedAt        time.Time `json:"signed_at"`
}

// AcknowledgeCase transitions a case to the terminal signed status on behalf
// of the authenticated wallet.
func (h *ActivityHandler) AcknowledgeCase(c echo.Context) error {
	var input acknowledgeCaseRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid acknowledgment input")
	}

	signedAt := input.SignedAt
	if signedAt.IsZero() {
		signedAt = time.Now().UTC()
	}

	err := h.uc.AcknowledgeCase(
		c.Request().Context(),
		c.Param("caseNumber"),
		deliverycontext.GetWalletAddress(c),
		input.TransactionHash,
		signedAt,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Case acknowledged successfully")
}

// GetCaseAudit returns the audit trail for a case in occurrence order.
func (h *ActivityHandler) GetCaseAudit(c echo.Context) error {
	events, err := h.uc.GetCaseAudit(c.Request().Context(), c.Param("caseNumber"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// GetWalletActivity returns a wallet's events, newest first.
func (h *ActivityHandler) GetWalletActivity(c echo.Context) error {
	limit := queryInt(c, "limit", defaultActivityPageSize)
	offset := queryInt(c, "offset", 0)

	events, err := h.uc.GetWalletActivity(c.Request().Context(), c.Param("address"), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}

	return value
}
