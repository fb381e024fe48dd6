// Package handler contains the HTTP handlers for the record store API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"noticetrack/internal/delivery/http/response"
	"noticetrack/internal/domain/entity"
	"noticetrack/internal/domain/service"
	"noticetrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NoticeHandler holds dependencies for notice-related handlers.
type NoticeHandler struct {
	uc     usecase.NoticeUsecase
	qrSvc  service.QRCodeService
	logger *slog.Logger
}

// NewNoticeHandler is the constructor for NoticeHandler, injected by Fx.
func NewNoticeHandler(uc usecase.NoticeUsecase, qrSvc service.QRCodeService, logger *slog.Logger) *NoticeHandler {
	return &NoticeHandler{
		uc:     uc,
		qrSvc:  qrSvc,
		logger: logger,
	}
}

type registerNoticeRequest struct {
	NoticeID         uint64 `json:"notice_id"`
	AlertID          uint64 `json:"alert_id"`
	DocumentID       uint64 `json:"document_id"`
	CaseNumber       string `json:"case_number" validate:"required"`
	Sender           string `json:"sender"`
	RecipientAddress string `json:"recipient_address" validate:"required,tron_address"`
	IssuingAgency    string `json:"issuing_agency"`
	NoticeType       string `json:"notice_type"`

	ServedAt         time.Time  `json:"served_at"`
	ResponseDeadline *time.Time `json:"response_deadline"`
}

// RegisterNotice handles the notice registration request.
func (h *NoticeHandler) RegisterNotice(c echo.Context) error {
	var input registerNoticeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notice input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	notice := &entity.Notice{
		NoticeID:         input.NoticeID,
		AlertID:          input.AlertID,
		DocumentID:       input.DocumentID,
		CaseNumber:       input.CaseNumber,
		Sender:           input.Sender,
		RecipientAddress: input.RecipientAddress,
		IssuingAgency:    input.IssuingAgency,
		NoticeType:       input.NoticeType,
		ServedAt:         input.ServedAt,
		ResponseDeadline: input.ResponseDeadline,
	}

	created, err := h.uc.RegisterNotice(c.Request().Context(), notice)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Notice registered successfully")
}

// GetNotice returns a single notice by its chain token id.
func (h *NoticeHandler) GetNotice(c echo.Context) error {
	noticeID, err := parseNoticeID(c.Param("noticeID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notice id")
	}

	notice, err := h.uc.GetNotice(c.Request().Context(), noticeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notice, "")
}

// GetNoticeQR returns a PNG QR code encoding the recipient view link.
func (h *NoticeHandler) GetNoticeQR(c echo.Context) error {
	noticeID, err := parseNoticeID(c.Param("noticeID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notice id")
	}

	// The notice must exist before a deep link is minted for it.
	if _, err := h.uc.GetNotice(c.Request().Context(), noticeID); err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qrSvc.GenerateNoticeQR(noticeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListWalletNotices returns all notices served to a wallet address.
func (h *NoticeHandler) ListWalletNotices(c echo.Context) error {
	notices, err := h.uc.ListWalletNotices(c.Request().Context(), c.Param("address"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notices, "")
}

// ListCaseNotices returns all notices recorded for a case.
func (h *NoticeHandler) ListCaseNotices(c echo.Context) error {
	notices, err := h.uc.ListCaseNotices(c.Request().Context(), c.Param("caseNumber"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notices, "")
}

func parseNoticeID(raw string) (uint64, error) {
	noticeID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || noticeID == 0 {
		return 0, errors.New("notice id must be a positive integer")
	}

	return noticeID, nil
}
