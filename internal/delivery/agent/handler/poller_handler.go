package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"noticetrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PollerHandler exposes control of the background notification poller.
type PollerHandler struct {
	poller usecase.PollerUsecase
	logger *slog.Logger
}

// NewPollerHandler is the constructor for PollerHandler, injected by Fx.
func NewPollerHandler(poller usecase.PollerUsecase, logger *slog.Logger) *PollerHandler {
	return &PollerHandler{
		poller: poller,
		logger: logger,
	}
}

// Status returns a snapshot of the poller state.
func (h *PollerHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.poller.Status())
}

// Start transitions the poller to polling.
func (h *PollerHandler) Start(c echo.Context) error {
	if err := h.poller.Start(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.poller.Status())
}

// Stop transitions the poller back to idle.
func (h *PollerHandler) Stop(c echo.Context) error {
	h.poller.Stop()

	return c.JSON(http.StatusOK, h.poller.Status())
}

// RunCycle executes a single poll cycle immediately.
func (h *PollerHandler) RunCycle(c echo.Context) error {
	if err := h.poller.RunCycle(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.poller.Status())
}

// Notifications returns the surfaced-notice state.
func (h *PollerHandler) Notifications(c echo.Context) error {
	return c.JSON(http.StatusOK, h.poller.Notifications())
}

// MarkRead marks a surfaced notice as read.
func (h *PollerHandler) MarkRead(c echo.Context) error {
	noticeID, err := strconv.ParseUint(c.Param("noticeID"), 10, 64)
	if err != nil || noticeID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "notice id must be a positive integer")
	}

	if err := h.poller.MarkRead(noticeID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	return c.JSON(http.StatusOK, h.poller.Notifications())
}
