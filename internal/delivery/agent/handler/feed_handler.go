// Package handler contains the recipient agent's local API handlers.
package handler

import (
	"log/slog"
	"net/http"

	"noticetrack/config"
	"noticetrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedHandler serves the reconciled notice feed for the agent's wallet.
type FeedHandler struct {
	feed   usecase.FeedUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler, injected by Fx.
func NewFeedHandler(feed usecase.FeedUsecase, cfg *config.Config, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		feed:   feed,
		cfg:    cfg,
		logger: logger,
	}
}

// GetFeed returns the merged chain and record store view of the wallet's
// notices, with degradation flags when a source was unreachable.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	feed, err := h.feed.GetRecipientFeed(c.Request().Context(), h.cfg.Poller.WalletAddress)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, feed)
}
