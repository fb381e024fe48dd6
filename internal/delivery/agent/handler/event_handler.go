package handler

import (
	"log/slog"
	"net/http"

	"noticetrack/internal/domain/entity"
	"noticetrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler forwards recipient interactions to the record store.
type EventHandler struct {
	activityLogger usecase.ActivityLoggerUsecase
	logger         *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(activityLogger usecase.ActivityLoggerUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		activityLogger: activityLogger,
		logger:         logger,
	}
}

// LogEvent records a recipient interaction. Acknowledgment events surface
// delivery failures; everything else is best-effort.
func (h *EventHandler) LogEvent(c echo.Context) error {
	var event entity.RecipientActivityEvent
	if err := c.Bind(&event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event input")
	}

	if event.IPAddress == "" {
		event.IPAddress = c.RealIP()
	}
	if event.UserAgent == "" {
		event.UserAgent = c.Request().UserAgent()
	}

	if err := h.activityLogger.LogEvent(c.Request().Context(), &event); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{"status": "recorded"})
}
