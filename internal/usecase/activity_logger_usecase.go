package usecase

import (
	"context"

	"noticetrack/internal/domain/entity"
)

// ActivityLoggerUsecase ships recipient interactions to the record store.
// Delivery guarantees differ by event weight: plain events are retried a few
// times and then dropped with a log line, while acknowledgments surface their
// failure to the caller because losing one invalidates the legal audit trail.
type ActivityLoggerUsecase interface {
	// LogEvent records a connection, view or document-action event.
	// Exhausting the retries is not an error for these event types.
	LogEvent(ctx context.Context, event *entity.RecipientActivityEvent) error

	// LogAcknowledgment records a signing event and transitions the case to
	// the terminal signed status in the record store. Failures after the
	// final retry are returned so the caller can retry explicitly.
	LogAcknowledgment(ctx context.Context, event *entity.RecipientActivityEvent) error
}
