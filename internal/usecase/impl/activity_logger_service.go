package impl

import (
	"context"
	"log/slog"
	"time"

	"noticetrack/internal/domain/entity"
	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/domain/service"
	"noticetrack/internal/usecase"

	"github.com/google/uuid"
)

const (
	activityLogAttempts = 3
	activityLogBackoff  = 500 * time.Millisecond
)

type activityLoggerService struct {
	recordStore service.RecordStore
	geolocator  service.Geolocator
	logger      *slog.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

// NewActivityLoggerService creates the agent-side activity logger.
func NewActivityLoggerService(
	recordStore service.RecordStore,
	geolocator service.Geolocator,
	logger *slog.Logger,
) usecase.ActivityLoggerUsecase {
	return &activityLoggerService{
		recordStore: recordStore,
		geolocator:  geolocator,
		logger:      logger,
		sleep:       sleepContext,
	}
}

// LogEvent records a connection, view or document-action event. The event is
// retried a bounded number of times; exhausting the retries drops the event
// with a log line rather than failing the recipient's action.
func (s *activityLoggerService) LogEvent(ctx context.Context, event *entity.RecipientActivityEvent) error {
	if !event.EventType.Valid() {
		return domainerrors.ErrInvalidEventType.WrapMessage(string(event.EventType))
	}
	if event.EventType == entity.ActivityAcknowledgment {
		return s.LogAcknowledgment(ctx, event)
	}

	s.prepare(event)

	if err := s.upsertWithRetry(ctx, event); err != nil {
		s.logger.Warn("Dropping activity event after retries",
			slog.String("event_type", string(event.EventType)),
			slog.String("case_number", event.CaseNumber),
			slog.Any("error", err),
		)
	}

	return nil
}

// LogAcknowledgment records a signing event and transitions the case to the
// terminal signed status. A failure here is surfaced: the acknowledgment is
// the legally meaningful part of the audit trail.
func (s *activityLoggerService) LogAcknowledgment(ctx context.Context, event *entity.RecipientActivityEvent) error {
	event.EventType = entity.ActivityAcknowledgment
	s.prepare(event)

	if err := s.upsertWithRetry(ctx, event); err != nil {
		return domainerrors.ErrAcknowledgmentFailed.WrapMessage(err.Error())
	}

	if event.CaseNumber != "" {
		err := s.retry(ctx, func(ctx context.Context) error {
			return s.recordStore.MarkAcknowledged(ctx, event.CaseNumber, event.TransactionHash, event.OccurredAt)
		})
		if err != nil {
			return domainerrors.ErrAcknowledgmentFailed.WrapMessage(err.Error())
		}
	}

	return nil
}

// prepare fills in generated fields and best-effort enrichment.
func (s *activityLoggerService) prepare(event *entity.RecipientActivityEvent) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if event.Location == nil && event.IPAddress != "" {
		lookupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		location, err := s.geolocator.Resolve(lookupCtx, event.IPAddress)
		if err != nil {
			s.logger.Debug("Geolocation lookup failed",
				slog.String("ip_address", event.IPAddress),
				slog.Any("error", err),
			)

			return
		}
		event.Location = location
	}
}

func (s *activityLoggerService) upsertWithRetry(ctx context.Context, event *entity.RecipientActivityEvent) error {
	return s.retry(ctx, func(ctx context.Context) error {
		return s.recordStore.UpsertActivityEvent(ctx, event)
	})
}

func (s *activityLoggerService) retry(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= activityLogAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt < activityLogAttempts {
			backoff := activityLogBackoff * time.Duration(attempt)
			if err := s.sleep(ctx, backoff); err != nil {
				return lastErr
			}
		}
	}

	return lastErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
