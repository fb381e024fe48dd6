package impl

import (
	"context"
	"log/slog"
	"time"

	"noticetrack/internal/domain/entity"
	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/domain/repository"
	"noticetrack/internal/domain/service"
	"noticetrack/internal/errors"
	"noticetrack/internal/usecase"

	"github.com/google/uuid"
)

type activityService struct {
	txManager    repository.TransactionManager
	activityRepo repository.ActivityRepository
	geolocator   service.Geolocator
	logger       *slog.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(
	txManager repository.TransactionManager,
	activityRepo repository.ActivityRepository,
	geolocator service.Geolocator,
	logger *slog.Logger,
) usecase.ActivityUsecase {
	return &activityService{
		txManager:    txManager,
		activityRepo: activityRepo,
		geolocator:   geolocator,
		logger:       logger,
	}
}

// RecordEvent appends an activity event and applies its side effect on the
// notice lifecycle inside a single transaction.
func (s *activityService) RecordEvent(ctx context.Context, event *entity.RecipientActivityEvent) (*entity.RecipientActivityEvent, error) {
	if !event.EventType.Valid() {
		return nil, domainerrors.ErrInvalidEventType.WrapMessage(string(event.EventType))
	}

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	s.enrichLocation(ctx, event)

	if event.EventType == entity.ActivityAcknowledgment {
		if err := s.AcknowledgeCase(ctx, event.CaseNumber, event.WalletAddress, event.TransactionHash, event.OccurredAt); err != nil {
			return nil, err
		}

		return event, nil
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewActivityRepository().CreateEvent(ctx, event); err != nil {
			return err
		}

		if event.EventType == entity.ActivityView && event.NoticeID != 0 {
			err := factory.NewNoticeRepository().MarkViewed(ctx, event.NoticeID, event.OccurredAt)
			if err != nil {
				if errors.Is(err, repository.ErrNoticeNotFound) {
					// The viewed notice may be chain-only; the event alone
					// still extends the audit trail.
					s.logger.Debug("View recorded for a notice the store has not seen",
						slog.Uint64("notice_id", event.NoticeID),
					)

					return nil
				}

				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

// AcknowledgeCase transitions a case to the terminal signed status and
// upserts the corresponding acknowledgment event atomically. Re-acknowledging
// an already signed case updates the existing event, never duplicates it.
func (s *activityService) AcknowledgeCase(ctx context.Context, caseNumber, walletAddress, transactionHash string, signedAt time.Time) error {
	if caseNumber == "" {
		return domainerrors.ErrCaseNotFound.WrapMessage("case number is required")
	}

	event := &entity.RecipientActivityEvent{
		ID:              uuid.New(),
		CaseNumber:      caseNumber,
		WalletAddress:   walletAddress,
		EventType:       entity.ActivityAcknowledgment,
		OccurredAt:      signedAt,
		TransactionHash: transactionHash,
	}

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewNoticeRepository().MarkCaseSigned(ctx, caseNumber, signedAt); err != nil {
			return err
		}

		return factory.NewActivityRepository().UpsertAcknowledgment(ctx, event)
	})
}

// GetCaseAudit retrieves the audit trail for a case in occurrence order.
func (s *activityService) GetCaseAudit(ctx context.Context, caseNumber string) ([]*entity.RecipientActivityEvent, error) {
	return s.activityRepo.FindByCase(ctx, caseNumber)
}

// GetWalletActivity retrieves a wallet's events, newest first.
func (s *activityService) GetWalletActivity(ctx context.Context, walletAddress string, limit, offset int) ([]*entity.RecipientActivityEvent, error) {
	return s.activityRepo.FindByWallet(ctx, walletAddress, limit, offset)
}

// enrichLocation attaches a best-effort geolocation to the event.
func (s *activityService) enrichLocation(ctx context.Context, event *entity.RecipientActivityEvent) {
	if event.Location != nil || event.IPAddress == "" {
		return
	}

	location, err := s.geolocator.Resolve(ctx, event.IPAddress)
	if err != nil {
		s.logger.Debug("Geolocation lookup failed",
			slog.String("ip_address", event.IPAddress),
			slog.Any("error", err),
		)

		return
	}

	event.Location = location
}
