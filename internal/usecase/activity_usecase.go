package usecase

import (
	"context"
	"time"

	"noticetrack/internal/domain/entity"
)

// ActivityUsecase defines the record-store side of the recipient audit trail.
type ActivityUsecase interface {
	// RecordEvent appends an activity event and applies its side effect on
	// the notice lifecycle: a view moves the notice to viewed unless the
	// case is already signed, an acknowledgment signs the whole case.
	RecordEvent(ctx context.Context, event *entity.RecipientActivityEvent) (*entity.RecipientActivityEvent, error)

	// AcknowledgeCase transitions a case to the terminal signed status and
	// upserts the corresponding acknowledgment event. The operation is
	// idempotent per (case number, wallet address).
	AcknowledgeCase(ctx context.Context, caseNumber, walletAddress, transactionHash string, signedAt time.Time) error

	// GetCaseAudit retrieves the audit trail for a case in occurrence order.
	GetCaseAudit(ctx context.Context, caseNumber string) ([]*entity.RecipientActivityEvent, error)

	// GetWalletActivity retrieves a wallet's events, newest first.
	GetWalletActivity(ctx context.Context, walletAddress string, limit, offset int) ([]*entity.RecipientActivityEvent, error)
}
