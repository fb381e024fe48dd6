package service

import (
	"context"
	"time"

	"noticetrack/internal/domain/entity"
)

// RecordStore is the backend notice store as consumed by the recipient agent.
// The noticeserver binary implements the other side of this boundary.
type RecordStore interface {
	// GetNoticesForRecipient returns the backend's notices for a wallet,
	// including notices not yet indexed on chain.
	GetNoticesForRecipient(ctx context.Context, address string) ([]*entity.Notice, error)

	// UpsertActivityEvent records a recipient interaction. Acknowledgment
	// events are idempotent per (case number, wallet address).
	UpsertActivityEvent(ctx context.Context, event *entity.RecipientActivityEvent) error

	// MarkAcknowledged transitions a case to the terminal signed status.
	MarkAcknowledged(ctx context.Context, caseNumber, transactionHash string, signedAt time.Time) error
}
