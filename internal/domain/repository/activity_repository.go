package repository

import (
	"context"
	"errors"

	"noticetrack/internal/domain/entity"
)

// ErrActivityEventNotFound is returned when an activity event is not found.
var ErrActivityEventNotFound = errors.New("activity event not found")

// ActivityRepository defines the interface for the recipient audit trail.
type ActivityRepository interface {
	// CreateEvent appends an activity event to the audit trail.
	CreateEvent(ctx context.Context, event *entity.RecipientActivityEvent) error

	// UpsertAcknowledgment records an acknowledgment event. Acknowledgments
	// are idempotent per (case number, wallet address): a second call
	// updates the timestamp, signature and transaction hash of the existing
	// logical record instead of creating a duplicate.
	UpsertAcknowledgment(ctx context.Context, event *entity.RecipientActivityEvent) error

	// FindByCase retrieves the audit trail for a case in occurrence order.
	FindByCase(ctx context.Context, caseNumber string) ([]*entity.RecipientActivityEvent, error)

	// FindByWallet retrieves a wallet's events, newest first, with pagination.
	FindByWallet(ctx context.Context, walletAddress string, limit, offset int) ([]*entity.RecipientActivityEvent, error)
}
