package service

import "noticetrack/internal/domain/entity"

// NotificationStateStore persists the poller's surfaced-notice state between
// runs. Losing the snapshot is recoverable: the poller re-surfaces notices,
// the record store's audit trail stays intact.
type NotificationStateStore interface {
	// Load returns the persisted state for the wallet, or a fresh state
	// when no usable snapshot exists.
	Load(walletAddress string) (*entity.NotificationState, error)

	// Save persists the state snapshot.
	Save(state *entity.NotificationState) error
}
