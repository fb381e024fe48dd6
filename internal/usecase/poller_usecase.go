package usecase

import (
	"context"
	"time"

	"noticetrack/internal/domain/entity"
)

// PollerState names the two states of the notification poller.
type PollerState string

const (
	PollerStateIdle    PollerState = "idle"
	PollerStatePolling PollerState = "polling"
)

// PollerStatus is a point-in-time snapshot of the poller.
type PollerStatus struct {
	State         PollerState `json:"state"`
	WalletAddress string      `json:"wallet_address"`
	LastCycleAt   time.Time   `json:"last_cycle_at,omitzero"`
	LastError     string      `json:"last_error,omitempty"`
	UnreadCount   int         `json:"unread_count"`
}

// PollerUsecase runs the background notification poller for a recipient
// wallet and owns the local notification state.
type PollerUsecase interface {
	// Start transitions the poller from idle to polling and launches the
	// poll loop. Starting an already polling poller is a no-op.
	Start(ctx context.Context) error

	// Stop transitions the poller back to idle. It blocks until the loop
	// has exited and is safe to call repeatedly.
	Stop()

	// RunCycle executes a single poll cycle immediately.
	RunCycle(ctx context.Context) error

	// Status returns a snapshot of the poller state.
	Status() *PollerStatus

	// Notifications returns a snapshot of the surfaced-notice state.
	Notifications() *entity.NotificationState

	// MarkRead marks a surfaced notice as read.
	MarkRead(noticeID uint64) error
}
