// Package service defines interfaces for infrastructure collaborators
// consumed by the use case layer.
package service

import (
	"context"

	"noticetrack/internal/domain/entity"
)

// RecipientNotices is the result of a per-recipient chain read. Skipped
// counts entries that failed to resolve individually; one bad token id must
// not blank the whole list.
type RecipientNotices struct {
	Notices []*entity.Notice
	Skipped int
}

// ChainReader exposes read-only access to the notice contract. Implementations
// must validate addresses before any I/O and normalize every numeric field to
// a fixed-width integer before returning, since sibling components serialize
// notices to JSON.
type ChainReader interface {
	// ListNoticesForRecipient resolves all notices served to the address.
	// The per-recipient index mapping is walked first; owned-token
	// enumeration is the bounded fallback when the index yields nothing.
	ListNoticesForRecipient(ctx context.Context, address string) (*RecipientNotices, error)

	// GetNotice resolves a single notice by token id, including its paired
	// companion id when available.
	GetNotice(ctx context.Context, noticeID uint64) (*entity.Notice, error)

	// BalanceOf returns the number of notice tokens held by the address.
	// Used to confirm an address is a recipient before polling it.
	BalanceOf(ctx context.Context, address string) (int64, error)
}
