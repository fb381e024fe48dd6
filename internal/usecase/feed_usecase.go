// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"noticetrack/internal/domain/entity"
)

// NoticeFeed is the reconciled view of a recipient's notices, merging the
// chain and the record store.
type NoticeFeed struct {
	Notices []*entity.Notice `json:"notices"`

	// ChainSkipped counts chain notices that could not be resolved this
	// round; they are expected back on a later read.
	ChainSkipped int `json:"chain_skipped"`

	// DroppedUnkeyable counts records discarded because they carried no
	// usable reconciliation key.
	DroppedUnkeyable int `json:"dropped_unkeyable"`

	// ChainDegraded marks a backend-only view served because the chain
	// was unreachable. StoreDegraded is the mirror case.
	ChainDegraded bool `json:"chain_degraded,omitempty"`
	StoreDegraded bool `json:"store_degraded,omitempty"`
}

// FeedUsecase assembles the merged notice feed for a recipient wallet.
type FeedUsecase interface {
	// GetRecipientFeed fans out to the chain and the record store and
	// reconciles the results. One unreachable source degrades the feed;
	// both unreachable is an error.
	GetRecipientFeed(ctx context.Context, walletAddress string) (*NoticeFeed, error)
}
