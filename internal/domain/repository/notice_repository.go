// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"noticetrack/internal/domain/entity"
)

// Domain-specific errors for notice persistence.
var (
	// ErrNoticeNotFound is returned when a notice is not found.
	ErrNoticeNotFound = errors.New("notice not found")
	// ErrCaseNotFound is returned when no notice exists for a case number.
	ErrCaseNotFound = errors.New("case not found")
)

// NoticeRepository defines the interface for served-notice database operations.
type NoticeRepository interface {
	// CreateNotice persists a newly served notice record.
	CreateNotice(ctx context.Context, notice *entity.Notice) error

	// FindByNoticeID retrieves a notice by its chain token id.
	FindByNoticeID(ctx context.Context, noticeID uint64) (*entity.Notice, error)

	// FindByRecipient retrieves all notices served to a wallet address,
	// most recently served first.
	FindByRecipient(ctx context.Context, recipientAddress string) ([]*entity.Notice, error)

	// FindByCaseNumber retrieves all notices recorded for a case.
	FindByCaseNumber(ctx context.Context, caseNumber string) ([]*entity.Notice, error)

	// MarkViewed moves a notice to the viewed status unless the case has
	// already reached the terminal signed status.
	MarkViewed(ctx context.Context, noticeID uint64, viewedAt time.Time) error

	// MarkCaseSigned transitions every notice of a case to the terminal
	// signed status and stamps the acknowledgment time.
	MarkCaseSigned(ctx context.Context, caseNumber string, signedAt time.Time) error
}
