package usecase

import (
	"context"

	"noticetrack/internal/domain/entity"
)

// NoticeUsecase defines the record-store side notice operations.
type NoticeUsecase interface {
	// RegisterNotice records a newly served notice.
	RegisterNotice(ctx context.Context, notice *entity.Notice) (*entity.Notice, error)

	// GetNotice retrieves a notice by its chain token id.
	GetNotice(ctx context.Context, noticeID uint64) (*entity.Notice, error)

	// ListWalletNotices retrieves all notices served to a wallet address.
	ListWalletNotices(ctx context.Context, walletAddress string) ([]*entity.Notice, error)

	// ListCaseNotices retrieves all notices recorded for a case.
	ListCaseNotices(ctx context.Context, caseNumber string) ([]*entity.Notice, error)
}
