package impl

import (
	"context"
	"time"

	"noticetrack/internal/domain/entity"
	"noticetrack/internal/domain/repository"
	"noticetrack/internal/usecase"
)

type noticeService struct {
	noticeRepo repository.NoticeRepository
}

// NewNoticeService creates a new notice service instance
func NewNoticeService(noticeRepo repository.NoticeRepository) usecase.NoticeUsecase {
	return &noticeService{
		noticeRepo: noticeRepo,
	}
}

// RegisterNotice records a newly served notice.
func (s *noticeService) RegisterNotice(ctx context.Context, notice *entity.Notice) (*entity.Notice, error) {
	if notice.ServedAt.IsZero() {
		notice.ServedAt = time.Now().UTC()
	}
	if notice.Status == "" {
		notice.Status = entity.NoticeStatusServed
	}
	if notice.AlertID == 0 {
		notice.AlertID = notice.NoticeID
	}

	if err := s.noticeRepo.CreateNotice(ctx, notice); err != nil {
		return nil, err
	}

	return notice, nil
}

// GetNotice retrieves a notice by its chain token id.
func (s *noticeService) GetNotice(ctx context.Context, noticeID uint64) (*entity.Notice, error) {
	return s.noticeRepo.FindByNoticeID(ctx, noticeID)
}

// ListWalletNotices retrieves all notices served to a wallet address.
func (s *noticeService) ListWalletNotices(ctx context.Context, walletAddress string) ([]*entity.Notice, error) {
	return s.noticeRepo.FindByRecipient(ctx, walletAddress)
}

// ListCaseNotices retrieves all notices recorded for a case.
func (s *noticeService) ListCaseNotices(ctx context.Context, caseNumber string) ([]*entity.Notice, error) {
	return s.noticeRepo.FindByCaseNumber(ctx, caseNumber)
}
