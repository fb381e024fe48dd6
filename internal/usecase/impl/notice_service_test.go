package impl

import (
	"context"
	"testing"
	"time"

	"noticetrack/internal/domain/entity"
	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/domain/repository"
	mockRepo "noticetrack/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNoticeWallet = "TBXSw8fM4jpQkGc6zZjsVABFpVN7UvXPdV"

func TestNoticeService_RegisterNotice_DefaultsApplied(t *testing.T) {
	noticeRepo := mockRepo.NewMockNoticeRepository(t)
	noticeService := NewNoticeService(noticeRepo)
	ctx := context.Background()

	notice := &entity.Notice{
		NoticeID:         12,
		CaseNumber:       "34-9633",
		RecipientAddress: testNoticeWallet,
	}

	noticeRepo.EXPECT().CreateNotice(ctx, notice).Return(nil)

	created, err := noticeService.RegisterNotice(ctx, notice)

	require.NoError(t, err)
	assert.Equal(t, entity.NoticeStatusServed, created.Status)
	assert.Equal(t, uint64(12), created.AlertID)
	assert.False(t, created.ServedAt.IsZero())
}

func TestNoticeService_RegisterNotice_ExplicitFieldsKept(t *testing.T) {
	noticeRepo := mockRepo.NewMockNoticeRepository(t)
	noticeService := NewNoticeService(noticeRepo)
	ctx := context.Background()

	served := time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC)
	notice := &entity.Notice{
		NoticeID: 12,
		AlertID:  12,
		ServedAt: served,
		Status:   entity.NoticeStatusViewed,
	}

	noticeRepo.EXPECT().CreateNotice(ctx, notice).Return(nil)

	created, err := noticeService.RegisterNotice(ctx, notice)

	require.NoError(t, err)
	assert.Equal(t, served, created.ServedAt)
	assert.Equal(t, entity.NoticeStatusViewed, created.Status)
}

func TestNoticeService_RegisterNotice_DuplicateSurfaced(t *testing.T) {
	noticeRepo := mockRepo.NewMockNoticeRepository(t)
	noticeService := NewNoticeService(noticeRepo)
	ctx := context.Background()

	notice := &entity.Notice{NoticeID: 12}

	noticeRepo.EXPECT().
		CreateNotice(ctx, notice).
		Return(domainerrors.ErrNoticeAlreadyExists)

	created, err := noticeService.RegisterNotice(ctx, notice)

	require.Error(t, err)
	assert.Nil(t, created)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOTICE_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestNoticeService_GetNotice(t *testing.T) {
	noticeRepo := mockRepo.NewMockNoticeRepository(t)
	noticeService := NewNoticeService(noticeRepo)
	ctx := context.Background()

	expected := &entity.Notice{NoticeID: 7, CaseNumber: "11-0001"}
	noticeRepo.EXPECT().FindByNoticeID(ctx, uint64(7)).Return(expected, nil)

	got, err := noticeService.GetNotice(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestNoticeService_GetNotice_NotFound(t *testing.T) {
	noticeRepo := mockRepo.NewMockNoticeRepository(t)
	noticeService := NewNoticeService(noticeRepo)
	ctx := context.Background()

	noticeRepo.EXPECT().
		FindByNoticeID(ctx, uint64(404)).
		Return(nil, repository.ErrNoticeNotFound)

	got, err := noticeService.GetNotice(ctx, 404)

	require.ErrorIs(t, err, repository.ErrNoticeNotFound)
	assert.Nil(t, got)
}

func TestNoticeService_ListWalletNotices(t *testing.T) {
	noticeRepo := mockRepo.NewMockNoticeRepository(t)
	noticeService := NewNoticeService(noticeRepo)
	ctx := context.Background()

	expected := []*entity.Notice{{NoticeID: 1}, {NoticeID: 2}}
	noticeRepo.EXPECT().FindByRecipient(ctx, testNoticeWallet).Return(expected, nil)

	got, err := noticeService.ListWalletNotices(ctx, testNoticeWallet)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestNoticeService_ListCaseNotices(t *testing.T) {
	noticeRepo := mockRepo.NewMockNoticeRepository(t)
	noticeService := NewNoticeService(noticeRepo)
	ctx := context.Background()

	expected := []*entity.Notice{{NoticeID: 1, CaseNumber: "34-9633"}}
	noticeRepo.EXPECT().FindByCaseNumber(ctx, "34-9633").Return(expected, nil)

	got, err := noticeService.ListCaseNotices(ctx, "34-9633")

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
