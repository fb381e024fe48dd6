package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"noticetrack/internal/domain/entity"
	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/domain/repository"
	mockRepo "noticetrack/internal/mocks/repository"
	mockSvc "noticetrack/internal/mocks/service"
	"noticetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testActivityWallet = "TBXSw8fM4jpQkGc6zZjsVABFpVN7UvXPdV"

type activityServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	noticeRepo   *mockRepo.MockNoticeRepository
	activityRepo *mockRepo.MockActivityRepository
	geolocator   *mockSvc.MockGeolocator
}

func createTestActivityService(t *testing.T) (usecase.ActivityUsecase, *activityServiceMocks) {
	m := &activityServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		noticeRepo:   mockRepo.NewMockNoticeRepository(t),
		activityRepo: mockRepo.NewMockActivityRepository(t),
		geolocator:   mockSvc.NewMockGeolocator(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	activityService := NewActivityService(m.txManager, m.activityRepo, m.geolocator, logger)

	return activityService, m
}

// expectTransaction makes the transaction manager run the given function
// against the mocked repository factory.
func (m *activityServiceMocks) expectTransaction() {
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func TestActivityService_RecordEvent_Connection(t *testing.T) {
	activityService, m := createTestActivityService(t)
	ctx := context.Background()

	event := &entity.RecipientActivityEvent{
		WalletAddress: testActivityWallet,
		EventType:     entity.ActivityConnection,
	}

	m.expectTransaction()
	m.factory.EXPECT().NewActivityRepository().Return(m.activityRepo)
	m.activityRepo.EXPECT().CreateEvent(ctx, event).Return(nil)

	recorded, err := activityService.RecordEvent(ctx, event)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, recorded.ID)
	assert.False(t, recorded.OccurredAt.IsZero())
}

func TestActivityService_RecordEvent_InvalidType(t *testing.T) {
	activityService, _ := createTestActivityService(t)

	recorded, err := activityService.RecordEvent(context.Background(), &entity.RecipientActivityEvent{
		EventType: "hover",
	})

	require.Error(t, err)
	assert.Nil(t, recorded)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_EVENT_TYPE", appErr.ErrorCode())
}

func TestActivityService_RecordEvent_ViewMarksNotice(t *testing.T) {
	activityService, m := createTestActivityService(t)
	ctx := context.Background()

	occurredAt := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	event := &entity.RecipientActivityEvent{
		WalletAddress: testActivityWallet,
		EventType:     entity.ActivityView,
		NoticeID:      7,
		OccurredAt:    occurredAt,
	}

	m.expectTransaction()
	m.factory.EXPECT().NewActivityRepository().Return(m.activityRepo)
	m.factory.EXPECT().NewNoticeRepository().Return(m.noticeRepo)
	m.activityRepo.EXPECT().CreateEvent(ctx, event).Return(nil)
	m.noticeRepo.EXPECT().MarkViewed(ctx, uint64(7), occurredAt).Return(nil)

	_, err := activityService.RecordEvent(ctx, event)

	require.NoError(t, err)
}

func TestActivityService_RecordEvent_ViewOfChainOnlyNoticeTolerated(t *testing.T) {
	activityService, m := createTestActivityService(t)
	ctx := context.Background()

	event := &entity.RecipientActivityEvent{
		WalletAddress: testActivityWallet,
		EventType:     entity.ActivityView,
		NoticeID:      99,
	}

	m.expectTransaction()
	m.factory.EXPECT().NewActivityRepository().Return(m.activityRepo)
	m.factory.EXPECT().NewNoticeRepository().Return(m.noticeRepo)
	m.activityRepo.EXPECT().CreateEvent(ctx, event).Return(nil)
	m.noticeRepo.EXPECT().
		MarkViewed(ctx, uint64(99), mock.Anything).
		Return(repository.ErrNoticeNotFound)

	// The event still lands; the notice just is not in the store yet.
	_, err := activityService.RecordEvent(ctx, event)

	require.NoError(t, err)
}

func TestActivityService_RecordEvent_ViewUpdateFailureRollsBack(t *testing.T) {
	activityService, m := createTestActivityService(t)
	ctx := context.Background()

	event := &entity.RecipientActivityEvent{
		WalletAddress: testActivityWallet,
		EventType:     entity.ActivityView,
		NoticeID:      7,
	}

	m.expectTransaction()
	m.factory.EXPECT().NewActivityRepository().Return(m.activityRepo)
	m.factory.EXPECT().NewNoticeRepository().Return(m.noticeRepo)
	m.activityRepo.EXPECT().CreateEvent(ctx, event).Return(nil)
	m.noticeRepo.EXPECT().
		MarkViewed(ctx, uint64(7), mock.Anything).
		Return(errors.New("deadlock detected"))

	_, err := activityService.RecordEvent(ctx, event)

	require.Error(t, err)
}

func TestActivityService_RecordEvent_AcknowledgmentSignsCase(t *testing.T) {
	activityService, m := createTestActivityService(t)
	ctx := context.Background()

	occurredAt := time.Date(2026, 3, 6, 15, 30, 0, 0, time.UTC)
	event := &entity.RecipientActivityEvent{
		WalletAddress:   testActivityWallet,
		EventType:       entity.ActivityAcknowledgment,
		CaseNumber:      "34-9633",
		TransactionHash: "0xdeadbeef",
		OccurredAt:      occurredAt,
	}

	m.expectTransaction()
	m.factory.EXPECT().NewActivityRepository().Return(m.activityRepo)
	m.factory.EXPECT().NewNoticeRepository().Return(m.noticeRepo)
	m.noticeRepo.EXPECT().MarkCaseSigned(mock.Anything, "34-9633", occurredAt).Return(nil)
	m.activityRepo.EXPECT().
		UpsertAcknowledgment(mock.Anything, mock.MatchedBy(func(e *entity.RecipientActivityEvent) bool {
			return e.CaseNumber == "34-9633" &&
				e.WalletAddress == testActivityWallet &&
				e.EventType == entity.ActivityAcknowledgment &&
				e.TransactionHash == "0xdeadbeef"
		})).
		Return(nil)

	_, err := activityService.RecordEvent(ctx, event)

	require.NoError(t, err)
}

func TestActivityService_RecordEvent_GeolocationEnrichment(t *testing.T) {
	activityService, m := createTestActivityService(t)
	ctx := context.Background()

	event := &entity.RecipientActivityEvent{
		WalletAddress: testActivityWallet,
		EventType:     entity.ActivityConnection,
		IPAddress:     "198.51.100.23",
	}

	m.geolocator.EXPECT().
		Resolve(ctx, "198.51.100.23").
		Return(&entity.GeoLocation{Country: "United States", Region: "Texas"}, nil)
	m.expectTransaction()
	m.factory.EXPECT().NewActivityRepository().Return(m.activityRepo)
	m.activityRepo.EXPECT().CreateEvent(ctx, event).Return(nil)

	recorded, err := activityService.RecordEvent(ctx, event)

	require.NoError(t, err)
	require.NotNil(t, recorded.Location)
	assert.Equal(t, "Texas", recorded.Location.Region)
}

func TestActivityService_RecordEvent_GeolocationFailureTolerated(t *testing.T) {
	activityService, m := createTestActivityService(t)
	ctx := context.Background()

	event := &entity.RecipientActivityEvent{
		WalletAddress: testActivityWallet,
		EventType:     entity.ActivityConnection,
		IPAddress:     "198.51.100.23",
	}

	m.geolocator.EXPECT().
		Resolve(ctx, "198.51.100.23").
		Return(nil, errors.New("lookup timeout"))
	m.expectTransaction()
	m.factory.EXPECT().NewActivityRepository().Return(m.activityRepo)
	m.activityRepo.EXPECT().CreateEvent(ctx, event).Return(nil)

	recorded, err := activityService.RecordEvent(ctx, event)

	require.NoError(t, err)
	assert.Nil(t, recorded.Location)
}

func TestActivityService_AcknowledgeCase_RequiresCaseNumber(t *testing.T) {
	activityService, _ := createTestActivityService(t)

	err := activityService.AcknowledgeCase(context.Background(), "", testActivityWallet, "0xabc", time.Now())

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CASE_NOT_FOUND", appErr.ErrorCode())
}

func TestActivityService_AcknowledgeCase_UnknownCase(t *testing.T) {
	activityService, m := createTestActivityService(t)
	ctx := context.Background()

	m.expectTransaction()
	m.factory.EXPECT().NewNoticeRepository().Return(m.noticeRepo)
	m.noticeRepo.EXPECT().
		MarkCaseSigned(mock.Anything, "99-0000", mock.Anything).
		Return(repository.ErrCaseNotFound)

	err := activityService.AcknowledgeCase(ctx, "99-0000", testActivityWallet, "", time.Now())

	require.ErrorIs(t, err, repository.ErrCaseNotFound)
}

func TestActivityService_GetCaseAudit(t *testing.T) {
	activityService, m := createTestActivityService(t)
	ctx := context.Background()

	expected := []*entity.RecipientActivityEvent{
		{ID: uuid.New(), CaseNumber: "34-9633", EventType: entity.ActivityView},
	}
	m.activityRepo.EXPECT().FindByCase(ctx, "34-9633").Return(expected, nil)

	got, err := activityService.GetCaseAudit(ctx, "34-9633")

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestActivityService_GetWalletActivity(t *testing.T) {
	activityService, m := createTestActivityService(t)
	ctx := context.Background()

	expected := []*entity.RecipientActivityEvent{
		{ID: uuid.New(), WalletAddress: testActivityWallet},
	}
	m.activityRepo.EXPECT().
		FindByWallet(ctx, testActivityWallet, 20, 0).
		Return(expected, nil)

	got, err := activityService.GetWalletActivity(ctx, testActivityWallet, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
