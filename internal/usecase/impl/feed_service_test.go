package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"noticetrack/internal/domain/entity"
	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/domain/service"
	mockSvc "noticetrack/internal/mocks/service"
	"noticetrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeedWallet = "TBXSw8fM4jpQkGc6zZjsVABFpVN7UvXPdV"

func createTestFeedService(t *testing.T) (usecase.FeedUsecase, *mockSvc.MockChainReader, *mockSvc.MockRecordStore) {
	chainReader := mockSvc.NewMockChainReader(t)
	recordStore := mockSvc.NewMockRecordStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewFeedService(chainReader, recordStore, logger), chainReader, recordStore
}

func TestFeedService_GetRecipientFeed_MergesBothSources(t *testing.T) {
	feedService, chainReader, recordStore := createTestFeedService(t)
	ctx := context.Background()

	chainReader.EXPECT().BalanceOf(ctx, testFeedWallet).Return(2, nil)
	chainReader.EXPECT().
		ListNoticesForRecipient(ctx, testFeedWallet).
		Return(&service.RecipientNotices{
			Notices: []*entity.Notice{
				{NoticeID: 1, VerifiedOnChain: true},
				{NoticeID: 2, VerifiedOnChain: true},
			},
			Skipped: 1,
		}, nil)
	recordStore.EXPECT().
		GetNoticesForRecipient(ctx, testFeedWallet).
		Return([]*entity.Notice{
			{NoticeID: 1, CaseNumber: "34-9633", Status: entity.NoticeStatusViewed},
		}, nil)

	feed, err := feedService.GetRecipientFeed(ctx, testFeedWallet)

	require.NoError(t, err)
	require.Len(t, feed.Notices, 2)
	assert.Equal(t, 1, feed.ChainSkipped)
	assert.False(t, feed.ChainDegraded)
	assert.False(t, feed.StoreDegraded)

	byID := map[uint64]*entity.Notice{}
	for _, n := range feed.Notices {
		byID[n.NoticeID] = n
	}
	assert.Equal(t, "34-9633", byID[1].CaseNumber)
	assert.False(t, byID[1].FromChainOnly)
	assert.True(t, byID[2].FromChainOnly)
}

func TestFeedService_GetRecipientFeed_ZeroBalanceSkipsListing(t *testing.T) {
	feedService, chainReader, recordStore := createTestFeedService(t)
	ctx := context.Background()

	chainReader.EXPECT().BalanceOf(ctx, testFeedWallet).Return(0, nil)
	recordStore.EXPECT().
		GetNoticesForRecipient(ctx, testFeedWallet).
		Return([]*entity.Notice{
			{CaseNumber: "22-1234", Status: entity.NoticeStatusServed},
		}, nil)

	feed, err := feedService.GetRecipientFeed(ctx, testFeedWallet)

	require.NoError(t, err)
	require.Len(t, feed.Notices, 1)
	assert.Equal(t, "22-1234", feed.Notices[0].CaseNumber)
	chainReader.AssertNotCalled(t, "ListNoticesForRecipient")
}

func TestFeedService_GetRecipientFeed_ChainDegraded(t *testing.T) {
	feedService, chainReader, recordStore := createTestFeedService(t)
	ctx := context.Background()

	chainReader.EXPECT().
		BalanceOf(ctx, testFeedWallet).
		Return(0, domainerrors.ErrChainUnavailable.WrapMessage("node timeout"))
	recordStore.EXPECT().
		GetNoticesForRecipient(ctx, testFeedWallet).
		Return([]*entity.Notice{{NoticeID: 3, CaseNumber: "11-0001"}}, nil)

	feed, err := feedService.GetRecipientFeed(ctx, testFeedWallet)

	require.NoError(t, err)
	assert.True(t, feed.ChainDegraded)
	assert.False(t, feed.StoreDegraded)
	require.Len(t, feed.Notices, 1)
	assert.Equal(t, uint64(3), feed.Notices[0].NoticeID)
}

func TestFeedService_GetRecipientFeed_StoreDegraded(t *testing.T) {
	feedService, chainReader, recordStore := createTestFeedService(t)
	ctx := context.Background()

	chainReader.EXPECT().BalanceOf(ctx, testFeedWallet).Return(1, nil)
	chainReader.EXPECT().
		ListNoticesForRecipient(ctx, testFeedWallet).
		Return(&service.RecipientNotices{
			Notices: []*entity.Notice{{NoticeID: 5, VerifiedOnChain: true}},
		}, nil)
	recordStore.EXPECT().
		GetNoticesForRecipient(ctx, testFeedWallet).
		Return(nil, domainerrors.ErrStoreUnavailable.WrapMessage("backend down"))

	feed, err := feedService.GetRecipientFeed(ctx, testFeedWallet)

	require.NoError(t, err)
	assert.True(t, feed.StoreDegraded)
	assert.False(t, feed.ChainDegraded)
	require.Len(t, feed.Notices, 1)
	assert.True(t, feed.Notices[0].FromChainOnly)
}

func TestFeedService_GetRecipientFeed_BothSourcesUnreachable(t *testing.T) {
	feedService, chainReader, recordStore := createTestFeedService(t)
	ctx := context.Background()

	chainErr := domainerrors.ErrChainUnavailable.WrapMessage("node down")
	chainReader.EXPECT().BalanceOf(ctx, testFeedWallet).Return(0, chainErr)
	recordStore.EXPECT().
		GetNoticesForRecipient(ctx, testFeedWallet).
		Return(nil, errors.New("connection refused"))

	feed, err := feedService.GetRecipientFeed(ctx, testFeedWallet)

	require.Error(t, err)
	assert.Nil(t, feed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CHAIN_UNAVAILABLE", appErr.ErrorCode())
}

func TestFeedService_GetRecipientFeed_InvalidAddressNeverDegrades(t *testing.T) {
	feedService, chainReader, recordStore := createTestFeedService(t)
	ctx := context.Background()

	chainReader.EXPECT().
		BalanceOf(ctx, "not-an-address").
		Return(0, domainerrors.ErrInvalidAddress.WrapMessage("not-an-address"))
	recordStore.EXPECT().
		GetNoticesForRecipient(ctx, "not-an-address").
		Return([]*entity.Notice{}, nil)

	feed, err := feedService.GetRecipientFeed(ctx, "not-an-address")

	require.Error(t, err)
	assert.Nil(t, feed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_ADDRESS", appErr.ErrorCode())
}

func TestFeedService_GetRecipientFeed_UnkeyableStoreRecordsCounted(t *testing.T) {
	feedService, chainReader, recordStore := createTestFeedService(t)
	ctx := context.Background()

	chainReader.EXPECT().BalanceOf(ctx, testFeedWallet).Return(0, nil)
	recordStore.EXPECT().
		GetNoticesForRecipient(ctx, testFeedWallet).
		Return([]*entity.Notice{
			{NoticeID: 8},
			{Status: entity.NoticeStatusServed},
		}, nil)

	feed, err := feedService.GetRecipientFeed(ctx, testFeedWallet)

	require.NoError(t, err)
	assert.Len(t, feed.Notices, 1)
	assert.Equal(t, 1, feed.DroppedUnkeyable)
}
