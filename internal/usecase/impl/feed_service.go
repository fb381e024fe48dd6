package impl

import (
	"context"
	"log/slog"
	"sync"

	"noticetrack/internal/domain/entity"
	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/domain/service"
	"noticetrack/internal/errors"
	"noticetrack/internal/usecase"
)

type feedService struct {
	chainReader service.ChainReader
	recordStore service.RecordStore
	logger      *slog.Logger
}

// NewFeedService creates a new feed service instance
func NewFeedService(
	chainReader service.ChainReader,
	recordStore service.RecordStore,
	logger *slog.Logger,
) usecase.FeedUsecase {
	return &feedService{
		chainReader: chainReader,
		recordStore: recordStore,
		logger:      logger,
	}
}

// GetRecipientFeed fans out to the chain and the record store concurrently
// and reconciles the two views. When one source is unreachable the feed
// degrades to the other; both unreachable is an error.
func (s *feedService) GetRecipientFeed(ctx context.Context, walletAddress string) (*usecase.NoticeFeed, error) {
	var (
		wg sync.WaitGroup

		chainResult *service.RecipientNotices
		chainErr    error

		storeNotices []*entity.Notice
		storeErr     error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		chainResult, chainErr = s.fetchChainNotices(ctx, walletAddress)
	}()

	go func() {
		defer wg.Done()
		storeNotices, storeErr = s.recordStore.GetNoticesForRecipient(ctx, walletAddress)
	}()

	wg.Wait()

	// Input validation failures are never degradable.
	if chainErr != nil {
		var appErr domainerrors.AppError
		if errors.As(chainErr, &appErr) && appErr.ErrorCode() == domainerrors.ErrInvalidAddress.ErrorCode() {
			return nil, chainErr
		}
	}

	if chainErr != nil && storeErr != nil {
		s.logger.Error("Both notice sources unreachable",
			slog.String("wallet_address", walletAddress),
			slog.Any("chain_error", chainErr),
			slog.Any("store_error", storeErr),
		)

		return nil, chainErr
	}

	feed := &usecase.NoticeFeed{}

	var chainNotices []*entity.Notice
	if chainErr != nil {
		s.logger.Warn("Chain unreachable, serving store-only feed",
			slog.String("wallet_address", walletAddress),
			slog.Any("error", chainErr),
		)
		feed.ChainDegraded = true
	} else {
		chainNotices = chainResult.Notices
		feed.ChainSkipped = chainResult.Skipped
	}

	if storeErr != nil {
		s.logger.Warn("Record store unreachable, serving chain-only feed",
			slog.String("wallet_address", walletAddress),
			slog.Any("error", storeErr),
		)
		feed.StoreDegraded = true
		storeNotices = nil
	}

	feed.Notices, feed.DroppedUnkeyable = Reconcile(chainNotices, storeNotices)

	return feed, nil
}

// fetchChainNotices lists the wallet's chain notices behind a cheap balance
// gate: a wallet holding no notice tokens skips the index walk entirely.
func (s *feedService) fetchChainNotices(ctx context.Context, walletAddress string) (*service.RecipientNotices, error) {
	balance, err := s.chainReader.BalanceOf(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	if balance == 0 {
		return &service.RecipientNotices{}, nil
	}

	return s.chainReader.ListNoticesForRecipient(ctx, walletAddress)
}
