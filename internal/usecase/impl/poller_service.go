package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"noticetrack/config"
	"noticetrack/internal/domain/entity"
	"noticetrack/internal/domain/service"
	"noticetrack/internal/errors"
	"noticetrack/internal/usecase"
)

const (
	defaultPollInterval = 30 * time.Second
	defaultCycleTimeout = 10 * time.Second
)

type pollerService struct {
	feed       usecase.FeedUsecase
	notifier   service.Notifier
	stateStore service.NotificationStateStore
	logger     *slog.Logger

	walletAddress string
	interval      time.Duration
	cycleTimeout  time.Duration

	mu          sync.Mutex
	state       *entity.NotificationState
	pollerState usecase.PollerState
	lastCycleAt time.Time
	lastError   string
	cancel      context.CancelFunc
	done        chan struct{}

	now func() time.Time
}

// NewPollerService creates the notification poller for the configured wallet.
func NewPollerService(
	feed usecase.FeedUsecase,
	notifier service.Notifier,
	stateStore service.NotificationStateStore,
	cfg *config.Config,
	logger *slog.Logger,
) (usecase.PollerUsecase, error) {
	pollerCfg := cfg.Poller
	if pollerCfg == nil || pollerCfg.WalletAddress == "" {
		return nil, errors.New("poller wallet address is not configured")
	}

	interval := pollerCfg.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	cycleTimeout := pollerCfg.CycleTimeout
	if cycleTimeout <= 0 {
		cycleTimeout = defaultCycleTimeout
	}

	snapshot, err := stateStore.Load(pollerCfg.WalletAddress)
	if err != nil {
		return nil, errors.Wrap(err, "load notification state")
	}

	return &pollerService{
		feed:          feed,
		notifier:      notifier,
		stateStore:    stateStore,
		logger:        logger,
		walletAddress: pollerCfg.WalletAddress,
		interval:      interval,
		cycleTimeout:  cycleTimeout,
		state:         snapshot,
		pollerState:   usecase.PollerStateIdle,
		now:           time.Now,
	}, nil
}

// Start launches the poll loop. Starting an already polling poller is a no-op.
func (s *pollerService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pollerState == usecase.PollerStatePolling {
		s.logger.Warn("Poller already polling, ignoring start")

		return nil
	}

	// The loop outlives the caller's context; only Stop ends it.
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.done = make(chan struct{})
	s.pollerState = usecase.PollerStatePolling

	s.logger.Info("Poller started",
		slog.String("wallet_address", s.walletAddress),
		slog.Duration("interval", s.interval),
	)

	go s.loop(loopCtx, s.done)

	return nil
}

// Stop halts the poll loop and blocks until it has exited. Stopping an idle
// poller is a no-op, and concurrent stops are safe.
func (s *pollerService) Stop() {
	s.mu.Lock()
	if s.pollerState != usecase.PollerStatePolling {
		s.mu.Unlock()

		return
	}
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()
	<-done

	s.mu.Lock()
	s.pollerState = usecase.PollerStateIdle
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	s.logger.Info("Poller stopped",
		slog.String("wallet_address", s.walletAddress),
	)
}

func (s *pollerService) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	// First cycle runs immediately so a fresh agent surfaces pending
	// notices without waiting a full interval.
	s.runGuardedCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runGuardedCycle(ctx)
		}
	}
}

func (s *pollerService) runGuardedCycle(ctx context.Context) {
	if err := s.RunCycle(ctx); err != nil {
		s.logger.Warn("Poll cycle failed",
			slog.String("wallet_address", s.walletAddress),
			slog.Any("error", err),
		)
	}
}

// RunCycle executes one poll cycle: fetch the reconciled feed, surface any
// notices not seen before, persist the updated state.
func (s *pollerService) RunCycle(ctx context.Context) error {
	cycleCtx, cancel := context.WithTimeout(ctx, s.cycleTimeout)
	defer cancel()

	feed, err := s.feed.GetRecipientFeed(cycleCtx, s.walletAddress)
	cycleAt := s.now()
	if err != nil {
		s.mu.Lock()
		s.lastCycleAt = cycleAt
		s.lastError = err.Error()
		s.mu.Unlock()

		return err
	}

	s.mu.Lock()

	var fresh []*entity.Notice
	for _, notice := range feed.Notices {
		// Unminted drafts have no token id yet and cannot be tracked.
		if notice.NoticeID == 0 {
			continue
		}
		if s.state.Seen(notice.NoticeID) {
			continue
		}

		s.state.Entries = append(s.state.Entries, entity.NotificationEntry{
			NoticeID:   notice.NoticeID,
			ReceivedAt: cycleAt,
		})
		fresh = append(fresh, notice)
	}

	unread := s.state.UnreadCount()
	snapshot := s.state.Clone()
	s.lastCycleAt = cycleAt
	s.lastError = ""

	s.mu.Unlock()

	if len(fresh) > 0 {
		if err := s.stateStore.Save(snapshot); err != nil {
			s.logger.Warn("Failed to persist notification state",
				slog.Any("error", err),
			)
		}
	}

	for _, notice := range fresh {
		alert := &service.NoticeAlert{
			NoticeID:      notice.NoticeID,
			CaseNumber:    notice.CaseNumber,
			NoticeType:    notice.NoticeType,
			Sender:        notice.Sender,
			IssuingAgency: notice.IssuingAgency,
			UnreadCount:   unread,
		}
		if err := s.notifier.NotifyNewNotice(cycleCtx, alert); err != nil {
			// Delivery is best-effort; the entry stays recorded either way.
			s.logger.Warn("Failed to deliver new-notice alert",
				slog.Uint64("notice_id", notice.NoticeID),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// Status returns a snapshot of the poller state.
func (s *pollerService) Status() *usecase.PollerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &usecase.PollerStatus{
		State:         s.pollerState,
		WalletAddress: s.walletAddress,
		LastCycleAt:   s.lastCycleAt,
		LastError:     s.lastError,
		UnreadCount:   s.state.UnreadCount(),
	}
}

// Notifications returns a snapshot of the surfaced-notice state.
func (s *pollerService) Notifications() *entity.NotificationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// MarkRead marks a surfaced notice as read and persists the change.
func (s *pollerService) MarkRead(noticeID uint64) error {
	s.mu.Lock()

	found := false
	for i := range s.state.Entries {
		if s.state.Entries[i].NoticeID == noticeID {
			s.state.Entries[i].Read = true
			found = true

			break
		}
	}

	if !found {
		s.mu.Unlock()

		return errors.Errorf("notice %d has not been surfaced", noticeID)
	}

	snapshot := s.state.Clone()
	s.mu.Unlock()

	if err := s.stateStore.Save(snapshot); err != nil {
		return errors.Wrap(err, "persist notification state")
	}

	return nil
}
