// Package notify implements the recipient-facing notifier providers.
package notify

import (
	"context"
	"log/slog"

	"noticetrack/config"
	"noticetrack/internal/domain/constants"
	"noticetrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopNotifier is a no-op implementation when notifications are disabled
type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) NotifyNewNotice(_ context.Context, alert *service.NoticeAlert) error {
	n.logger.Debug("[NoopNotifier] Notifications disabled, skipping",
		slog.Uint64("notice_id", alert.NoticeID),
	)

	return nil
}

func (n *noopNotifier) Close() error {
	return nil
}

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates a Notifier based on configuration
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Notifier
	logger := params.Logger

	// If no notifier is configured, return a no-op notifier
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Notifier not configured, using no-op notifier")

		return &noopNotifier{logger: logger}, nil
	}

	var notifier service.Notifier

	switch cfg.Provider {
	case constants.NotifierProviderWebhook:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for webhook provider")
		}
		logger.Info("Using webhook notifier",
			slog.String("endpoint", cfg.Endpoint),
		)

		notifier = NewWebhookNotifier(cfg.Endpoint, logger)

	case constants.NotifierProviderCommand:
		if cfg.Command == "" {
			return nil, errors.New("command is required for command provider")
		}
		logger.Info("Using command notifier",
			slog.String("command", cfg.Command),
		)

		notifier = NewCommandNotifier(cfg.Command, logger)

	case constants.NotifierProviderNoop:
		notifier = &noopNotifier{logger: logger}

	default:
		return nil, errors.Errorf("unknown notifier provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close notifier on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing Notifier")

			return notifier.Close()
		},
	})

	return notifier, nil
}

// Module provides the notifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
