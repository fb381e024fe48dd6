package main

import (
	"context"
	"log/slog"
	"os"

	"noticetrack/config"
	"noticetrack/internal/delivery"
	"noticetrack/internal/delivery/agent"
	"noticetrack/internal/delivery/agent/handler"
	"noticetrack/internal/domain/service"
	"noticetrack/internal/infra/chain/tron"
	"noticetrack/internal/infra/geo"
	logs "noticetrack/internal/infra/log"
	"noticetrack/internal/infra/notify"
	"noticetrack/internal/infra/state"
	"noticetrack/internal/infra/storeclient"
	"noticetrack/internal/usecase"
	"noticetrack/internal/usecase/impl"

	"go.uber.org/fx"
)

type startAgentParams struct {
	fx.In
	fx.Lifecycle

	Poller     usecase.PollerUsecase
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startAgent,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		notify.Module,
		fx.Provide(
			tron.NewChainReader,
			storeclient.NewRecordStore,
			geo.NewGeolocator,
			newStateStore,
		),
	)
}

// newStateStore creates the notification-state cache with dependency injection
func newStateStore(cfg *config.Config, logger *slog.Logger) (service.NotificationStateStore, error) {
	path := ""
	if cfg.Poller != nil {
		path = cfg.Poller.StatePath
	}

	return state.NewFileStore(path, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFeedService,
			impl.NewPollerService,
			impl.NewActivityLoggerService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFeedHandler,
			handler.NewPollerHandler,
			handler.NewEventHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				agent.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startAgent(ctx context.Context, params startAgentParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			return params.Poller.Start(startCtx)
		},
		OnStop: func(context.Context) error {
			params.Poller.Stop()

			return nil
		},
	})

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
