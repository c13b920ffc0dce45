package main

import (
	"context"
	"log/slog"
	"os"

	"gather/config"
	"gather/internal/delivery"
	"gather/internal/delivery/http"
	"gather/internal/delivery/http/middleware"
	"gather/internal/delivery/http/router/handler"
	logs "gather/internal/infra/log"
	"gather/internal/infra/refresh"
	"gather/internal/infra/remote"
	"gather/internal/usecase"
	"gather/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			loadSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		remote.NewClient,
		refresh.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			remote.NewUserRepository,
			remote.NewFriendshipRepository,
			remote.NewScheduleRepository,
			remote.NewActivityRepository,
			remote.NewLocationRepository,
			remote.NewParticipantRepository,
			remote.NewAvailabilityRepository,
			remote.NewPreferenceRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCalendarService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewScheduleHandler,
			handler.NewCalendarHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// loadSession performs the initial snapshot load for the configured user.
// The refresh scheduler parameter forces its construction so lifecycle hooks
// are registered even when nothing else depends on it.
func loadSession(ctx context.Context, cfg *config.Config, session usecase.SessionUsecase, logger *slog.Logger, _ *refresh.Scheduler) {
	if cfg.Session.UserID == 0 {
		logger.Warn("No session user configured, skipping initial load")

		return
	}

	go func() {
		if err := session.LoadInitialData(ctx, cfg.Session.UserID); err != nil {
			logger.Error("Initial session load failed",
				slog.Int("userID", cfg.Session.UserID), slog.Any("error", err))
		}
	}()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
