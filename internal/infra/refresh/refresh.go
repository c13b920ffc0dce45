// Package refresh periodically re-runs the session load so the snapshot
// tracks the remote service between user actions.
package refresh

import (
	"context"
	"log/slog"

	"gather/config"
	"gather/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Scheduler drives background snapshot refreshes on a cron spec.
type Scheduler struct {
	cron    *cron.Cron
	session usecase.SessionUsecase
	logger  *slog.Logger
	spec    string
}

// Params holds dependencies for the Scheduler, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Session usecase.SessionUsecase
	Logger  *slog.Logger
}

// New builds the refresh scheduler and hooks it into the application
// lifecycle. An empty refresh spec disables background refresh entirely.
func New(params Params) (*Scheduler, error) {
	scheduler := &Scheduler{
		cron:    cron.New(),
		session: params.Session,
		logger:  params.Logger,
		spec:    params.Config.Session.RefreshSpec,
	}

	if scheduler.spec != "" {
		if _, err := scheduler.cron.AddFunc(scheduler.spec, scheduler.refresh); err != nil {
			return nil, errors.Wrapf(err, "invalid refresh spec %q", scheduler.spec)
		}
	}

	params.Append(fx.Hook{
		OnStart: scheduler.start,
		OnStop:  scheduler.stop,
	})

	return scheduler, nil
}

func (s *Scheduler) start(ctx context.Context) error {
	if s.spec == "" {
		s.logger.Info("Background refresh disabled")

		return nil
	}

	s.logger.Info("Starting background refresh", slog.String("spec", s.spec))
	s.cron.Start()

	return nil
}

func (s *Scheduler) stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}

	return nil
}

func (s *Scheduler) refresh() {
	ctx := context.Background()
	if err := s.session.Reload(ctx); err != nil {
		s.logger.Warn("Background refresh failed", slog.Any("error", err))
	}
}
