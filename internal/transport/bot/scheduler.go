package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/interfaces"
)

// scheduler — раз в period отправляет сводки чатам, у которых подошёл интервал
type scheduler struct {
	svc    interfaces.SubscriptionDispatcher
	period time.Duration
	logger *slog.Logger
}

func newScheduler(svc interfaces.SubscriptionDispatcher, period time.Duration, logger *slog.Logger) *scheduler {
	if period <= 0 {
		period = time.Minute
	}
	return &scheduler{svc: svc, period: period, logger: logger}
}

func (s *scheduler) run(ctx context.Context) {
	s.logger.Info("autoupdate dispatcher started", slog.Duration("period", s.period))
	t := time.NewTicker(s.period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("autoupdate dispatcher stopped")
			return
		case <-t.C:
			s.tick(ctx)
		}
	}
}

func (s *scheduler) tick(ctx context.Context) {
	started := time.Now()
	sent, err := s.svc.DispatchDue(ctx)
	if err != nil {
		s.logger.Error("autoupdate: dispatch failed", slog.String("err", err.Error()))
		return
	}
	if sent > 0 {
		s.logger.Info("autoupdate: dispatch completed",
			slog.Int("sent", sent),
			slog.Duration("duration", time.Since(started)))
	}
}
