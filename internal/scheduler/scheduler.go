package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	errs "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/errors"
)

// Refresher - то, что умеет обновить данные (market.Provider)
type Refresher interface {
	Refresh(ctx context.Context) error
}

type Scheduler struct {
	target   Refresher
	interval time.Duration
	backoff  func(retry int) time.Duration
	logger   *slog.Logger
}

// NewScheduler — конструктор планировщика фонового обновления списка монет
func NewScheduler(target Refresher, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Scheduler{
		target:   target,
		interval: interval,
		backoff:  CalculateBackoff,
		logger:   logger,
	}
}

// Start — первое обновление сразу, дальше раз в interval до остановки контекста.
// После ошибки следующая попытка раньше, с экспоненциальной задержкой.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))

	failures := 0
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-timer.C:
			if s.runOnce(ctx) {
				failures = 0
			} else {
				failures++
			}
			timer.Reset(s.nextDelay(failures))
		}
	}
}

func (s *Scheduler) nextDelay(failures int) time.Duration {
	if failures == 0 {
		return s.interval
	}
	return min(s.backoff(failures-1), s.interval)
}

// runOnce — одна итерация; true, если обновление прошло
func (s *Scheduler) runOnce(ctx context.Context) bool {
	s.logger.Debug("tick: running refresh")
	err := s.target.Refresh(ctx)
	switch {
	case err == nil:
		s.logger.Debug("tick: refresh completed")
		return true
	case errors.Is(err, errs.ErrSuperseded):
		// параллельно прошёл ручной refresh
		return true
	case ctx.Err() != nil:
		return true
	default:
		s.logger.Error("tick: refresh failed", slog.Any("err", err))
		return false
	}
}
