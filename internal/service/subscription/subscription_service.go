package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/interfaces"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pipeline"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pkg/botfmt"
)

// DigestSize - сколько монет попадает в одно сообщение рассылки
const DigestSize = 10

var ErrInvalidInterval = errors.New("interval must be > 0")

type Service struct {
	repo     interfaces.Subscriptions
	market   interfaces.MarketReader
	notifier interfaces.Notifier
	log      *slog.Logger
	now      func() time.Time
}

func New(repo interfaces.Subscriptions, market interfaces.MarketReader, notifier interfaces.Notifier, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		market:   market,
		notifier: notifier,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Enable включает авторассылку для чата.
// Идемпотентна: повторный вызов с теми же параметрами безопасен.
func (s *Service) Enable(ctx context.Context, chatID int64, intervalMinutes int, movement string) error {
	if intervalMinutes <= 0 {
		return ErrInvalidInterval
	}
	m, err := pipeline.ParseMovement(movement)
	if err != nil {
		return err
	}
	if err := s.repo.MarkEnabled(ctx, chatID, intervalMinutes, string(m)); err != nil {
		s.log.Error("subscriptions.enable failed",
			slog.Int64("chat_id", chatID),
			slog.Int("interval_min", intervalMinutes),
			slog.String("err", err.Error()))
		return err
	}
	s.log.Info("subscriptions.enable ok",
		slog.Int64("chat_id", chatID),
		slog.Int("interval_min", intervalMinutes),
		slog.String("movement", string(m)))
	return nil
}

// Disable отключает авторассылку для чата.
func (s *Service) Disable(ctx context.Context, chatID int64) error {
	if err := s.repo.MarkDisabled(ctx, chatID); err != nil {
		s.log.Error("subscriptions.disable failed",
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()))
		return err
	}
	s.log.Info("subscriptions.disable ok", slog.Int64("chat_id", chatID))
	return nil
}

// DispatchDue выполняет одну итерацию авторассылки:
//  1. Находит подписки, у которых истёк интервал (due).
//  2. Берёт текущий список монет у провайдера (без запроса к API).
//  3. Для каждой подписки строит страницу со своим фильтром.
//  4. Отправляет сообщение и отмечает отправку.
//
// Возвращает количество успешно отправленных сообщений.
func (s *Service) DispatchDue(ctx context.Context) (sent int, err error) {
	now := s.now()
	s.log.Debug("subscriptions.loading_due", slog.Time("now", now))

	subs, err := s.repo.FindDue(ctx, now)
	if err != nil {
		s.log.Error("subscriptions.find_due failed", slog.String("err", err.Error()))
		return 0, err
	}
	if len(subs) == 0 {
		s.log.Debug("subscriptions.no_due")
		return 0, nil
	}

	st := s.market.State()
	if len(st.Coins) == 0 {
		// ждём первой успешной загрузки, подписки останутся due
		s.log.Warn("subscriptions.empty_market", slog.String("market_error", st.Error))
		return 0, nil
	}
	ccy := s.market.Currency()

	for _, sub := range subs {
		view := pipeline.DefaultView()
		view.PageSize = DigestSize
		if m, err := pipeline.ParseMovement(sub.Movement); err == nil {
			view.Movement = m
		}
		page := pipeline.Project(st.Coins, view)
		msg := botfmt.FormatPage(digestTitle(view.Movement, len(st.Coins)), page, ccy, st.LastUpdated)

		if err := s.notifier.Notify(ctx, sub.ChatID, msg); err != nil {
			s.log.Error("subscriptions.send failed",
				slog.Int64("chat_id", sub.ChatID),
				slog.String("err", err.Error()))
			continue
		}
		if err := s.repo.MarkSent(ctx, sub.ChatID, now); err != nil {
			s.log.Error("subscriptions.mark_sent failed",
				slog.Int64("chat_id", sub.ChatID),
				slog.String("err", err.Error()))
			continue
		}
		sent++
	}
	s.log.Info("subscriptions.dispatch_done",
		slog.Int("due", len(subs)),
		slog.Int("sent", sent))
	return sent, nil
}

func digestTitle(m pipeline.Movement, total int) string {
	switch m {
	case pipeline.MovementGainers:
		return fmt.Sprintf("Растут за 24ч (из топ-%d)", total)
	case pipeline.MovementLosers:
		return fmt.Sprintf("Падают за 24ч (из топ-%d)", total)
	default:
		return fmt.Sprintf("Топ-%d по капитализации", total)
	}
}
