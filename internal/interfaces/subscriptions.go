package interfaces

import (
	"context"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
)

//go:generate mockgen -destination=mocks/subscriptions.go -package=mocks . Subscriptions,Notifier

// Subscriptions — репозиторий подписок на авторассылку
type Subscriptions interface {
	// MarkEnabled - Включает или обновляет подписку; last_sent_at сбрасывается
	MarkEnabled(ctx context.Context, chatID int64, intervalMinutes int, movement string) error
	// MarkDisabled - Выключает подписку; ErrSubscriptionNotFound, если её не было
	MarkDisabled(ctx context.Context, chatID int64) error
	// FindDue - Включённые подписки, у которых истёк интервал на момент now
	FindDue(ctx context.Context, now time.Time) ([]domain.Subscription, error)
	MarkSent(ctx context.Context, chatID int64, at time.Time) error
}

// Notifier — отправка текста в чат (telegram)
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

// SubscriptionCommander — интерфейс для команд хендлеров бота (вкл/выкл подписку).
type SubscriptionCommander interface {
	Enable(ctx context.Context, chatID int64, intervalMinutes int, movement string) error
	Disable(ctx context.Context, chatID int64) error
}

// SubscriptionDispatcher — интерфейс для планировщика бота (рассылка сообщений).
type SubscriptionDispatcher interface {
	DispatchDue(ctx context.Context) (sent int, err error)
}
