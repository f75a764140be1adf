package postgres

import (
	"context"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
	errs "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionRepo struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepo(db *pgxpool.Pool) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

// MarkEnabled включает/обновляет подписку для chatID с интервалом (в минутах) и фильтром.
func (r *SubscriptionRepo) MarkEnabled(ctx context.Context, chatID int64, intervalMinutes int, movement string) error {
	query := `
	INSERT INTO subscriptions (chat_id, interval_minutes, movement, enabled, last_sent_at)
	VALUES ($1, $2, $3, TRUE, NULL)
	ON CONFLICT (chat_id)
	DO UPDATE SET interval_minutes = EXCLUDED.interval_minutes,
	              movement = EXCLUDED.movement,
	              enabled = TRUE,
	              last_sent_at = NULL`
	_, err := r.db.Exec(ctx, query, chatID, intervalMinutes, movement)
	return err
}

// MarkDisabled выключает подписку для chatID.
func (r *SubscriptionRepo) MarkDisabled(ctx context.Context, chatID int64) error {
	query := `UPDATE subscriptions SET enabled = FALSE WHERE chat_id = $1`
	tag, err := r.db.Exec(ctx, query, chatID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrSubscriptionNotFound
	}
	return nil
}

// FindDue возвращает подписки, для которых наступило время отправки на момент now.
func (r *SubscriptionRepo) FindDue(ctx context.Context, now time.Time) ([]domain.Subscription, error) {
	query := `
	SELECT chat_id, interval_minutes, movement, enabled, last_sent_at
	FROM subscriptions
	WHERE enabled = TRUE
	  AND (
		last_sent_at IS NULL
		OR EXTRACT(EPOCH FROM ($1::timestamptz - last_sent_at)) / 60 >= interval_minutes
	)
	ORDER BY chat_id`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Subscription, error) {
		var s domain.Subscription
		err := row.Scan(&s.ChatID, &s.IntervalMinutes, &s.Movement, &s.Enabled, &s.LastSentAt)
		return s, err
	})
}

// MarkSent отмечает факт отправки для chatID.
func (r *SubscriptionRepo) MarkSent(ctx context.Context, chatID int64, at time.Time) error {
	query := `UPDATE subscriptions SET last_sent_at = $2 WHERE chat_id = $1`
	_, err := r.db.Exec(ctx, query, chatID, at)
	return err
}
