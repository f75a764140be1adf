package domain

import "time"

// Subscription - авторассылка топа монет в чат
type Subscription struct {
	ChatID          int64
	IntervalMinutes int
	Movement        string // all|gainers|losers
	Enabled         bool
	LastSentAt      *time.Time // nil - ещё не отправляли
}
