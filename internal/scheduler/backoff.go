package scheduler

import "time"

const (
	baseDelay = 1 * time.Second
	maxDelay  = 60 * time.Second
)

// CalculateBackoff - baseDelay * 2^retry, не больше maxDelay
func CalculateBackoff(retry int) time.Duration {
	if retry < 0 {
		return baseDelay
	}
	// 2^30 секунд заведомо больше maxDelay
	if retry > 30 {
		return maxDelay
	}
	d := baseDelay * time.Duration(1<<retry)
	if d > maxDelay {
		return maxDelay
	}
	return d
}
