package errors

import "errors"

var (
	ErrFetchFailed          = errors.New("failed to fetch coins")
	ErrMalformedResponse    = errors.New("malformed provider response")
	ErrCoinNotFound         = errors.New("coin not found")
	ErrSuperseded           = errors.New("refresh superseded by a newer request")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
