package errcode

type Code string

const (
	NotFoundCoin      Code = "COIN_NOT_FOUND"
	UpstreamFailed    Code = "UPSTREAM_FAILED"
	UpstreamMalformed Code = "UPSTREAM_MALFORMED"
	Superseded        Code = "REFRESH_SUPERSEDED"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
