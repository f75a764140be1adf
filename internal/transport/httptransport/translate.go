package httptransport

import (
	"errors"
	"net/http"

	errs "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/errors"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pipeline"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/ports/errcode"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, errs.ErrCoinNotFound):
		return errcode.NotFoundCoin
	case errors.Is(err, errs.ErrSuperseded):
		return errcode.Superseded
	// malformed проверяем раньше fetch: провайдер оборачивает его в ErrFetchFailed
	case errors.Is(err, errs.ErrMalformedResponse):
		return errcode.UpstreamMalformed
	case errors.Is(err, errs.ErrFetchFailed):
		return errcode.UpstreamFailed
	case errors.Is(err, pipeline.ErrInvalidMovement),
		errors.Is(err, pipeline.ErrInvalidSortKey):
		return errcode.BadRequest
	default:
		return errcode.Internal
	}
}

// HTTPStatus — код ответа для кода ошибки
func HTTPStatus(code errcode.Code) int {
	switch code {
	case errcode.NotFoundCoin:
		return http.StatusNotFound
	case errcode.Superseded:
		return http.StatusAccepted
	case errcode.UpstreamFailed, errcode.UpstreamMalformed:
		return http.StatusBadGateway
	case errcode.BadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
