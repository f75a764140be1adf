package bot

import (
	"errors"

	errs "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/errors"
)

func translateBotError(err error) string {
	switch {
	case errors.Is(err, errs.ErrCoinNotFound):
		return "Монета не найдена. Используй id из /find, например bitcoin"
	case errors.Is(err, errs.ErrMalformedResponse):
		return "Источник данных вернул некорректный ответ, попробуйте позже"
	case errors.Is(err, errs.ErrFetchFailed):
		return "Не удалось загрузить данные, показаны прежние. Попробуйте /refresh позже"
	default:
		return "Внутренняя ошибка сервиса, попробуйте позже"
	}
}
