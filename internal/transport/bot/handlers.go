package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	errs "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/errors"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pipeline"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pkg/botfmt"
	"gopkg.in/telebot.v4"
)

var (
	ErrInvalidInterval = errors.New("invalid interval")
	ErrInvalidPage     = errors.New("invalid page")
)

const helpText = "Привет! Доступные команды:\n" +
	"/top {страница} - топ монет по капитализации\n" +
	"/gainers {страница} - растущие за 24ч\n" +
	"/losers {страница} - падающие за 24ч\n" +
	"/find {текст} - поиск по названию или тикеру\n" +
	"/coin {id} - карточка монеты (bitcoin, ethereum)\n" +
	"/stats - сводка по рынку\n" +
	"/refresh - обновить данные\n" +
	"/startauto {минуты} {all|gainers|losers} - включить автообновления\n" +
	"/stopauto - отключить автообновления"

// handleStart — отправляет справку по доступным командам бота
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send(helpText)
}

func (b *Bot) handleTop(c telebot.Context) error {
	return b.sendList(c, pipeline.MovementAll)
}

func (b *Bot) handleGainers(c telebot.Context) error {
	return b.sendList(c, pipeline.MovementGainers)
}

func (b *Bot) handleLosers(c telebot.Context) error {
	return b.sendList(c, pipeline.MovementLosers)
}

func (b *Bot) sendList(c telebot.Context, m pipeline.Movement) error {
	page := 1
	if args := c.Args(); len(args) > 0 {
		p, err := parsePage(args[0])
		if err != nil {
			return c.Send("Некорректный номер страницы. Пример: /top 2")
		}
		page = p
	}
	return c.Send(b.listText("", m, page))
}

// handleFind — поиск по уже загруженному списку, без запроса к API
func (b *Bot) handleFind(c telebot.Context) error {
	query := strings.TrimSpace(c.Message().Payload)
	if query == "" {
		return c.Send("Укажи текст для поиска: /find btc")
	}
	return c.Send(b.listText(query, pipeline.MovementAll, 1))
}

func (b *Bot) handleCoin(c telebot.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Send("Укажи id монеты: /coin bitcoin")
	}
	id := strings.ToLower(strings.TrimSpace(args[0]))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	d, err := b.catalog.FetchCoinDetail(ctx, id, b.market.Currency())
	if err != nil {
		b.logger.Warn("bot: /coin failed",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return c.Send(translateBotError(err))
	}
	return c.Send(botfmt.FormatCoinDetails(d, b.market.Currency()))
}

func (b *Bot) handleStats(c telebot.Context) error {
	st := b.market.State()
	if len(st.Coins) == 0 {
		return c.Send(emptyListText(st.Error))
	}
	return c.Send(botfmt.FormatStats(pipeline.Summarize(st.Coins), b.market.Currency()))
}

// handleRefresh — ручное обновление списка
func (b *Bot) handleRefresh(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return c.Send(b.refreshText(ctx))
}

// handleStartAuto — включает авторассылку для чата.
// Интервал по умолчанию берётся из конфига, фильтр по умолчанию all.
func (b *Bot) handleStartAuto(c telebot.Context) error {
	chatID := c.Chat().ID
	b.logger.Debug("subscription: /startauto received",
		slog.Int64("chat_id", chatID),
		slog.String("text", c.Text()),
		slog.Int("args_len", len(c.Args())),
	)
	if b.subs == nil {
		return c.Send("Автообновления недоступны")
	}

	mins, movement, err := parseAutoArgs(c.Args(), b.defaultInterval)
	if err != nil {
		b.logger.Warn("subscription: /startauto invalid args",
			slog.Int64("chat_id", chatID),
			slog.String("text", c.Text()),
		)
		return c.Send("Некорректные параметры. Пример: /startauto 10 gainers")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := b.subs.Enable(ctx, chatID, mins, string(movement)); err != nil {
		return c.Send(translateBotError(err))
	}
	if err := c.Send(fmt.Sprintf("Автообновления включены! (каждые %d мин., %s)", mins, movementLabel(movement))); err != nil {
		b.logger.Error("subscription: /startauto confirm send failed",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// handleStopAuto — отключает авторассылку для текущего чата
func (b *Bot) handleStopAuto(c telebot.Context) error {
	if b.subs == nil {
		return c.Send("Автообновления недоступны")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := b.subs.Disable(ctx, c.Chat().ID); err != nil {
		if errors.Is(err, errs.ErrSubscriptionNotFound) {
			return c.Send("Автообновления и так выключены")
		}
		return c.Send(translateBotError(err))
	}
	return c.Send("Автообновления отключены!")
}

// listText — страница текущего списка с поиском и фильтром
func (b *Bot) listText(search string, m pipeline.Movement, page int) string {
	st := b.market.State()
	if len(st.Coins) == 0 {
		return emptyListText(st.Error)
	}

	view := pipeline.DefaultView()
	view.PageSize = b.pageSize
	view.SetSearch(search)
	view.SetMovement(m)
	view.Page = page

	p := pipeline.Project(st.Coins, view)
	text := botfmt.FormatPage(listTitle(search, m), p, b.market.Currency(), st.LastUpdated)
	if st.Error != "" {
		text += "\nПоследнее обновление не удалось, показаны прежние данные"
	}
	return text
}

func (b *Bot) refreshText(ctx context.Context) string {
	err := b.market.Refresh(ctx)
	switch {
	case err == nil:
		st := b.market.State()
		return fmt.Sprintf("Данные обновлены (монет: %d)", len(st.Coins))
	case errors.Is(err, errs.ErrSuperseded):
		return "Обновление уже идёт, попробуйте позже"
	default:
		b.logger.Warn("bot: /refresh failed", slog.String("error", err.Error()))
		return translateBotError(err)
	}
}

func emptyListText(lastErr string) string {
	if lastErr != "" {
		return "Не удалось загрузить данные, попробуйте /refresh"
	}
	return "Данные ещё загружаются, попробуйте позже"
}

func listTitle(search string, m pipeline.Movement) string {
	title := "Топ по капитализации"
	switch m {
	case pipeline.MovementGainers:
		title = "Растут за 24ч"
	case pipeline.MovementLosers:
		title = "Падают за 24ч"
	}
	if search != "" {
		title += fmt.Sprintf(" (поиск: %q)", search)
	}
	return title
}

func movementLabel(m pipeline.Movement) string {
	switch m {
	case pipeline.MovementGainers:
		return "только растущие"
	case pipeline.MovementLosers:
		return "только падающие"
	default:
		return "все монеты"
	}
}

// parseAutoArgs — /startauto [минуты] [all|gainers|losers]
func parseAutoArgs(args []string, defaultMinutes int) (int, pipeline.Movement, error) {
	mins := defaultMinutes
	movement := pipeline.MovementAll
	if len(args) > 2 {
		return 0, "", ErrInvalidInterval
	}
	if len(args) >= 1 {
		m, err := parseMinutes(args[0])
		if err != nil {
			return 0, "", err
		}
		mins = m
	}
	if len(args) == 2 {
		m, err := pipeline.ParseMovement(args[1])
		if err != nil {
			return 0, "", err
		}
		movement = m
	}
	return mins, movement, nil
}

// parseMinutes — парсит строку с минутами и валидирует значение (> 0)
func parseMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	m, err := strconv.Atoi(s)
	if err != nil || m <= 0 {
		return 0, ErrInvalidInterval
	}
	return m, nil
}

func parsePage(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || p < 1 {
		return 0, ErrInvalidPage
	}
	return p, nil
}
