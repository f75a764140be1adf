package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/config"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/consts"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/interfaces"
	"gopkg.in/telebot.v4"
)

// Bot — telegram-интерфейс дашборда
type Bot struct {
	bot     *telebot.Bot
	market  interfaces.Market
	catalog interfaces.CoinCatalog
	logger  *slog.Logger

	subs            interfaces.SubscriptionCommander
	scheduler       *scheduler
	pageSize        int
	defaultInterval int
}

// New создаёт бота и регистрирует команды. Подписки подключаются
// отдельно через EnableSubscriptions: сервису подписок нужен сам бот как Notifier.
func New(cfg config.TelegramConfig, m interfaces.Market, catalog interfaces.CoinCatalog, pageSize int, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}
	if cfg.DefaultAutoInterval <= 0 {
		cfg.DefaultAutoInterval = 10
	}
	if pageSize <= 0 {
		pageSize = consts.PageSize
	}

	tb, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	b := &Bot{
		bot:             tb,
		market:          m,
		catalog:         catalog,
		logger:          logger,
		pageSize:        pageSize,
		defaultInterval: cfg.DefaultAutoInterval,
	}

	// маршруты команд
	tb.Handle("/start", b.handleStart)
	tb.Handle("/help", b.handleStart)
	tb.Handle("/top", b.handleTop)
	tb.Handle("/gainers", b.handleGainers)
	tb.Handle("/losers", b.handleLosers)
	tb.Handle("/find", b.handleFind)
	tb.Handle("/coin", b.handleCoin)
	tb.Handle("/stats", b.handleStats)
	tb.Handle("/refresh", b.handleRefresh)
	tb.Handle("/startauto", b.handleStartAuto)
	tb.Handle("/stopauto", b.handleStopAuto)
	return b, nil
}

// EnableSubscriptions подключает команды авторассылки и планировщик отправки
func (b *Bot) EnableSubscriptions(cmd interfaces.SubscriptionCommander, dispatcher interfaces.SubscriptionDispatcher, period time.Duration) {
	b.subs = cmd
	b.scheduler = newScheduler(dispatcher, period, b.logger)
}

// Notify — отправка сообщения в чат, реализует interfaces.Notifier
func (b *Bot) Notify(_ context.Context, chatID int64, text string) error {
	_, err := b.bot.Send(&telebot.Chat{ID: chatID}, text)
	return err
}

// Start запускает бота и планировщик
func (b *Bot) Start(ctx context.Context) {
	if b.scheduler != nil {
		go b.scheduler.run(ctx)
	}
	go b.bot.Start()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
