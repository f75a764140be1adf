package market

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/consts"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
	errs "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/errors"
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks . CoinSource

// CoinSource — внешний источник списка монет (CoinGecko API).
type CoinSource interface {
	FetchTopCoins(ctx context.Context, page, perPage int, currency string) ([]domain.Coin, error)
}

// State - снимок состояния провайдера для читателей
type State struct {
	Coins       []domain.Coin
	Loading     bool
	Error       string    // пусто, если ошибки нет
	LastUpdated time.Time // нулевое, если данных ещё не было
}

// Config - параметры загрузки
type Config struct {
	TopCoins int
	Currency string
	Timeout  time.Duration
}

// Provider — единственный владелец списка монет и статуса обновления.
// Пишет только Refresh, остальные читают копии через State и Subscribe.
type Provider struct {
	source CoinSource
	cfg    Config
	clock  Clock
	logger *slog.Logger

	mu          sync.RWMutex
	coins       []domain.Coin
	lastErr     string
	lastUpdated time.Time
	latestID    uint64 // id последнего выданного запроса
	appliedID   uint64 // id последнего завершившегося актуального запроса

	subsMu sync.Mutex
	subs   map[int]chan State
	nextID int
}

// NewProvider — конструктор провайдера рыночных данных
func NewProvider(source CoinSource, cfg Config, logger *slog.Logger) *Provider {
	return NewProviderWithClock(source, cfg, NewRealClock(), logger)
}

// NewProviderWithClock - Конструктор для тестов: позволяет подставить фиксированные "часы".
func NewProviderWithClock(source CoinSource, cfg Config, clk Clock, logger *slog.Logger) *Provider {
	if cfg.TopCoins <= 0 {
		cfg.TopCoins = consts.TopCoins
	}
	if cfg.Currency == "" {
		cfg.Currency = consts.Currency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Provider{
		source: source,
		cfg:    cfg,
		clock:  clk,
		logger: logger,
		subs:   make(map[int]chan State),
	}
}

// Currency - валюта, в которой загружены цены
func (p *Provider) Currency() string {
	return p.cfg.Currency
}

// Refresh загружает топ монет. Успех заменяет список целиком и сбрасывает ошибку,
// неудача оставляет прежний список и выставляет ошибку. Если пока запрос шёл
// был запущен более новый, ответ отбрасывается и возвращается ErrSuperseded.
// Отмена ctx не прерывает загрузку, её ограничивает только Config.Timeout.
func (p *Provider) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.latestID++
	id := p.latestID
	p.mu.Unlock()
	p.publish()

	// запрос уже стал последним: уход вызывающего не должен превращать его в ошибку
	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.cfg.Timeout)
	defer cancel()

	started := time.Now()
	coins, err := p.source.FetchTopCoins(fctx, 1, p.cfg.TopCoins, p.cfg.Currency)

	p.mu.Lock()
	if id != p.latestID {
		p.mu.Unlock()
		p.logger.Debug("market.refresh superseded",
			slog.Uint64("request_id", id),
			slog.Duration("duration", time.Since(started)))
		return errs.ErrSuperseded
	}
	p.appliedID = id
	if err != nil {
		p.lastErr = consts.FetchErrMessage
		p.mu.Unlock()
		p.publish()
		p.logger.Error("market.refresh failed",
			slog.Uint64("request_id", id),
			slog.String("err", err.Error()))
		if errors.Is(err, errs.ErrFetchFailed) {
			return err
		}
		return fmt.Errorf("%w: %w", errs.ErrFetchFailed, err)
	}
	p.coins = slices.Clone(coins)
	p.lastErr = ""
	p.lastUpdated = p.clock.Now()
	p.mu.Unlock()
	p.publish()

	p.logger.Info("market.refresh ok",
		slog.Uint64("request_id", id),
		slog.Int("count", len(coins)),
		slog.Duration("duration", time.Since(started)))
	return nil
}

// State - копия текущего состояния
func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot()
}

func (p *Provider) snapshot() State {
	return State{
		Coins:       slices.Clone(p.coins),
		Loading:     p.appliedID != p.latestID,
		Error:       p.lastErr,
		LastUpdated: p.lastUpdated,
	}
}

// Subscribe - уведомления об изменении состояния. Медленный подписчик
// получает только последний снимок. cancel нужно вызвать обязательно.
func (p *Provider) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	p.subsMu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = ch
	p.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			p.subsMu.Lock()
			delete(p.subs, id)
			p.subsMu.Unlock()
		})
	}
	return ch, cancel
}

func (p *Provider) publish() {
	p.subsMu.Lock()
	defer p.subsMu.Unlock()

	st := p.State()
	for _, ch := range p.subs {
		// вытесняем устаревший снимок
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- st:
		default:
		}
	}
}
