package market_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
	errs "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/errors"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/service/market"
	marketmocks "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/service/market/mocks"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/pkg/logger"
	"github.com/golang/mock/gomock"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func setupProvider(t *testing.T) (*marketmocks.MockCoinSource, *fixedClock, *market.Provider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	src := marketmocks.NewMockCoinSource(ctrl)
	clk := &fixedClock{t: time.Date(2025, 8, 12, 15, 0, 0, 0, time.UTC)}
	p := market.NewProviderWithClock(src, market.Config{TopCoins: 50, Currency: "usd", Timeout: time.Second}, clk, logger.Discard())
	return src, clk, p
}

var (
	btc = domain.Coin{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 67000}
	eth = domain.Coin{ID: "ethereum", Symbol: "eth", Name: "Ethereum", CurrentPrice: 3500}
)

// Success: список заменён, время обновления выставлено, ошибки нет
func TestRefresh_Success(t *testing.T) {
	t.Parallel()
	src, clk, p := setupProvider(t)

	src.EXPECT().
		FetchTopCoins(gomock.Any(), 1, 50, "usd").
		DoAndReturn(func(ctx context.Context, _, _ int, _ string) ([]domain.Coin, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("fetch must be bounded by a timeout")
			}
			return []domain.Coin{btc, eth}, nil
		}).
		Times(1)

	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := p.State()
	if len(st.Coins) != 2 || st.Coins[0].ID != "bitcoin" {
		t.Fatalf("unexpected coins: %+v", st.Coins)
	}
	if st.Loading || st.Error != "" {
		t.Fatalf("unexpected status: loading=%v error=%q", st.Loading, st.Error)
	}
	if !st.LastUpdated.Equal(clk.t) {
		t.Fatalf("last updated: %v", st.LastUpdated)
	}
}

// Before first load: пустой список, без ошибки
func TestState_Initial(t *testing.T) {
	t.Parallel()
	_, _, p := setupProvider(t)

	st := p.State()
	if len(st.Coins) != 0 || st.Loading || st.Error != "" || !st.LastUpdated.IsZero() {
		t.Fatalf("unexpected initial state: %+v", st)
	}
}

// Failure: прежний список остаётся, ошибка выставлена; следующий успех её сбрасывает
func TestRefresh_FailureKeepsStaleList(t *testing.T) {
	t.Parallel()
	src, clk, p := setupProvider(t)
	first := clk.t

	gomock.InOrder(
		src.EXPECT().FetchTopCoins(gomock.Any(), 1, 50, "usd").Return([]domain.Coin{btc}, nil),
		src.EXPECT().FetchTopCoins(gomock.Any(), 1, 50, "usd").Return(nil, errors.New("api timeout")),
		src.EXPECT().FetchTopCoins(gomock.Any(), 1, 50, "usd").Return([]domain.Coin{eth, btc}, nil),
	)

	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := p.Refresh(context.Background())
	if !errors.Is(err, errs.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
	st := p.State()
	if len(st.Coins) != 1 || st.Coins[0].ID != "bitcoin" {
		t.Fatalf("stale list lost: %+v", st.Coins)
	}
	if st.Error == "" {
		t.Fatal("error must be set after failure")
	}
	if !st.LastUpdated.Equal(first) {
		t.Fatalf("last updated must not move on failure: %v", st.LastUpdated)
	}

	clk.t = first.Add(time.Minute)
	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st = p.State()
	if st.Error != "" {
		t.Fatalf("error must be cleared, got %q", st.Error)
	}
	if !st.LastUpdated.Equal(first.Add(time.Minute)) {
		t.Fatalf("last updated not advanced: %v", st.LastUpdated)
	}
	if len(st.Coins) != 2 || st.Coins[0].ID != "ethereum" {
		t.Fatalf("list not replaced: %+v", st.Coins)
	}
}

// Superseded: ответ старого запроса, пришедший позже нового, отбрасывается
func TestRefresh_LastRequestWins(t *testing.T) {
	t.Parallel()
	src, _, p := setupProvider(t)

	release := make(chan struct{})
	started := make(chan struct{})

	gomock.InOrder(
		src.EXPECT().FetchTopCoins(gomock.Any(), 1, 50, "usd").
			DoAndReturn(func(context.Context, int, int, string) ([]domain.Coin, error) {
				close(started)
				<-release
				return []domain.Coin{btc}, nil
			}),
		src.EXPECT().FetchTopCoins(gomock.Any(), 1, 50, "usd").
			Return([]domain.Coin{eth}, nil),
	)

	firstErr := make(chan error, 1)
	go func() { firstErr <- p.Refresh(context.Background()) }()
	<-started

	if !p.State().Loading {
		t.Fatal("loading must be set while a request is in flight")
	}

	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(release)

	if err := <-firstErr; !errors.Is(err, errs.ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded, got %v", err)
	}
	st := p.State()
	if len(st.Coins) != 1 || st.Coins[0].ID != "ethereum" {
		t.Fatalf("stale response applied: %+v", st.Coins)
	}
	if st.Loading {
		t.Fatal("loading must be cleared")
	}
}

// CancelledCaller: вызывающий ушёл до начала загрузки, но его запрос уже последний.
// Загрузка доходит до конца, состояние не портится ошибкой отмены.
func TestRefresh_CancelledCallerDoesNotCorruptState(t *testing.T) {
	t.Parallel()
	src, _, p := setupProvider(t)

	release := make(chan struct{})
	started := make(chan struct{})

	gomock.InOrder(
		src.EXPECT().FetchTopCoins(gomock.Any(), 1, 50, "usd").
			DoAndReturn(func(context.Context, int, int, string) ([]domain.Coin, error) {
				close(started)
				<-release
				return []domain.Coin{btc}, nil
			}),
		src.EXPECT().FetchTopCoins(gomock.Any(), 1, 50, "usd").
			DoAndReturn(func(ctx context.Context, _, _ int, _ string) ([]domain.Coin, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				if _, ok := ctx.Deadline(); !ok {
					t.Error("fetch must still be bounded by a timeout")
				}
				return []domain.Coin{btc, eth}, nil
			}),
	)

	firstErr := make(chan error, 1)
	go func() { firstErr <- p.Refresh(context.Background()) }()
	<-started

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Refresh(cancelled); err != nil {
		t.Fatalf("cancelled caller must not fail the refresh: %v", err)
	}
	close(release)

	if err := <-firstErr; !errors.Is(err, errs.ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded, got %v", err)
	}
	st := p.State()
	if st.Error != "" {
		t.Fatalf("error must stay clear, got %q", st.Error)
	}
	if len(st.Coins) != 2 || st.Loading {
		t.Fatalf("unexpected state: %+v", st)
	}
}

// State возвращает копию: изменения у читателя не видны провайдеру
func TestState_ReturnsCopy(t *testing.T) {
	t.Parallel()
	src, _, p := setupProvider(t)
	src.EXPECT().FetchTopCoins(gomock.Any(), 1, 50, "usd").Return([]domain.Coin{btc}, nil)

	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := p.State()
	st.Coins[0].Name = "changed"

	if p.State().Coins[0].Name != "Bitcoin" {
		t.Fatal("provider list mutated through snapshot")
	}
}

func TestSubscribe(t *testing.T) {
	t.Parallel()
	src, _, p := setupProvider(t)
	src.EXPECT().FetchTopCoins(gomock.Any(), 1, 50, "usd").Return([]domain.Coin{btc}, nil)

	ch, cancel := p.Subscribe()
	defer cancel()

	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case st := <-ch:
		// в буфере остаётся только последний снимок
		if st.Loading || len(st.Coins) != 1 {
			t.Fatalf("unexpected snapshot: %+v", st)
		}
	case <-time.After(time.Second):
		t.Fatal("no notification")
	}
}
