package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
	errs "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/errors"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/interfaces/mocks"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pipeline"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/service/market"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/pkg/logger"
	"github.com/golang/mock/gomock"
)

func testBot(t *testing.T) (*Bot, *mocks.MockMarket) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMarket(ctrl)
	m.EXPECT().Currency().Return("usd").AnyTimes()
	return &Bot{
		market:          m,
		catalog:         mocks.NewMockCoinCatalog(ctrl),
		logger:          logger.Discard(),
		pageSize:        6,
		defaultInterval: 10,
	}, m
}

var listCoins = []domain.Coin{
	{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 70000, MarketCap: 1.3e12, PriceChange24h: domain.Some(2.5)},
	{ID: "ethereum", Symbol: "eth", Name: "Ethereum", CurrentPrice: 3500, MarketCap: 4e11, PriceChange24h: domain.Some(-1)},
	{ID: "tether", Symbol: "usdt", Name: "Tether", CurrentPrice: 1, MarketCap: 1e11},
}

func TestListText(t *testing.T) {
	t.Parallel()
	b, m := testBot(t)
	m.EXPECT().State().Return(market.State{Coins: listCoins}).Times(3)

	all := b.listText("", pipeline.MovementAll, 1)
	if !strings.Contains(all, "1. Bitcoin") || !strings.Contains(all, "3. Tether") {
		t.Fatalf("unexpected list: %s", all)
	}

	losers := b.listText("", pipeline.MovementLosers, 1)
	if strings.Contains(losers, "Bitcoin") || !strings.Contains(losers, "Ethereum") {
		t.Fatalf("unexpected losers: %s", losers)
	}

	found := b.listText("USD", pipeline.MovementAll, 1)
	if !strings.Contains(found, "Tether") || strings.Contains(found, "Bitcoin") {
		t.Fatalf("unexpected search result: %s", found)
	}
}

// Ошибка последнего обновления: прежний список показывается с пометкой
func TestListText_StaleAndEmpty(t *testing.T) {
	t.Parallel()
	b, m := testBot(t)
	gomock.InOrder(
		m.EXPECT().State().Return(market.State{Coins: listCoins, Error: "failed to fetch coins"}),
		m.EXPECT().State().Return(market.State{Error: "failed to fetch coins"}),
		m.EXPECT().State().Return(market.State{Loading: true}),
	)

	if got := b.listText("", pipeline.MovementAll, 1); !strings.Contains(got, "прежние данные") {
		t.Fatalf("stale marker expected: %s", got)
	}
	if got := b.listText("", pipeline.MovementAll, 1); !strings.Contains(got, "/refresh") {
		t.Fatalf("refresh hint expected: %s", got)
	}
	if got := b.listText("", pipeline.MovementAll, 1); !strings.Contains(got, "загружаются") {
		t.Fatalf("loading text expected: %s", got)
	}
}

func TestRefreshText(t *testing.T) {
	t.Parallel()
	b, m := testBot(t)
	ctx := context.Background()

	gomock.InOrder(
		m.EXPECT().Refresh(gomock.Any()).Return(nil),
		m.EXPECT().Refresh(gomock.Any()).Return(errs.ErrSuperseded),
		m.EXPECT().Refresh(gomock.Any()).Return(fmt.Errorf("%w: 429", errs.ErrFetchFailed)),
	)
	m.EXPECT().State().Return(market.State{Coins: listCoins})

	if got := b.refreshText(ctx); got != "Данные обновлены (монет: 3)" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := b.refreshText(ctx); !strings.Contains(got, "уже идёт") {
		t.Fatalf("unexpected: %q", got)
	}
	if got := b.refreshText(ctx); !strings.Contains(got, "Не удалось загрузить") {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestParseAutoArgs(t *testing.T) {
	t.Parallel()
	cases := []struct {
		args    []string
		mins    int
		move    pipeline.Movement
		wantErr bool
	}{
		{args: nil, mins: 10, move: pipeline.MovementAll},
		{args: []string{"5"}, mins: 5, move: pipeline.MovementAll},
		{args: []string{"15", "Gainers"}, mins: 15, move: pipeline.MovementGainers},
		{args: []string{"0"}, wantErr: true},
		{args: []string{"abc"}, wantErr: true},
		{args: []string{"5", "up"}, wantErr: true},
		{args: []string{"5", "all", "extra"}, wantErr: true},
	}
	for _, tc := range cases {
		mins, move, err := parseAutoArgs(tc.args, 10)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%v: expected error", tc.args)
			}
			continue
		}
		if err != nil || mins != tc.mins || move != tc.move {
			t.Fatalf("%v: got %d %q %v", tc.args, mins, move, err)
		}
	}
}

func TestParsePage(t *testing.T) {
	t.Parallel()
	if p, err := parsePage(" 3 "); err != nil || p != 3 {
		t.Fatalf("got %d %v", p, err)
	}
	if _, err := parsePage("0"); !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}
}

func TestTranslateBotError(t *testing.T) {
	t.Parallel()
	wrapped := fmt.Errorf("%w: %w", errs.ErrFetchFailed, errs.ErrMalformedResponse)
	if got := translateBotError(wrapped); !strings.Contains(got, "некорректный ответ") {
		t.Fatalf("malformed must win over fetch failed: %q", got)
	}
	if got := translateBotError(errs.ErrCoinNotFound); !strings.Contains(got, "не найдена") {
		t.Fatalf("unexpected: %q", got)
	}
	if got := translateBotError(errors.New("boom")); !strings.Contains(got, "Внутренняя ошибка") {
		t.Fatalf("unexpected: %q", got)
	}
}

type fakeDispatcher struct {
	calls int
	err   error
}

func (f *fakeDispatcher) DispatchDue(context.Context) (int, error) {
	f.calls++
	return 1, f.err
}

func TestScheduler_Tick(t *testing.T) {
	t.Parallel()
	d := &fakeDispatcher{}
	s := newScheduler(d, 0, logger.Discard())
	if s.period <= 0 {
		t.Fatal("period must default to a positive value")
	}
	s.tick(context.Background())
	d.err = errors.New("db down")
	s.tick(context.Background())
	if d.calls != 2 {
		t.Fatalf("calls = %d, want 2", d.calls)
	}
}
