package interfaces

import (
	"context"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/service/market"
)

//go:generate mockgen -destination=mocks/market.go -package=mocks . MarketReader,Market,CoinCatalog

// MarketReader — чтение состояния провайдера (список, статус, валюта).
type MarketReader interface {
	State() market.State
	Currency() string
}

// Market — чтение + ручное обновление (HTTP, бот).
type Market interface {
	MarketReader
	Refresh(ctx context.Context) error
}

// MarketFeed — чтение + поток изменений состояния (websocket).
type MarketFeed interface {
	Market
	Subscribe() (<-chan market.State, func())
}

// CoinCatalog — запросы к провайдеру вне основного списка: поиск, карточка, график.
type CoinCatalog interface {
	SearchCoins(ctx context.Context, query string) ([]domain.CoinRef, error)
	FetchCoinDetail(ctx context.Context, id, currency string) (domain.CoinDetail, error)
	FetchCoinChart(ctx context.Context, id string, days int, currency string) ([]domain.ChartPoint, error)
}
