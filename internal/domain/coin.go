package domain

import "time"

// Coin - снимок рынка по одной монете на момент загрузки
type Coin struct {
	ID             string        `json:"id"`     // bitcoin, ethereum
	Symbol         string        `json:"symbol"` // btc, eth
	Name           string        `json:"name"`
	Image          string        `json:"image"`
	CurrentPrice   float64       `json:"current_price"`
	MarketCap      float64       `json:"market_cap"`
	TotalVolume    float64       `json:"total_volume"`
	PriceChange24h OptionalFloat `json:"price_change_percentage_24h"` // может отсутствовать
	LastUpdated    time.Time     `json:"last_updated"`
}

// CoinRef - результат поиска монеты
type CoinRef struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
	Thumb         string `json:"thumb"`
}

// CoinDetail - подробная карточка монеты
type CoinDetail struct {
	ID                string        `json:"id"`
	Symbol            string        `json:"symbol"`
	Name              string        `json:"name"`
	Description       string        `json:"description"`
	Homepage          []string      `json:"homepage"`
	Image             string        `json:"image"`
	MarketCapRank     int           `json:"market_cap_rank"`
	CurrentPrice      OptionalFloat `json:"current_price"`
	MarketCap         OptionalFloat `json:"market_cap"`
	TotalVolume       OptionalFloat `json:"total_volume"`
	PriceChange24h    OptionalFloat `json:"price_change_percentage_24h"`
	CirculatingSupply OptionalFloat `json:"circulating_supply"`
	TotalSupply       OptionalFloat `json:"total_supply"`
	MaxSupply         OptionalFloat `json:"max_supply"`
	LastUpdated       time.Time     `json:"last_updated"`
}

// ChartPoint - точка графика цены
type ChartPoint struct {
	Date      string  `json:"date"` // M/D/YYYY
	Price     float64 `json:"price"`
	Timestamp int64   `json:"timestamp"` // unix ms
}
