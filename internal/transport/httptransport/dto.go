package httptransport

import (
	"strconv"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pipeline"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pkg/format"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/service/market"
)

// Percent — процентное изменение (например, 2.5 = 2.5%).
// Кастомный JSON-маршалер выводит число с 3 знаками после запятой.
type Percent float64

func (p Percent) MarshalJSON() ([]byte, error) {
	v := float64(p)
	return []byte(strconv.FormatFloat(v, 'f', 3, 64)), nil
}

func percentOf(o domain.OptionalFloat) *Percent {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	p := Percent(v)
	return &p
}

// Coin — DTO строки таблицы: сырые значения и уже отформатированные для показа
type Coin struct {
	ID             string   `json:"id"`
	Symbol         string   `json:"symbol"`
	Name           string   `json:"name"`
	Image          string   `json:"image"`
	CurrentPrice   float64  `json:"current_price"`
	MarketCap      float64  `json:"market_cap"`
	TotalVolume    float64  `json:"total_volume"`
	PriceChange24h *Percent `json:"price_change_percentage_24h"` // null, если нет данных

	PriceDisplay     string `json:"price_display"`
	MarketCapDisplay string `json:"market_cap_display"`
	VolumeDisplay    string `json:"volume_display"`
	ChangeDisplay    string `json:"change_display"`
}

func makeCoin(c domain.Coin, ccy string) Coin {
	return Coin{
		ID:               c.ID,
		Symbol:           c.Symbol,
		Name:             c.Name,
		Image:            c.Image,
		CurrentPrice:     c.CurrentPrice,
		MarketCap:        c.MarketCap,
		TotalVolume:      c.TotalVolume,
		PriceChange24h:   percentOf(c.PriceChange24h),
		PriceDisplay:     format.Currency(c.CurrentPrice, ccy),
		MarketCapDisplay: format.Number(c.MarketCap),
		VolumeDisplay:    format.Number(c.TotalVolume),
		ChangeDisplay:    format.OptionalPercentage(c.PriceChange24h),
	}
}

func makeCoins(list []domain.Coin, ccy string) []Coin {
	out := make([]Coin, 0, len(list))
	for _, c := range list {
		out = append(out, makeCoin(c, ccy))
	}
	return out
}

// Status — состояние провайдера без самого списка
type Status struct {
	Loading     bool       `json:"loading"`
	Error       *string    `json:"error"`
	LastUpdated *time.Time `json:"last_updated"`
	Count       int        `json:"count"`
	Currency    string     `json:"currency"`
}

func makeStatus(st market.State, ccy string) Status {
	s := Status{
		Loading:  st.Loading,
		Count:    len(st.Coins),
		Currency: ccy,
	}
	if st.Error != "" {
		e := st.Error
		s.Error = &e
	}
	if !st.LastUpdated.IsZero() {
		t := st.LastUpdated
		s.LastUpdated = &t
	}
	return s
}

// CoinsPage — ответ GET /api/coins
type CoinsPage struct {
	Items       []Coin     `json:"items"`
	Total       int        `json:"total"`
	TotalPages  int        `json:"total_pages"`
	Page        int        `json:"page"`
	PerPage     int        `json:"per_page"`
	Loading     bool       `json:"loading"`
	Error       *string    `json:"error"`
	LastUpdated *time.Time `json:"last_updated"`
}

func makeCoinsPage(p pipeline.Page, st market.State, ccy string) CoinsPage {
	status := makeStatus(st, ccy)
	return CoinsPage{
		Items:       makeCoins(p.Items, ccy),
		Total:       p.Total,
		TotalPages:  p.TotalPages,
		Page:        p.Page,
		PerPage:     p.PageSize,
		Loading:     status.Loading,
		Error:       status.Error,
		LastUpdated: status.LastUpdated,
	}
}

// Stats — DTO панели статистики
type Stats struct {
	TotalMarketCap        float64 `json:"total_market_cap"`
	TotalMarketCapDisplay string  `json:"total_market_cap_display"`
	TotalVolume           float64 `json:"total_volume"`
	TotalVolumeDisplay    string  `json:"total_volume_display"`
	Gainers               int     `json:"gainers"`
	Losers                int     `json:"losers"`
	Unchanged             int     `json:"unchanged"`
	TopGainer             *Coin   `json:"top_gainer"`
	TopLoser              *Coin   `json:"top_loser"`
}

func makeStats(s pipeline.Stats, ccy string) Stats {
	out := Stats{
		TotalMarketCap:        s.TotalMarketCap,
		TotalMarketCapDisplay: format.Currency(s.TotalMarketCap, ccy),
		TotalVolume:           s.TotalVolume,
		TotalVolumeDisplay:    format.Currency(s.TotalVolume, ccy),
		Gainers:               s.Gainers,
		Losers:                s.Losers,
		Unchanged:             s.Unchanged,
	}
	if s.TopGainer != nil {
		c := makeCoin(*s.TopGainer, ccy)
		out.TopGainer = &c
	}
	if s.TopLoser != nil {
		c := makeCoin(*s.TopLoser, ccy)
		out.TopLoser = &c
	}
	return out
}
