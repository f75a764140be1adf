package pipeline

import "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"

// Stats - сводка по рынку для панели статистики
type Stats struct {
	TotalMarketCap float64
	TotalVolume    float64
	Gainers        int
	Losers         int
	Unchanged      int
	TopGainer      *domain.Coin
	TopLoser       *domain.Coin
}

func Summarize(coins []domain.Coin) Stats {
	var s Stats
	for i := range coins {
		c := coins[i]
		s.TotalMarketCap += c.MarketCap
		s.TotalVolume += c.TotalVolume

		ch := change(c)
		switch {
		case ch > 0:
			s.Gainers++
			if s.TopGainer == nil || ch > change(*s.TopGainer) {
				s.TopGainer = &c
			}
		case ch < 0:
			s.Losers++
			if s.TopLoser == nil || ch < change(*s.TopLoser) {
				s.TopLoser = &c
			}
		default:
			s.Unchanged++
		}
	}
	return s
}
