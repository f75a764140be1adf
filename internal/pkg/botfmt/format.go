package botfmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pipeline"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pkg/format"
)

// FormatCoinLine — короткая строка для списков и рассылок
func FormatCoinLine(c domain.Coin, ccy string) string {
	return fmt.Sprintf("%s (%s) | %s | %s | кап. %s",
		c.Name,
		strings.ToUpper(c.Symbol),
		format.Currency(c.CurrentPrice, ccy),
		format.SignedPercentage(c.PriceChange24h),
		format.Number(c.MarketCap),
	)
}

// FormatPage — страница списка с заголовком и номером страницы
func FormatPage(title string, p pipeline.Page, ccy string, updated time.Time) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')
	if len(p.Items) == 0 {
		b.WriteString("Ничего не найдено")
		return b.String()
	}
	offset := (p.Page - 1) * p.PageSize
	for i, c := range p.Items {
		fmt.Fprintf(&b, "%d. %s\n", offset+i+1, FormatCoinLine(c, ccy))
	}
	fmt.Fprintf(&b, "Страница %d из %d (монет: %d)", p.Page, p.TotalPages, p.Total)
	if !updated.IsZero() {
		fmt.Fprintf(&b, "\nОбновлено: %s", updated.Format("15:04:05"))
	}
	return b.String()
}

// FormatCoinDetails — подробное сообщение для команды /coin {id}
func FormatCoinDetails(d domain.CoinDetail, ccy string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", strings.ToUpper(d.Symbol), d.Name)
	if d.MarketCapRank > 0 {
		fmt.Fprintf(&b, " #%d", d.MarketCapRank)
	}
	fmt.Fprintf(&b, "\nЦена: %s\nИзменение за 24ч: %s\nКапитализация: %s\nОбъём за 24ч: %s",
		format.OptionalCurrency(d.CurrentPrice, ccy),
		format.SignedPercentage(d.PriceChange24h),
		format.OptionalCurrency(d.MarketCap, ccy),
		format.OptionalCurrency(d.TotalVolume, ccy),
	)
	fmt.Fprintf(&b, "\nВ обращении: %s\nМаксимум эмиссии: %s",
		optionalNumber(d.CirculatingSupply),
		optionalNumber(d.MaxSupply),
	)
	if len(d.Homepage) > 0 {
		fmt.Fprintf(&b, "\nСайт: %s", d.Homepage[0])
	}
	return b.String()
}

// FormatStats — сводка рынка
func FormatStats(s pipeline.Stats, ccy string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Капитализация: %s\nОбъём за 24ч: %s\nРастут: %d | Падают: %d | Без изменений: %d",
		format.Currency(s.TotalMarketCap, ccy),
		format.Currency(s.TotalVolume, ccy),
		s.Gainers, s.Losers, s.Unchanged,
	)
	if s.TopGainer != nil {
		fmt.Fprintf(&b, "\nЛидер роста: %s %s", strings.ToUpper(s.TopGainer.Symbol), format.SignedPercentage(s.TopGainer.PriceChange24h))
	}
	if s.TopLoser != nil {
		fmt.Fprintf(&b, "\nЛидер падения: %s %s", strings.ToUpper(s.TopLoser.Symbol), format.SignedPercentage(s.TopLoser.PriceChange24h))
	}
	return b.String()
}

func optionalNumber(o domain.OptionalFloat) string {
	v, ok := o.Get()
	if !ok {
		return format.Placeholder
	}
	return format.Number(v)
}
