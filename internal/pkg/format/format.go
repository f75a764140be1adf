package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder - вывод для отсутствующего значения
const Placeholder = "-"

var printer = message.NewPrinter(language.English)

var currencySymbols = map[string]string{
	"usd": "$",
	"eur": "€",
	"gbp": "£",
	"jpy": "¥",
}

// Currency - денежное значение в стиле en-US: $1,234.57, -$5.00, $0.00.
// Ноль - это значение, а не пропуск.
func Currency(v float64, ccy string) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	f, _ := d.Float64()
	return sign + currencySymbol(ccy) + printer.Sprintf("%.2f", f)
}

// OptionalCurrency - Placeholder только если значения нет
func OptionalCurrency(o domain.OptionalFloat, ccy string) string {
	v, ok := o.Get()
	if !ok {
		return Placeholder
	}
	return Currency(v, ccy)
}

// Number - компактная запись больших чисел: 1.23B, 4.50M, 7.00K.
func Number(v float64) string {
	switch {
	case v >= 1_000_000_000:
		return fixed(v/1_000_000_000) + "B"
	case v >= 1_000_000:
		return fixed(v/1_000_000) + "M"
	case v >= 1_000:
		return fixed(v/1_000) + "K"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Percentage - 12.35%
func Percentage(v float64) string {
	return fixed(v) + "%"
}

// OptionalPercentage - Placeholder только если значения нет
func OptionalPercentage(o domain.OptionalFloat) string {
	v, ok := o.Get()
	if !ok {
		return Placeholder
	}
	return Percentage(v)
}

// SignedPercentage - +1.20% / -3.40%, для сообщений бота
func SignedPercentage(o domain.OptionalFloat) string {
	v, ok := o.Get()
	if !ok {
		return Placeholder
	}
	if v > 0 {
		return "+" + Percentage(v)
	}
	return Percentage(v)
}

// ChartPoints - пары [unix ms, цена] в точки графика
func ChartPoints(pairs [][2]float64) []domain.ChartPoint {
	out := make([]domain.ChartPoint, 0, len(pairs))
	for _, p := range pairs {
		ts := int64(p[0])
		out = append(out, domain.ChartPoint{
			Date:      time.UnixMilli(ts).UTC().Format("1/2/2006"),
			Price:     p[1],
			Timestamp: ts,
		})
	}
	return out
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func currencySymbol(ccy string) string {
	c := strings.ToLower(strings.TrimSpace(ccy))
	if c == "" {
		return "$"
	}
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return strings.ToUpper(c) + " "
}
