package format

import (
	"testing"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
)

func TestCurrency(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		ccy  string
		want string
	}{
		{0, "usd", "$0.00"},
		{1234.567, "usd", "$1,234.57"},
		{67250, "USD", "$67,250.00"},
		{-5, "usd", "-$5.00"},
		{0.5, "eur", "€0.50"},
		{12, "chf", "CHF 12.00"},
	}
	for _, tt := range tests {
		if got := Currency(tt.in, tt.ccy); got != tt.want {
			t.Errorf("Currency(%v, %q) = %q, want %q", tt.in, tt.ccy, got, tt.want)
		}
	}
}

func TestOptional(t *testing.T) {
	t.Parallel()

	if got := OptionalCurrency(domain.None(), "usd"); got != Placeholder {
		t.Fatalf("missing currency: %q", got)
	}
	if got := OptionalCurrency(domain.Some(0), "usd"); got != "$0.00" {
		t.Fatalf("zero currency: %q", got)
	}
	if got := OptionalPercentage(domain.None()); got != Placeholder {
		t.Fatalf("missing percentage: %q", got)
	}
	if got := OptionalPercentage(domain.Some(0)); got != "0.00%" {
		t.Fatalf("zero percentage: %q", got)
	}
	if got := SignedPercentage(domain.Some(1.2)); got != "+1.20%" {
		t.Fatalf("signed: %q", got)
	}
	if got := SignedPercentage(domain.Some(-3.456)); got != "-3.46%" {
		t.Fatalf("signed negative: %q", got)
	}
}

func TestNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{12.5, "12.5"},
		{1500, "1.50K"},
		{4_500_000, "4.50M"},
		{1_234_000_000, "1.23B"},
	}
	for _, tt := range tests {
		if got := Number(tt.in); got != tt.want {
			t.Errorf("Number(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChartPoints(t *testing.T) {
	t.Parallel()
	// 2024-03-05 12:00:00 UTC
	got := ChartPoints([][2]float64{{1709640000000, 61000.5}})
	if len(got) != 1 {
		t.Fatalf("expected 1 point, got %d", len(got))
	}
	p := got[0]
	if p.Date != "3/5/2024" || p.Price != 61000.5 || p.Timestamp != 1709640000000 {
		t.Fatalf("unexpected point: %+v", p)
	}
	if pts := ChartPoints(nil); pts == nil || len(pts) != 0 {
		t.Fatalf("expected empty slice, got %v", pts)
	}
}
