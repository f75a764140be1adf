package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pipeline"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pkg/format"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderTop(w io.Writer, p pipeline.Page, ccy string) {
	if len(p.Items) == 0 {
		fmt.Fprintln(w, "No coins found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tCOIN\tPRICE\t24H\tMARKET CAP\tVOLUME")
	offset := (p.Page - 1) * p.PageSize
	for i, c := range p.Items {
		fmt.Fprintf(tw, "%d\t%s (%s)\t%s\t%s\t%s\t%s\n",
			offset+i+1,
			c.Name, strings.ToUpper(c.Symbol),
			format.Currency(c.CurrentPrice, ccy),
			format.SignedPercentage(c.PriceChange24h),
			format.Number(c.MarketCap),
			format.Number(c.TotalVolume),
		)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Page %d of %d (%d coins)\n", p.Page, p.TotalPages, p.Total)
}

func renderSearch(w io.Writer, refs []domain.CoinRef) {
	if len(refs) == 0 {
		fmt.Fprintln(w, "No coins found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSYMBOL\tNAME\tRANK")
	for _, r := range refs {
		rank := format.Placeholder
		if r.MarketCapRank > 0 {
			rank = fmt.Sprint(r.MarketCapRank)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, strings.ToUpper(r.Symbol), r.Name, rank)
	}
	_ = tw.Flush()
}

func renderCoin(w io.Writer, d domain.CoinDetail, ccy string) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Name\t%s (%s)\n", d.Name, strings.ToUpper(d.Symbol))
	if d.MarketCapRank > 0 {
		fmt.Fprintf(tw, "Rank\t#%d\n", d.MarketCapRank)
	}
	fmt.Fprintf(tw, "Price\t%s\n", format.OptionalCurrency(d.CurrentPrice, ccy))
	fmt.Fprintf(tw, "24h change\t%s\n", format.SignedPercentage(d.PriceChange24h))
	fmt.Fprintf(tw, "Market cap\t%s\n", format.OptionalCurrency(d.MarketCap, ccy))
	fmt.Fprintf(tw, "Volume 24h\t%s\n", format.OptionalCurrency(d.TotalVolume, ccy))
	fmt.Fprintf(tw, "Circulating\t%s\n", optionalNumber(d.CirculatingSupply))
	fmt.Fprintf(tw, "Total supply\t%s\n", optionalNumber(d.TotalSupply))
	fmt.Fprintf(tw, "Max supply\t%s\n", optionalNumber(d.MaxSupply))
	if len(d.Homepage) > 0 {
		fmt.Fprintf(tw, "Homepage\t%s\n", d.Homepage[0])
	}
	_ = tw.Flush()
}

func renderChart(w io.Writer, points []domain.ChartPoint, ccy string) {
	if len(points) == 0 {
		fmt.Fprintln(w, "No data")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tPRICE")
	for _, p := range points {
		fmt.Fprintf(tw, "%s\t%s\n", p.Date, format.Currency(p.Price, ccy))
	}
	_ = tw.Flush()
}

func optionalNumber(o domain.OptionalFloat) string {
	v, ok := o.Get()
	if !ok {
		return format.Placeholder
	}
	return format.Number(v)
}
