package pipeline

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
)

func coin(id string, mc, price, vol float64, ch domain.OptionalFloat) domain.Coin {
	return domain.Coin{ID: id, Name: id, Symbol: id, MarketCap: mc, CurrentPrice: price, TotalVolume: vol, PriceChange24h: ch}
}

func ids(list []domain.Coin) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func sample() []domain.Coin {
	return []domain.Coin{
		coin("a", 100, 5, 30, domain.Some(2.5)),
		coin("b", 50, 10, 10, domain.Some(-1)),
		coin("c", 200, 1, 20, domain.None()),
		coin("d", 75, 7, 40, domain.Some(0)),
		coin("e", 10, 3, 50, domain.Some(-4)),
	}
}

func allView() View {
	v := DefaultView()
	v.PageSize = 100
	return v
}

// При пустом поиске и фильтре "all" результат - перестановка входа
func TestProject_AllIsPermutation(t *testing.T) {
	t.Parallel()
	in := sample()

	for _, key := range SortKeys {
		v := allView()
		v.Sort = key
		got := Project(in, v)
		if got.Total != len(in) || len(got.Items) != len(in) {
			t.Fatalf("%s: expected %d items, got %d", key, len(in), len(got.Items))
		}
		want := ids(in)
		have := ids(got.Items)
		slices.Sort(want)
		slices.Sort(have)
		if !slices.Equal(want, have) {
			t.Fatalf("%s: not a permutation: %v vs %v", key, have, want)
		}
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := sample()
	before := ids(in)

	v := allView()
	v.Sort = SortPriceAsc
	_ = Project(in, v)

	if !slices.Equal(before, ids(in)) {
		t.Fatalf("input reordered: %v", ids(in))
	}
}

func TestProject_MovementSets(t *testing.T) {
	t.Parallel()
	in := sample()

	v := allView()
	v.Movement = MovementGainers
	gainers := Project(in, v).Items
	v.Movement = MovementLosers
	losers := Project(in, v).Items

	for _, c := range gainers {
		if c.PriceChange24h.Or(0) <= 0 {
			t.Fatalf("non-gainer in gainers: %+v", c)
		}
	}
	for _, c := range losers {
		if c.PriceChange24h.Or(0) >= 0 {
			t.Fatalf("non-loser in losers: %+v", c)
		}
	}

	// объединение + монеты без изменения = весь список, пересечений нет
	seen := map[string]int{}
	for _, c := range append(gainers, losers...) {
		seen[c.ID]++
	}
	for _, c := range in {
		if c.PriceChange24h.Or(0) == 0 {
			seen[c.ID]++
		}
	}
	if len(seen) != len(in) {
		t.Fatalf("union mismatch: %v", seen)
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("coin %s counted %d times", id, n)
		}
	}

	// null и 0 не попадают ни в один из наборов
	for _, c := range append(gainers, losers...) {
		if c.ID == "c" || c.ID == "d" {
			t.Fatalf("zero/missing change leaked: %s", c.ID)
		}
	}
}

func TestProject_SearchCaseInsensitive(t *testing.T) {
	t.Parallel()
	in := []domain.Coin{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc"},
		{ID: "ethereum", Name: "Ethereum", Symbol: "eth"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"bit", []string{"bitcoin"}},
		{"BIT", []string{"bitcoin"}},
		{"ETH", []string{"ethereum"}},
		{"t", []string{"bitcoin", "ethereum"}},
		{"", []string{"bitcoin", "ethereum"}},
		{"doge", []string{}},
		// пробелы - часть запроса
		{"   ", []string{}},
		{" bit", []string{}},
	}
	for _, tt := range tests {
		v := allView()
		v.Search = tt.query
		got := ids(Project(in, v).Items)
		slices.Sort(got)
		if !slices.Equal(got, tt.want) {
			t.Errorf("query %q: got %v want %v", tt.query, got, tt.want)
		}
	}
}

// Total и TotalPages считаются после поиска с пробельным запросом
func TestProject_WhitespaceQueryTotals(t *testing.T) {
	t.Parallel()
	in := []domain.Coin{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc"},
		{ID: "ethereum", Name: "Ethereum", Symbol: "eth"},
	}
	v := DefaultView()
	v.Search = "   "
	p := Project(in, v)
	if p.Total != 0 || p.TotalPages != 0 || len(p.Items) != 0 {
		t.Fatalf("whitespace query must match nothing: %+v", p)
	}
}

func TestProject_Sort(t *testing.T) {
	t.Parallel()
	in := []domain.Coin{
		{ID: "x", MarketCap: 100, CurrentPrice: 2},
		{ID: "y", MarketCap: 50, CurrentPrice: 3},
		{ID: "z", MarketCap: 200, CurrentPrice: 1},
	}

	v := allView()
	got := Project(in, v).Items
	if mc := []float64{got[0].MarketCap, got[1].MarketCap, got[2].MarketCap}; !slices.Equal(mc, []float64{200, 100, 50}) {
		t.Fatalf("market_cap_desc: got %v", mc)
	}

	v.Sort = SortPriceAsc
	got = Project(in, v).Items
	if p := []float64{got[0].CurrentPrice, got[1].CurrentPrice, got[2].CurrentPrice}; !slices.Equal(p, []float64{1, 2, 3}) {
		t.Fatalf("price_asc: got %v", p)
	}

	v.Sort = SortPriceDesc
	got = Project(in, v).Items
	if p := []float64{got[0].CurrentPrice, got[1].CurrentPrice, got[2].CurrentPrice}; !slices.Equal(p, []float64{3, 2, 1}) {
		t.Fatalf("price_desc: got %v", p)
	}
}

func TestProject_MissingChangeSortsAsZero(t *testing.T) {
	t.Parallel()
	in := []domain.Coin{
		{ID: "neg", PriceChange24h: domain.Some(-1)},
		{ID: "nil", PriceChange24h: domain.None()},
		{ID: "pos", PriceChange24h: domain.Some(1)},
	}

	v := allView()
	v.Sort = SortChangeDesc
	if got := ids(Project(in, v).Items); !slices.Equal(got, []string{"pos", "nil", "neg"}) {
		t.Fatalf("change desc: got %v", got)
	}
	v.Sort = SortChangeAsc
	if got := ids(Project(in, v).Items); !slices.Equal(got, []string{"neg", "nil", "pos"}) {
		t.Fatalf("change asc: got %v", got)
	}
}

func TestProject_StableTies(t *testing.T) {
	t.Parallel()
	in := []domain.Coin{
		{ID: "1", TotalVolume: 5},
		{ID: "2", TotalVolume: 5},
		{ID: "3", TotalVolume: 9},
		{ID: "4", TotalVolume: 5},
	}

	v := allView()
	v.Sort = SortVolumeDesc
	if got := ids(Project(in, v).Items); !slices.Equal(got, []string{"3", "1", "2", "4"}) {
		t.Fatalf("volume desc: got %v", got)
	}
	v.Sort = SortVolumeAsc
	if got := ids(Project(in, v).Items); !slices.Equal(got, []string{"1", "2", "4", "3"}) {
		t.Fatalf("volume asc: got %v", got)
	}
}

func TestProject_Pagination(t *testing.T) {
	t.Parallel()
	in := make([]domain.Coin, 0, 7)
	for i := 0; i < 7; i++ {
		in = append(in, domain.Coin{ID: fmt.Sprint(i), MarketCap: float64(100 - i)})
	}

	v := DefaultView()
	v.PageSize = 6

	p1 := Project(in, v)
	if len(p1.Items) != 6 || p1.TotalPages != 2 || p1.Total != 7 {
		t.Fatalf("page 1: %d items, %d pages", len(p1.Items), p1.TotalPages)
	}

	v.Page = 2
	p2 := Project(in, v)
	if len(p2.Items) != 1 || p2.Items[0].ID != "6" {
		t.Fatalf("page 2: %v", ids(p2.Items))
	}

	v.Page = 3
	p3 := Project(in, v)
	if p3.Items == nil || len(p3.Items) != 0 {
		t.Fatalf("page 3 must be an empty slice, got %v", p3.Items)
	}
	if p3.TotalPages != 2 {
		t.Fatalf("page 3: total pages %d", p3.TotalPages)
	}
}

func TestProject_EmptyInput(t *testing.T) {
	t.Parallel()
	got := Project(nil, DefaultView())
	if got.Total != 0 || got.TotalPages != 0 || len(got.Items) != 0 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	if m, err := ParseMovement(""); err != nil || m != MovementAll {
		t.Fatalf("empty movement: %v %v", m, err)
	}
	if m, err := ParseMovement("Gainers"); err != nil || m != MovementGainers {
		t.Fatalf("gainers: %v %v", m, err)
	}
	if _, err := ParseMovement("up"); !errors.Is(err, ErrInvalidMovement) {
		t.Fatalf("expected ErrInvalidMovement, got %v", err)
	}
	if k, err := ParseSortKey(""); err != nil || k != SortMarketCapDesc {
		t.Fatalf("empty sort: %v %v", k, err)
	}
	if k, err := ParseSortKey("volume_asc"); err != nil || k != SortVolumeAsc {
		t.Fatalf("volume_asc: %v %v", k, err)
	}
	if _, err := ParseSortKey("name_asc"); !errors.Is(err, ErrInvalidSortKey) {
		t.Fatalf("expected ErrInvalidSortKey, got %v", err)
	}
}

func TestView_ResetsPageOnChange(t *testing.T) {
	t.Parallel()
	v := DefaultView()

	v.Page = 4
	v.SetSearch("btc")
	if v.Page != 1 {
		t.Fatalf("search change must reset page, got %d", v.Page)
	}

	v.Page = 3
	v.SetSearch("btc")
	if v.Page != 3 {
		t.Fatalf("same search must keep page, got %d", v.Page)
	}

	v.SetMovement(MovementLosers)
	if v.Page != 1 {
		t.Fatalf("movement change must reset page, got %d", v.Page)
	}

	v.Page = 2
	v.SetSort(SortVolumeAsc)
	if v.Page != 1 {
		t.Fatalf("sort change must reset page, got %d", v.Page)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	s := Summarize(sample())

	if s.TotalMarketCap != 435 || s.TotalVolume != 150 {
		t.Fatalf("totals: %v %v", s.TotalMarketCap, s.TotalVolume)
	}
	if s.Gainers != 1 || s.Losers != 2 || s.Unchanged != 2 {
		t.Fatalf("counts: %+v", s)
	}
	if s.TopGainer == nil || s.TopGainer.ID != "a" {
		t.Fatalf("top gainer: %+v", s.TopGainer)
	}
	if s.TopLoser == nil || s.TopLoser.ID != "e" {
		t.Fatalf("top loser: %+v", s.TopLoser)
	}
}
