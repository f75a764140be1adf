package pipeline

import (
	"cmp"
	"slices"
	"strings"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/consts"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
)

// Page - результат проекции: одна страница отсортированного списка
type Page struct {
	Items      []domain.Coin
	Total      int // количество монет после поиска и фильтра
	TotalPages int
	Page       int
	PageSize   int
}

type comparator func(a, b domain.Coin) int

func change(c domain.Coin) float64 { return c.PriceChange24h.Or(0) }

var comparators = map[SortKey]comparator{
	SortMarketCapDesc: func(a, b domain.Coin) int { return cmp.Compare(b.MarketCap, a.MarketCap) },
	SortMarketCapAsc:  func(a, b domain.Coin) int { return cmp.Compare(a.MarketCap, b.MarketCap) },
	SortPriceDesc:     func(a, b domain.Coin) int { return cmp.Compare(b.CurrentPrice, a.CurrentPrice) },
	SortPriceAsc:      func(a, b domain.Coin) int { return cmp.Compare(a.CurrentPrice, b.CurrentPrice) },
	SortChangeDesc:    func(a, b domain.Coin) int { return cmp.Compare(change(b), change(a)) },
	SortChangeAsc:     func(a, b domain.Coin) int { return cmp.Compare(change(a), change(b)) },
	SortVolumeDesc:    func(a, b domain.Coin) int { return cmp.Compare(b.TotalVolume, a.TotalVolume) },
	SortVolumeAsc:     func(a, b domain.Coin) int { return cmp.Compare(a.TotalVolume, b.TotalVolume) },
}

// Project - поиск -> фильтр по движению -> стабильная сортировка -> страница.
// Входной срез не изменяется. Порядок шагов влияет на Total и сохраняется.
func Project(coins []domain.Coin, v View) Page {
	list := Filter(coins, v.Search, v.Movement)
	Sort(list, v.Sort)
	return Paginate(list, v.Page, v.PageSize)
}

// Filter - шаги поиска и фильтра; всегда возвращает новый срез.
// Запрос сравнивается как есть, без обрезки пробелов: всё пропускает только пустой.
func Filter(coins []domain.Coin, search string, m Movement) []domain.Coin {
	q := strings.ToLower(search)
	out := make([]domain.Coin, 0, len(coins))
	for _, c := range coins {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Symbol), q) {
			continue
		}
		switch m {
		case MovementGainers:
			if change(c) <= 0 {
				continue
			}
		case MovementLosers:
			if change(c) >= 0 {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// Sort сортирует срез на месте; неизвестный ключ - сортировка по умолчанию.
func Sort(list []domain.Coin, key SortKey) {
	cmpFn, ok := comparators[key]
	if !ok {
		cmpFn = comparators[SortMarketCapDesc]
	}
	slices.SortStableFunc(list, cmpFn)
}

// Paginate режет список на страницы; страница за пределами диапазона пустая.
func Paginate(list []domain.Coin, page, size int) Page {
	if size <= 0 {
		size = consts.PageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(list)
	res := Page{
		Items:      []domain.Coin{},
		Total:      total,
		TotalPages: (total + size - 1) / size,
		Page:       page,
		PageSize:   size,
	}
	start := (page - 1) * size
	if start >= total {
		return res
	}
	end := min(start+size, total)
	res.Items = slices.Clone(list[start:end])
	return res
}
