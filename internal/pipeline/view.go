package pipeline

import (
	"errors"
	"strings"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/consts"
)

var (
	ErrInvalidMovement = errors.New("invalid movement filter")
	ErrInvalidSortKey  = errors.New("invalid sort key")
)

// Movement - фильтр по знаку изменения цены за 24ч
type Movement string

const (
	MovementAll     Movement = "all"
	MovementGainers Movement = "gainers"
	MovementLosers  Movement = "losers"
)

// SortKey - ключ сортировки списка монет
type SortKey string

const (
	SortMarketCapDesc SortKey = "market_cap_desc"
	SortMarketCapAsc  SortKey = "market_cap_asc"
	SortPriceDesc     SortKey = "price_desc"
	SortPriceAsc      SortKey = "price_asc"
	SortChangeDesc    SortKey = "price_change_percentage_24h_desc"
	SortChangeAsc     SortKey = "price_change_percentage_24h_asc"
	SortVolumeDesc    SortKey = "volume_desc"
	SortVolumeAsc     SortKey = "volume_asc"
)

// SortKeys - все поддерживаемые ключи в порядке показа
var SortKeys = []SortKey{
	SortMarketCapDesc, SortMarketCapAsc,
	SortPriceDesc, SortPriceAsc,
	SortChangeDesc, SortChangeAsc,
	SortVolumeDesc, SortVolumeAsc,
}

// ParseMovement - пустая строка означает "all"
func ParseMovement(s string) (Movement, error) {
	switch Movement(strings.ToLower(strings.TrimSpace(s))) {
	case "", MovementAll:
		return MovementAll, nil
	case MovementGainers:
		return MovementGainers, nil
	case MovementLosers:
		return MovementLosers, nil
	default:
		return "", ErrInvalidMovement
	}
}

// ParseSortKey - пустая строка означает сортировку по капитализации (убывание)
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return SortMarketCapDesc, nil
	}
	if _, ok := comparators[k]; !ok {
		return "", ErrInvalidSortKey
	}
	return k, nil
}

// View - пользовательское состояние списка: поиск, фильтр, сортировка, страница.
// Смена поиска, фильтра или сортировки возвращает на первую страницу.
type View struct {
	Search   string
	Movement Movement
	Sort     SortKey
	Page     int
	PageSize int
}

// DefaultView - состояние в начале сессии
func DefaultView() View {
	return View{
		Movement: MovementAll,
		Sort:     SortMarketCapDesc,
		Page:     1,
		PageSize: consts.PageSize,
	}
}

func (v *View) SetSearch(q string) {
	if v.Search != q {
		v.Search = q
		v.Page = 1
	}
}

func (v *View) SetMovement(m Movement) {
	if v.Movement != m {
		v.Movement = m
		v.Page = 1
	}
}

func (v *View) SetSort(k SortKey) {
	if v.Sort != k {
		v.Sort = k
		v.Page = 1
	}
}
