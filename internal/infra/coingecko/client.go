package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/config"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/domain"
	errs "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/errors"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pkg/format"
)

// coinIDPattern - id монет CoinGecko: строчные латинские буквы, цифры, дефис
var coinIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

const defaultUserAgent = "crypto-market-dashboard/1.0 (+https://github.com/NastyaGoryachaya/crypto-market-dashboard)"

// Client - клиент публичного REST API CoinGecko (только чтение)
type Client struct {
	cfg        config.CoinGeckoConfig
	httpClient *http.Client
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg config.CoinGeckoConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchTopCoins - /coins/markets, монеты по убыванию капитализации
func (c *Client) FetchTopCoins(ctx context.Context, page, perPage int, currency string) ([]domain.Coin, error) {
	q := url.Values{}
	q.Set("vs_currency", strings.ToLower(currency))
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	q.Set("sparkline", "false")
	q.Set("price_change_percentage", "24h")

	var data []domain.Coin
	if err := c.get(ctx, q, &data, "coins", "markets"); err != nil {
		return nil, err
	}
	if err := validateCoins(data); err != nil {
		return nil, err
	}
	return data, nil
}

// searchResponse - ответ /search, нас интересуют только монеты
type searchResponse struct {
	Coins []domain.CoinRef `json:"coins"`
}

// SearchCoins - /search?query=
func (c *Client) SearchCoins(ctx context.Context, query string) ([]domain.CoinRef, error) {
	q := url.Values{}
	q.Set("query", query)

	var data searchResponse
	if err := c.get(ctx, q, &data, "search"); err != nil {
		return nil, err
	}
	if data.Coins == nil {
		return []domain.CoinRef{}, nil
	}
	return data.Coins, nil
}

// detailResponse - нужная часть ответа /coins/{id}
type detailResponse struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	MarketCapRank int    `json:"market_cap_rank"`
	Description   struct {
		En string `json:"en"`
	} `json:"description"`
	Links struct {
		Homepage []string `json:"homepage"`
	} `json:"links"`
	Image struct {
		Large string `json:"large"`
	} `json:"image"`
	MarketData struct {
		CurrentPrice      map[string]float64   `json:"current_price"`
		MarketCap         map[string]float64   `json:"market_cap"`
		TotalVolume       map[string]float64   `json:"total_volume"`
		PriceChange24h    domain.OptionalFloat `json:"price_change_percentage_24h"`
		CirculatingSupply domain.OptionalFloat `json:"circulating_supply"`
		TotalSupply       domain.OptionalFloat `json:"total_supply"`
		MaxSupply         domain.OptionalFloat `json:"max_supply"`
	} `json:"market_data"`
	LastUpdated string `json:"last_updated"`
}

// FetchCoinDetail - /coins/{id}; значения рынка берутся в валюте currency
func (c *Client) FetchCoinDetail(ctx context.Context, id, currency string) (domain.CoinDetail, error) {
	if err := checkCoinID(id); err != nil {
		return domain.CoinDetail{}, err
	}
	q := url.Values{}
	q.Set("localization", "false")
	q.Set("tickers", "false")
	q.Set("market_data", "true")
	q.Set("community_data", "true")
	q.Set("developer_data", "true")
	q.Set("sparkline", "false")

	var data detailResponse
	if err := c.get(ctx, q, &data, "coins", id); err != nil {
		return domain.CoinDetail{}, err
	}
	if data.ID == "" {
		return domain.CoinDetail{}, fmt.Errorf("%w: detail without id", errs.ErrMalformedResponse)
	}

	ccy := strings.ToLower(currency)
	out := domain.CoinDetail{
		ID:                data.ID,
		Symbol:            data.Symbol,
		Name:              data.Name,
		Description:       data.Description.En,
		Homepage:          nonEmpty(data.Links.Homepage),
		Image:             data.Image.Large,
		MarketCapRank:     data.MarketCapRank,
		CurrentPrice:      lookup(data.MarketData.CurrentPrice, ccy),
		MarketCap:         lookup(data.MarketData.MarketCap, ccy),
		TotalVolume:       lookup(data.MarketData.TotalVolume, ccy),
		PriceChange24h:    data.MarketData.PriceChange24h,
		CirculatingSupply: data.MarketData.CirculatingSupply,
		TotalSupply:       data.MarketData.TotalSupply,
		MaxSupply:         data.MarketData.MaxSupply,
	}
	if ts, err := time.Parse(time.RFC3339, data.LastUpdated); err == nil {
		out.LastUpdated = ts
	}
	return out, nil
}

type chartResponse struct {
	Prices [][2]float64 `json:"prices"`
}

// FetchCoinChart - /coins/{id}/market_chart, цены за days дней
func (c *Client) FetchCoinChart(ctx context.Context, id string, days int, currency string) ([]domain.ChartPoint, error) {
	if err := checkCoinID(id); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("vs_currency", strings.ToLower(currency))
	q.Set("days", strconv.Itoa(days))

	var data chartResponse
	if err := c.get(ctx, q, &data, "coins", id, "market_chart"); err != nil {
		return nil, err
	}
	return format.ChartPoints(data.Prices), nil
}

// get - общий GET: сеть и не-2xx -> ErrFetchFailed, 404 -> ErrCoinNotFound, плохой JSON -> ErrMalformedResponse
func (c *Client) get(ctx context.Context, q url.Values, dst any, path ...string) error {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath(path...)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	ua := c.cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	if c.cfg.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %w", errs.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && len(path) > 1 && path[0] == "coins" && path[1] != "markets" {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s", errs.ErrCoinNotFound, path[1])
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s", errs.ErrFetchFailed, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) {
			return fmt.Errorf("%w: reading body: %w", errs.ErrFetchFailed, err)
		}
		return fmt.Errorf("%w: decoding response: %w", errs.ErrMalformedResponse, err)
	}
	return nil
}

// checkCoinID - id попадает в путь запроса, поэтому только допустимые символы
func checkCoinID(id string) error {
	if !coinIDPattern.MatchString(id) {
		return fmt.Errorf("%w: invalid id %q", errs.ErrCoinNotFound, id)
	}
	return nil
}

// validateCoins - у каждой монеты должен быть непустой уникальный id
func validateCoins(coins []domain.Coin) error {
	seen := make(map[string]struct{}, len(coins))
	for i, c := range coins {
		if c.ID == "" {
			return fmt.Errorf("%w: coin #%d without id", errs.ErrMalformedResponse, i)
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("%w: duplicate coin id %q", errs.ErrMalformedResponse, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

func lookup(m map[string]float64, key string) domain.OptionalFloat {
	v, ok := m[key]
	if !ok {
		return domain.None()
	}
	return domain.Some(v)
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
