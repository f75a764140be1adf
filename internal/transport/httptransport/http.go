package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/consts"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/interfaces"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pipeline"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/ports/errcode"
	"github.com/labstack/echo/v4"
)

const maxPerPage = 250

// Router — то, что умеют и *echo.Echo, и *echo.Group
type Router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// MarketHandler — HTTP‑handler дашборда: список, статус, обновление, карточка монеты.
type MarketHandler struct {
	logger   *slog.Logger
	market   interfaces.Market
	catalog  interfaces.CoinCatalog
	timeout  time.Duration
	pageSize int
}

func NewMarketHandler(logger *slog.Logger, m interfaces.Market, catalog interfaces.CoinCatalog, timeout time.Duration, pageSize int) *MarketHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if m == nil || catalog == nil {
		log.Fatal("nil market service")
	}
	// Задаём значения по умолчанию, если они не заданы
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if pageSize <= 0 {
		pageSize = consts.PageSize
	}
	return &MarketHandler{
		logger:   logger,
		market:   m,
		catalog:  catalog,
		timeout:  timeout,
		pageSize: pageSize,
	}
}

func (h *MarketHandler) RegisterRoutes(r Router) {
	r.GET("/coins", h.GetCoins)
	r.GET("/coins/:id", h.GetCoin)
	r.GET("/coins/:id/chart", h.GetChart)
	r.GET("/status", h.GetStatus)
	r.GET("/stats", h.GetStats)
	r.GET("/search", h.Search)
	r.POST("/refresh", h.Refresh)
}

// GetCoins — текущий список через фильтр, сортировку и пагинацию.
// Запрос к API не выполняется.
func (h *MarketHandler) GetCoins(c echo.Context) error {
	view := pipeline.DefaultView()
	view.PageSize = h.pageSize

	m, err := pipeline.ParseMovement(c.QueryParam("only"))
	if err != nil {
		return badRequest(c, "only", err)
	}
	key, err := pipeline.ParseSortKey(c.QueryParam("order"))
	if err != nil {
		return badRequest(c, "order", err)
	}
	view.SetSearch(c.QueryParam("search"))
	view.SetMovement(m)
	view.SetSort(key)

	if raw := c.QueryParam("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": errcode.BadRequest, "field": "page"})
		}
		view.Page = p
	}
	if raw := c.QueryParam("per_page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPerPage {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": errcode.BadRequest, "field": "per_page"})
		}
		view.PageSize = n
	}

	st := h.market.State()
	page := pipeline.Project(st.Coins, view)
	return c.JSON(http.StatusOK, makeCoinsPage(page, st, h.market.Currency()))
}

func (h *MarketHandler) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, makeStatus(h.market.State(), h.market.Currency()))
}

func (h *MarketHandler) GetStats(c echo.Context) error {
	st := h.market.State()
	return c.JSON(http.StatusOK, makeStats(pipeline.Summarize(st.Coins), h.market.Currency()))
}

// Refresh — ручное обновление. При ошибке прежний список сохраняется
// и возвращается вместе с кодом 502.
func (h *MarketHandler) Refresh(c echo.Context) error {
	err := h.market.Refresh(c.Request().Context())
	status := makeStatus(h.market.State(), h.market.Currency())
	if err == nil {
		return c.JSON(http.StatusOK, status)
	}

	code := FromServiceError(err)
	if code == errcode.Superseded {
		return c.JSON(http.StatusAccepted, echo.Map{"error": code, "status": status})
	}
	h.logger.Error("Refresh failed",
		slog.String("op", "Refresh"),
		slog.String("error", err.Error()),
	)
	return c.JSON(HTTPStatus(code), echo.Map{"error": code, "status": status})
}

func (h *MarketHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": errcode.BadRequest, "field": "query"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	refs, err := h.catalog.SearchCoins(ctx, query)
	if err != nil {
		return h.fail(c, "Search", err, echo.Map{"query": query})
	}
	return c.JSON(http.StatusOK, refs)
}

func (h *MarketHandler) GetCoin(c echo.Context) error {
	id := strings.ToLower(strings.TrimSpace(c.Param("id")))
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": errcode.BadRequest, "field": "id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	detail, err := h.catalog.FetchCoinDetail(ctx, id, h.market.Currency())
	if err != nil {
		return h.fail(c, "GetCoin", err, echo.Map{"id": id})
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *MarketHandler) GetChart(c echo.Context) error {
	id := strings.ToLower(strings.TrimSpace(c.Param("id")))
	days := consts.ChartDays
	if raw := c.QueryParam("days"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 1 || d > consts.MaxChartDays {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": errcode.BadRequest, "field": "days"})
		}
		days = d
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	points, err := h.catalog.FetchCoinChart(ctx, id, days, h.market.Currency())
	if err != nil {
		return h.fail(c, "GetChart", err, echo.Map{"id": id})
	}
	return c.JSON(http.StatusOK, points)
}

func (h *MarketHandler) fail(c echo.Context, op string, err error, extra echo.Map) error {
	code := FromServiceError(err)
	status := HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		h.logger.Error(op+" failed",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
	}
	body := echo.Map{"error": code}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(status, body)
}

func badRequest(c echo.Context, field string, err error) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error":   errcode.BadRequest,
		"field":   field,
		"message": err.Error(),
	})
}
