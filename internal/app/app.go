package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/config"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/infra/coingecko"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/infra/db"
	repopg "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/repository/postgres"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/scheduler"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/service/market"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/service/subscription"
	botpkg "github.com/NastyaGoryachaya/crypto-market-dashboard/internal/transport/bot"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/transport/httptransport"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg *config.Config
	log *slog.Logger

	db   *pgxpool.Pool
	e    *echo.Echo
	serv *http.Server

	provider *market.Provider
	updater  *scheduler.Scheduler

	bot *botpkg.Bot
}

func NewApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	client := coingecko.NewClient(cfg.CoinGecko)
	app.provider = market.NewProvider(client, market.Config{
		TopCoins: cfg.Dashboard.TopCoins,
		Currency: cfg.Dashboard.Currency,
		Timeout:  cfg.CoinGecko.Timeout,
	}, log)

	if !cfg.Scheduler.Disabled {
		app.updater = scheduler.NewScheduler(app.provider, cfg.Scheduler.Interval, log)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	app.e = e

	api := e.Group("/api")
	httptransport.NewMarketHandler(log, app.provider, client, cfg.CoinGecko.Timeout, cfg.Dashboard.PageSize).RegisterRoutes(api)
	httptransport.NewStreamHandler(log, app.provider).RegisterRoutes(api)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена — ошибка конфигурации
		if strings.TrimSpace(cfg.Telegram.Token) == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			return nil, errors.New("telegram token is empty")
		}
		if err := app.initBot(ctx, client); err != nil {
			app.close()
			return nil, err
		}
	}

	log.Info("app initialized",
		slog.Bool("telegram_enabled", cfg.Telegram.Enabled),
		slog.Bool("scheduler_enabled", !cfg.Scheduler.Disabled),
		slog.String("http_addr", cfg.Server.Addr),
		slog.String("currency", app.provider.Currency()),
	)
	return app, nil
}

// initBot — бот и авторассылка; подписки хранятся в postgres
func (a *App) initBot(ctx context.Context, client *coingecko.Client) error {
	pool, err := db.NewPool(ctx, &a.cfg.Postgres)
	if err != nil {
		a.log.Error("postgres connect failed", slog.String("error", err.Error()))
		return err
	}
	a.db = pool
	if err := db.Migrate(ctx, pool); err != nil {
		a.log.Error("postgres migrate failed", slog.String("error", err.Error()))
		return err
	}

	b, err := botpkg.New(a.cfg.Telegram, a.provider, client, a.cfg.Dashboard.PageSize, a.log)
	if err != nil {
		a.log.Error("telegram init failed", slog.String("error", err.Error()))
		return err
	}
	subs := subscription.New(repopg.NewSubscriptionRepo(pool), a.provider, b, a.log)
	b.EnableSubscriptions(subs, subs, a.cfg.Telegram.DispatchPeriod)
	a.bot = b
	return nil
}

func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if a.updater != nil {
		a.log.Info("starting updater")
		g.Go(func() error {
			a.updater.Start(gctx)
			return nil
		})
	} else {
		// без планировщика список загружается один раз при старте
		g.Go(func() error {
			if err := a.provider.Refresh(gctx); err != nil {
				a.log.Warn("initial refresh failed", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		a.bot.Start(gctx)
	}

	g.Go(func() error {
		a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.Shutdown(context.Background())
	})

	return g.Wait()
}

func (a *App) Shutdown(ctx context.Context) error {
	shCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	var err error
	if a.e != nil {
		if err = a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}
	a.close()
	a.log.Info("application stopped")
	return err
}

func (a *App) close() {
	if a.bot != nil {
		a.bot.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
}
