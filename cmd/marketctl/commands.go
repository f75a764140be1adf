package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/config"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/consts"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/infra/coingecko"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/internal/pipeline"
	"github.com/NastyaGoryachaya/crypto-market-dashboard/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// env — то, что нужно каждой команде
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	client *coingecko.Client
}

func setup(cmd *cobra.Command) (*env, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyOverrides(cfg, flags)

	return &env{
		cfg:    cfg,
		log:    logger.NewWithWriter(&cfg.Logger, os.Stderr),
		client: coingecko.NewClient(cfg.CoinGecko),
	}, nil
}

// applyOverrides — флаги командной строки важнее файла и окружения
func applyOverrides(cfg *config.Config, flags *pflag.FlagSet) {
	if v, _ := flags.GetString("currency"); v != "" {
		cfg.Dashboard.Currency = strings.ToLower(v)
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.Logger.Level = v
	}
	if cfg.Dashboard.Currency == "" {
		cfg.Dashboard.Currency = consts.Currency
	}
	if cfg.Dashboard.TopCoins <= 0 {
		cfg.Dashboard.TopCoins = consts.TopCoins
	}
}

// viewFromFlags — состояние списка из флагов команды top
func viewFromFlags(flags *pflag.FlagSet, defaultPageSize int) (pipeline.View, error) {
	view := pipeline.DefaultView()
	if defaultPageSize > 0 {
		view.PageSize = defaultPageSize
	}

	only, _ := flags.GetString("only")
	m, err := pipeline.ParseMovement(only)
	if err != nil {
		return view, fmt.Errorf("--only %q: %w", only, err)
	}
	order, _ := flags.GetString("order")
	key, err := pipeline.ParseSortKey(order)
	if err != nil {
		return view, fmt.Errorf("--order %q: %w", order, err)
	}
	search, _ := flags.GetString("search")

	view.SetSearch(search)
	view.SetMovement(m)
	view.SetSort(key)

	if page, _ := flags.GetInt("page"); page > 0 {
		view.Page = page
	}
	if size, _ := flags.GetInt("per-page"); size > 0 {
		view.PageSize = size
	}
	return view, nil
}

func runTop(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	view, err := viewFromFlags(cmd.Flags(), e.cfg.Dashboard.PageSize)
	if err != nil {
		return err
	}

	ccy := e.cfg.Dashboard.Currency
	coins, err := e.client.FetchTopCoins(cmd.Context(), 1, e.cfg.Dashboard.TopCoins, ccy)
	if err != nil {
		e.log.Error("fetch top coins failed", slog.String("error", err.Error()))
		return err
	}
	renderTop(cmd.OutOrStdout(), pipeline.Project(coins, view), ccy)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	refs, err := e.client.SearchCoins(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	renderSearch(cmd.OutOrStdout(), refs)
	return nil
}

func runCoin(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	ccy := e.cfg.Dashboard.Currency
	d, err := e.client.FetchCoinDetail(cmd.Context(), strings.ToLower(args[0]), ccy)
	if err != nil {
		return err
	}
	renderCoin(cmd.OutOrStdout(), d, ccy)
	return nil
}

func runChart(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	days, _ := cmd.Flags().GetInt("days")
	if days < 1 || days > consts.MaxChartDays {
		return fmt.Errorf("--days must be in 1..%d", consts.MaxChartDays)
	}
	ccy := e.cfg.Dashboard.Currency
	points, err := e.client.FetchCoinChart(cmd.Context(), strings.ToLower(args[0]), days, ccy)
	if err != nil {
		return err
	}
	renderChart(cmd.OutOrStdout(), points, ccy)
	return nil
}
