package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "marketctl",
		Short:        "Crypto market dashboard in the terminal",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path (default $CONFIG_PATH)")
	root.PersistentFlags().String("currency", "", "quote currency, overrides config (usd, eur, ...)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Show top coins by market cap",
		Args:  cobra.NoArgs,
		RunE:  runTop,
	}
	topCmd.Flags().String("search", "", "filter by name or symbol")
	topCmd.Flags().String("only", "all", "movement filter (all, gainers, losers)")
	topCmd.Flags().String("order", "market_cap_desc", "sort key")
	topCmd.Flags().Int("page", 1, "page number")
	topCmd.Flags().Int("per-page", 0, "page size, 0 means config value")
	root.AddCommand(topCmd)

	root.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Search coins on CoinGecko",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	})

	root.AddCommand(&cobra.Command{
		Use:   "coin <id>",
		Short: "Show coin details",
		Args:  cobra.ExactArgs(1),
		RunE:  runCoin,
	})

	chartCmd := &cobra.Command{
		Use:   "chart <id>",
		Short: "Show price history",
		Args:  cobra.ExactArgs(1),
		RunE:  runChart,
	}
	chartCmd.Flags().Int("days", 7, "number of days")
	root.AddCommand(chartCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
