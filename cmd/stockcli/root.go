package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"stock_market/internal/app/config"
	"stock_market/internal/app/di"
	"stock_market/internal/feature/dailyprices/chart"
	dailyusecase "stock_market/internal/feature/dailyprices/usecase"
	"stock_market/internal/feature/symbolsearch/domain/entity"
	"stock_market/internal/platform/logger"
	"stock_market/internal/platform/render"
	"stock_market/internal/shared/apierr"
)

// searcher と dailyFetcher はコマンドが使うユースケースです。テストで差し替えます。
type searcher interface {
	Search(ctx context.Context, company string) (entity.MatchTable, error)
}

type dailyFetcher interface {
	GetDailyPrices(ctx context.Context, symbol string) (dailyusecase.DailyPrices, error)
}

type app struct {
	search searcher
	daily  dailyFetcher
	logs   io.Closer
}

// close はログファイルを閉じます。ログファイルを開いていなければ何もしません。
func (a *app) close() error {
	if a.logs == nil {
		return nil
	}
	return a.logs.Close()
}

var errReported = errors.New("reported")

func newRootCmd(a *app) *cobra.Command {
	var (
		configPath string
		envFile    string
	)

	root := &cobra.Command{
		Use:           "stockcli",
		Short:         "Stock Market Details: symbol search and daily prices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.search != nil && a.daily != nil {
				return nil
			}
			cfg, err := config.Load(configPath, envFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			level, _ := cfg.LogLevel()
			closer, err := logger.Setup(cfg.Log.Dir, level)
			if err != nil {
				return err
			}
			a.logs = closer
			ucs := di.NewUsecases(cfg.RapidAPIConfig())
			a.search, a.daily = ucs.Search, ucs.Daily
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")
	root.PersistentFlags().StringVar(&envFile, "env", ".env", "path to the .env file")

	root.AddCommand(newSearchCmd(a), newDailyCmd(a))
	return root
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <company name>",
		Short: "Search ticker symbols by company name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.search.Search(cmd.Context(), args[0])
			if err != nil {
				return report(cmd.ErrOrStderr(), err, "symbol search data")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Response:")
			render.Matches(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

func newDailyCmd(a *app) *cobra.Command {
	var chartOut string

	cmd := &cobra.Command{
		Use:   "daily <symbol>",
		Short: "Show daily OHLC prices and write a candlestick chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.daily.GetDailyPrices(cmd.Context(), args[0])
			if err != nil {
				return report(cmd.ErrOrStderr(), err, "daily stock data")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Response:")
			render.DailySeries(cmd.OutOrStdout(), res.Series)

			if chartOut == "" {
				return nil
			}
			if res.ChartErr != nil {
				return report(cmd.ErrOrStderr(), res.ChartErr, "chart")
			}
			return writeFigure(chartOut, chart.NewCandlestickFigure(res.Series.Symbol, res.Chart))
		},
	}
	cmd.Flags().StringVar(&chartOut, "chart-out", "", "write the candlestick chart (Plotly JSON) to this file")
	return cmd
}

// report は利用者向けのメッセージを出力します。原因の詳細はログに出力済みです。
func report(w io.Writer, err error, what string) error {
	fmt.Fprintln(w, apierr.UserMessage(err, what))
	return errReported
}

func writeFigure(path string, fig chart.Figure) error {
	b, err := json.MarshalIndent(fig, "", "  ")
	if err != nil {
		return fmt.Errorf("encode chart: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
