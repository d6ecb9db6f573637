package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"insider-tracker/config"
	"insider-tracker/models"
	"insider-tracker/scraper/finviz"
	"insider-tracker/services"
	"insider-tracker/storage"
	"insider-tracker/utils"
)

const (
	exitOK      = 0
	exitNetwork = 1
	exitParse   = 2
	exitConfig  = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return exitConfig
	}

	fs := flag.NewFlagSet("insider-tracker", flag.ContinueOnError)
	fs.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "Significance threshold in dollars")
	fs.IntVar(&cfg.TopN, "top", cfg.TopN, "Number of top trades to list")
	fs.StringVar(&cfg.CSVOutputPath, "csv", cfg.CSVOutputPath, "Also write the top trades to this CSV file")
	browser := fs.Bool("browser", cfg.FetchMode == config.FetchModeBrowser, "Render the page in headless Chrome")
	if err := fs.Parse(args); err != nil {
		return exitConfig
	}
	if *browser {
		cfg.FetchMode = config.FetchModeBrowser
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return exitConfig
	}

	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("=== Insider Tracker starting ===")
	logger.Info("Config — threshold: %.2f | top: %d | fetch: %s | timeout: %v",
		cfg.Threshold, cfg.TopN, cfg.FetchMode, cfg.RequestTimeout)

	return execute(context.Background(), cfg, newFetcher(cfg, logger), logger, os.Stdout, time.Now())
}

func newFetcher(cfg *config.Config, logger *utils.Logger) finviz.Fetcher {
	if cfg.FetchMode == config.FetchModeBrowser {
		return finviz.NewBrowserFetcher(cfg.ChromeBin, cfg.UserAgent, logger)
	}
	return finviz.NewHTTPFetcher(cfg.RequestTimeout, cfg.UserAgent, logger)
}

// execute runs fetch → extract → clean → filter → summarize → render once
// and returns the process exit code.
func execute(ctx context.Context, cfg *config.Config, fetcher finviz.Fetcher,
	logger *utils.Logger, out io.Writer, now time.Time) int {

	ctx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	rawRows, err := finviz.New(fetcher, logger).Scrape(ctx)
	if err != nil {
		var nerr *finviz.NetworkError
		var perr *finviz.ParseError
		switch {
		case errors.As(err, &nerr):
			logger.Error("Could not fetch insider trading data: %v", err)
			return exitNetwork
		case errors.As(err, &perr):
			logger.Error("Insider trading table not found, the page format may have changed: %v", err)
			return exitParse
		default:
			logger.Error("Scrape failed: %v", err)
			return exitNetwork
		}
	}

	cleaner := services.NewCleaner(logger)
	trades := cleaner.Clean(rawRows)

	filters := cfg.Filters()
	if !filters.IsZero() {
		before := len(trades)
		trades = services.ApplyFilters(trades, filters, now)
		logger.Info("[filter] Kept %d of %d trades", len(trades), before)
	}

	summary := services.Summarize(trades, services.SummaryConfig{
		Threshold: cfg.ThresholdDecimal(),
		TopN:      cfg.TopN,
	})

	if _, err := io.WriteString(out, services.Render(summary)); err != nil {
		logger.Error("Failed to write report: %v", err)
	}

	if cfg.CSVOutputPath != "" {
		if err := exportCSV(cfg.CSVOutputPath, summary.TopTrades); err != nil {
			logger.Error("CSV export failed: %v", err)
		} else {
			logger.Info("Top trades saved to %s", cfg.CSVOutputPath)
		}
	}

	return exitOK
}

func exportCSV(path string, trades []models.Trade) error {
	w, err := storage.NewCSVWriter(path)
	if err != nil {
		return err
	}
	return writeAndClose(w, trades)
}

func writeAndClose(w storage.TradeWriter, trades []models.Trade) error {
	if err := w.WriteTrades(trades); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
