package services

import (
	"strings"
	"time"

	"insider-tracker/models"
)

// ApplyFilters keeps the trades matching every active option, preserving
// order. asOf anchors MaxAgeDays. With no active option the input slice is
// returned as is.
func ApplyFilters(trades []models.Trade, opts models.FilterOptions, asOf time.Time) []models.Trade {
	if opts.IsZero() {
		return trades
	}

	types := make(map[models.TransactionType]struct{}, len(opts.TransactionTypes))
	for _, tt := range opts.TransactionTypes {
		types[tt] = struct{}{}
	}
	tickers := make(map[string]struct{}, len(opts.Tickers))
	for _, t := range opts.Tickers {
		tickers[strings.ToUpper(t)] = struct{}{}
	}
	var cutoff time.Time
	if opts.MaxAgeDays > 0 {
		cutoff = asOf.AddDate(0, 0, -opts.MaxAgeDays)
	}

	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if len(types) > 0 {
			if _, ok := types[t.Transaction]; !ok {
				continue
			}
		}
		if len(tickers) > 0 {
			if _, ok := tickers[t.Ticker]; !ok {
				continue
			}
		}
		if t.Value.LessThan(opts.MinValue) {
			continue
		}
		if !cutoff.IsZero() && !t.Date.After(cutoff) {
			continue
		}
		out = append(out, t)
	}
	return out
}
