package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"insider-tracker/models"
)

// SummaryConfig is passed explicitly so Summarize stays a pure function.
type SummaryConfig struct {
	Threshold decimal.Decimal
	TopN      int
}

// Summarize counts trades, counts those strictly above the threshold and
// ranks the top N by value. Equal values keep their input order.
// The input slice is not modified.
func Summarize(trades []models.Trade, cfg SummaryConfig) models.Summary {
	topN := cfg.TopN
	if topN < 0 {
		topN = 0
	}

	s := models.Summary{
		TotalCount: len(trades),
		TotalValue: decimal.Zero,
		Threshold:  cfg.Threshold,
		TopN:       topN,
	}

	for _, t := range trades {
		s.TotalValue = s.TotalValue.Add(t.Value)
		if t.Value.GreaterThan(cfg.Threshold) {
			s.SignificantCount++
		}
	}

	ranked := make([]models.Trade, len(trades))
	copy(ranked, trades)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value.GreaterThan(ranked[j].Value)
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	s.TopTrades = ranked

	return s
}
