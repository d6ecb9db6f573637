package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"insider-tracker/models"
)

func filterFixture() []models.Trade {
	day := func(d int) time.Time { return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC) }
	return []models.Trade{
		{Seq: 0, Ticker: "AAPL", Date: day(17), Transaction: models.TransactionSale, Value: decimal.NewFromInt(2500000)},
		{Seq: 1, Ticker: "KO", Date: day(16), Transaction: models.TransactionBuy, Value: decimal.NewFromInt(66500)},
		{Seq: 2, Ticker: "NVDA", Date: day(5), Transaction: models.TransactionBuy, Value: decimal.NewFromInt(3000000)},
		{Seq: 3, Ticker: "TSLA", Date: day(10), Transaction: models.TransactionOptionExercise, Value: decimal.NewFromInt(1000000)},
	}
}

func tickersOf(trades []models.Trade) []string {
	out := make([]string, 0, len(trades))
	for _, t := range trades {
		out = append(out, t.Ticker)
	}
	return out
}

func TestApplyFilters(t *testing.T) {
	asOf := time.Date(2025, 10, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		opts models.FilterOptions
		want []string
	}{
		{"no filters", models.FilterOptions{}, []string{"AAPL", "KO", "NVDA", "TSLA"}},
		{"buys only", models.FilterOptions{TransactionTypes: []models.TransactionType{models.TransactionBuy}}, []string{"KO", "NVDA"}},
		{"min value inclusive", models.FilterOptions{MinValue: decimal.NewFromInt(1000000)}, []string{"AAPL", "NVDA", "TSLA"}},
		{"last 10 days", models.FilterOptions{MaxAgeDays: 10}, []string{"AAPL", "KO", "TSLA"}},
		{"last 5 days", models.FilterOptions{MaxAgeDays: 5}, []string{"AAPL", "KO"}},
		{"tickers case-insensitive", models.FilterOptions{Tickers: []string{"nvda", "KO"}}, []string{"KO", "NVDA"}},
		{"large recent buys", models.FilterOptions{
			TransactionTypes: []models.TransactionType{models.TransactionBuy},
			MinValue:         decimal.NewFromInt(1000000),
			MaxAgeDays:       10,
		}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(filterFixture(), tt.opts, asOf)
			assert.Equal(t, tt.want, tickersOf(got))
		})
	}
}

func TestApplyFiltersNoOptionsReturnsInput(t *testing.T) {
	in := filterFixture()
	out := ApplyFilters(in, models.FilterOptions{}, time.Now())
	assert.Equal(t, in, out)
}
