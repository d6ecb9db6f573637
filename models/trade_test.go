package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		in   string
		want TransactionType
	}{
		{"Buy", TransactionBuy},
		{"buy", TransactionBuy},
		{"Purchase", TransactionBuy},
		{"PURCHASE", TransactionBuy},
		{"Sale", TransactionSale},
		{"Sell", TransactionSale},
		{"SELL", TransactionSale},
		{"Option Exercise", TransactionOptionExercise},
		{"option   exercise", TransactionOptionExercise},
		{" OPTION EXERCISE ", TransactionOptionExercise},
		{"Option\nExercise", TransactionOptionExercise},
		{"Proposed Sale", TransactionOther},
		{"Gift", TransactionOther},
		{"", TransactionOther},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTransactionType(tt.in))
		})
	}
}

func TestParseTransactionTypeRoundTripsLabels(t *testing.T) {
	for _, tt := range TransactionTypes {
		assert.Equal(t, tt, ParseTransactionType(string(tt)))
	}
}

func TestFilterOptionsIsZero(t *testing.T) {
	assert.True(t, FilterOptions{}.IsZero())
	assert.True(t, FilterOptions{MinValue: decimal.Zero}.IsZero())

	assert.False(t, FilterOptions{TransactionTypes: []TransactionType{TransactionBuy}}.IsZero())
	assert.False(t, FilterOptions{MinValue: decimal.NewFromInt(1)}.IsZero())
	assert.False(t, FilterOptions{MaxAgeDays: 7}.IsZero())
	assert.False(t, FilterOptions{Tickers: []string{"AAPL"}}.IsZero())
}
