package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RawRow holds one scraped table row keyed by column header, exactly as it
// appeared on the page. It never leaves the extractor/cleaner boundary.
type RawRow map[string]string

// Column labels of the Finviz insider-trading table.
const (
	ColTicker       = "Ticker"
	ColOwner        = "Owner"
	ColRelationship = "Relationship"
	ColDate         = "Date"
	ColTransaction  = "Transaction"
	ColCost         = "Cost"
	ColShares       = "#Shares"
	ColValue        = "Value ($)"
	ColSharesTotal  = "#Shares Total"
	ColSECForm4     = "SEC Form 4"
)

// RequiredColumns must all be present in the table header for it to be
// recognised as the insider-trading table.
var RequiredColumns = []string{
	ColTicker, ColOwner, ColRelationship, ColDate, ColTransaction, ColValue,
}

// TransactionType is the closed vocabulary of transaction kinds.
type TransactionType string

const (
	TransactionBuy            TransactionType = "Buy"
	TransactionSale           TransactionType = "Sale"
	TransactionOptionExercise TransactionType = "Option Exercise"
	TransactionOther          TransactionType = "Other"
)

// TransactionTypes lists every variant in display order.
var TransactionTypes = []TransactionType{
	TransactionBuy, TransactionSale, TransactionOptionExercise, TransactionOther,
}

// ParseTransactionType maps a site label onto the closed set.
// Unknown labels (e.g. "Proposed Sale") become TransactionOther.
func ParseTransactionType(s string) TransactionType {
	switch strings.ToLower(strings.Join(strings.Fields(s), " ")) {
	case "buy", "purchase":
		return TransactionBuy
	case "sale", "sell":
		return TransactionSale
	case "option exercise":
		return TransactionOptionExercise
	default:
		return TransactionOther
	}
}

// Trade is a cleaned insider transaction. Values are copied, never mutated.
type Trade struct {
	Seq          int
	Ticker       string
	Owner        string
	Relationship string
	Date         time.Time
	Transaction  TransactionType
	Cost         decimal.Decimal
	Shares       int64
	Value        decimal.Decimal
	SharesTotal  int64
	FiledAt      string
}

// FilterOptions narrows the cleaned trades before summarising.
// Zero-valued fields are ignored.
type FilterOptions struct {
	TransactionTypes []TransactionType
	MinValue         decimal.Decimal
	MaxAgeDays       int
	Tickers          []string
}

// IsZero reports whether no filter is active.
func (f FilterOptions) IsZero() bool {
	return len(f.TransactionTypes) == 0 &&
		f.MinValue.IsZero() &&
		f.MaxAgeDays == 0 &&
		len(f.Tickers) == 0
}

// Summary holds the computed aggregates over the cleaned trades.
type Summary struct {
	TotalCount       int
	SignificantCount int
	TotalValue       decimal.Decimal
	Threshold        decimal.Decimal
	TopN             int
	TopTrades        []Trade
}
