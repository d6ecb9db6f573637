package services

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"insider-tracker/models"
	"insider-tracker/utils"
)

// dateLayouts are tried in order; the first is what Finviz prints.
var dateLayouts = []string{
	"Jan 02 '06",
	"Jan 2 '06",
	"2006-01-02",
	"01/02/2006",
}

// Cleaner transforms RawRows into typed Trades.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean converts raw rows in order, omitting rows that fail validation and
// exact duplicates of an earlier row.
func (c *Cleaner) Clean(raw []models.RawRow) []models.Trade {
	seen := utils.NewKeySet()
	result := make([]models.Trade, 0, len(raw))
	valid := 0

	for i, r := range raw {
		t, ok := c.CleanRow(r)
		if !ok {
			c.logger.Debug("[cleaner] Dropping row %d: %v", i, map[string]string(r))
			continue
		}
		valid++
		if !seen.Add(dedupKey(t)) {
			c.logger.Debug("[cleaner] Duplicate row %d skipped: %s %s", i, t.Ticker, t.Owner)
			continue
		}
		t.Seq = len(result)
		result = append(result, t)
	}

	c.logger.Info("[cleaner] Cleaned %d → %d trades (invalid %d, duplicates %d)",
		len(raw), len(result), len(raw)-valid, valid-seen.Size())
	return result
}

// CleanRow converts a single row. It reports false when the ticker is empty
// or the value or date cannot be parsed.
func (c *Cleaner) CleanRow(r models.RawRow) (models.Trade, bool) {
	tickerRaw, ok := r[models.ColTicker]
	if !ok {
		return models.Trade{}, false
	}
	ticker := strings.ToUpper(strings.TrimSpace(tickerRaw))
	if ticker == "" {
		return models.Trade{}, false
	}

	valueRaw, ok := r[models.ColValue]
	if !ok {
		return models.Trade{}, false
	}
	value, ok := parseMoney(valueRaw)
	if !ok || value.IsNegative() {
		return models.Trade{}, false
	}

	dateRaw, ok := r[models.ColDate]
	if !ok {
		return models.Trade{}, false
	}
	date, ok := parseDate(dateRaw)
	if !ok {
		return models.Trade{}, false
	}

	owner, hasOwner := r[models.ColOwner]
	relationship, hasRel := r[models.ColRelationship]
	transaction, hasTx := r[models.ColTransaction]
	if !hasOwner || !hasRel || !hasTx {
		return models.Trade{}, false
	}

	cost, _ := parseMoney(r[models.ColCost])

	return models.Trade{
		Ticker:       ticker,
		Owner:        normaliseText(owner),
		Relationship: normaliseText(relationship),
		Date:         date,
		Transaction:  models.ParseTransactionType(transaction),
		Cost:         cost,
		Shares:       parseCount(r[models.ColShares]),
		Value:        value,
		SharesTotal:  parseCount(r[models.ColSharesTotal]),
		FiledAt:      normaliseText(r[models.ColSECForm4]),
	}, true
}

// parseMoney strips currency symbols, thousands separators and whitespace.
//
//	"$2,500,000" → 2500000
//	"180.03"     → 180.03
func parseMoney(raw string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '$' || r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// parseCount reads share counts such as "75,000"; unparseable input is 0.
func parseCount(raw string) int64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseDate(raw string) (time.Time, bool) {
	s := normaliseText(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func dedupKey(t models.Trade) string {
	return strings.Join([]string{
		t.Ticker,
		t.Owner,
		t.Relationship,
		t.Date.Format("2006-01-02"),
		string(t.Transaction),
		strconv.FormatInt(t.Shares, 10),
		t.Value.String(),
		t.FiledAt,
	}, "|")
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	s = strings.TrimSpace(s)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}
