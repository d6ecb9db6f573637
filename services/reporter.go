package services

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"insider-tracker/models"
)

const (
	reportTitle = "Insider Trading Summary"
	maxNameLen  = 30
)

// Render formats a Summary as plain text. Output depends only on s.
func Render(s models.Summary) string {
	var b strings.Builder
	sep := strings.Repeat("═", 54)

	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "  %s\n", reportTitle)
	fmt.Fprintf(&b, "%s\n", sep)
	fmt.Fprintf(&b, "Total number of trades: %d\n", s.TotalCount)
	fmt.Fprintf(&b, "Significant trades (value > $%s): %d\n", formatWhole(s.Threshold), s.SignificantCount)
	fmt.Fprintf(&b, "Total value: $%s\n", formatMoney(s.TotalValue))
	b.WriteString("\n")

	if len(s.TopTrades) == 0 {
		b.WriteString("No trades found matching the criteria.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Top %d trades by value:\n", len(s.TopTrades))

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tTICKER\tOWNER\tRELATIONSHIP\tDATE\tTRANSACTION\tVALUE ($)")
	for i, t := range s.TopTrades {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			t.Ticker,
			truncate(t.Owner, maxNameLen),
			truncate(t.Relationship, maxNameLen),
			t.Date.Format("2006-01-02"),
			transactionLabel(t.Transaction),
			formatMoney(t.Value),
		)
	}
	_ = tw.Flush()

	return b.String()
}

// transactionLabel covers every TransactionType variant.
func transactionLabel(tt models.TransactionType) string {
	switch tt {
	case models.TransactionBuy:
		return "Buy"
	case models.TransactionSale:
		return "Sale"
	case models.TransactionOptionExercise:
		return "Option Exercise"
	default:
		return "Other"
	}
}

func formatMoney(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", d.InexactFloat64())
}

func formatWhole(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.", d.InexactFloat64())
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
