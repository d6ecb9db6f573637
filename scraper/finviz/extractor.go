package finviz

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"insider-tracker/models"
)

// tableIDSelector is where Finviz historically placed the table. Any other
// table whose header carries models.RequiredColumns is accepted too.
const tableIDSelector = "table#insider-table"

// Extract locates the insider-trading table in an HTML document and returns
// one RawRow per body row, keyed by header label. It fails with a
// *ParseError when no table carries the expected header set.
func Extract(r io.Reader) ([]models.RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{Reason: "invalid html", Err: err}
	}

	table, headers := findTable(doc)
	if table == nil {
		return nil, &ParseError{
			Reason: fmt.Sprintf("no table with columns %s", strings.Join(models.RequiredColumns, ", ")),
			Err:    ErrTableNotFound,
		}
	}

	rows := make([]models.RawRow, 0)
	ownRows(table).Slice(1, goquery.ToEnd).Each(func(_ int, tr *goquery.Selection) {
		cells := tr.ChildrenFiltered("td")
		if cells.Length() == 0 {
			return
		}
		row := make(models.RawRow, len(headers))
		cells.Each(func(i int, td *goquery.Selection) {
			// Cells past the header width have no label.
			if i < len(headers) {
				row[headers[i]] = cellText(td)
			}
		})
		rows = append(rows, row)
	})

	return rows, nil
}

// ExtractBytes is Extract over an in-memory page.
func ExtractBytes(page []byte) ([]models.RawRow, error) {
	return Extract(bytes.NewReader(page))
}

// findTable returns the first candidate table whose header row contains
// every required column, together with its header labels.
func findTable(doc *goquery.Document) (*goquery.Selection, []string) {
	candidates := doc.Find(tableIDSelector).AddSelection(doc.Find("table"))

	var (
		match   *goquery.Selection
		headers []string
	)
	candidates.EachWithBreak(func(_ int, table *goquery.Selection) bool {
		first := ownRows(table).First()
		if first.Length() == 0 {
			return true
		}
		labels := make([]string, 0)
		first.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
			labels = append(labels, cellText(cell))
		})
		if hasAll(labels, models.RequiredColumns) {
			match, headers = table, labels
			return false
		}
		return true
	})
	return match, headers
}

// ownRows returns the rows of table, skipping rows of nested tables.
func ownRows(table *goquery.Selection) *goquery.Selection {
	return table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Closest("table").IsSelection(table)
	})
}

func hasAll(labels, required []string) bool {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	for _, r := range required {
		if _, ok := set[r]; !ok {
			return false
		}
	}
	return true
}

// cellText returns the visible text of a cell with whitespace collapsed.
func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
