package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"insider-tracker/models"
)

var csvHeader = []string{
	"rank", "ticker", "owner", "relationship", "date", "transaction", "cost", "shares", "value", "filed_at",
}

// CSVWriter writes ranked trades to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteTrades appends one row per trade; rank follows slice order.
func (c *CSVWriter) WriteTrades(trades []models.Trade) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, t := range trades {
		row := []string{
			strconv.Itoa(i + 1),
			t.Ticker,
			t.Owner,
			t.Relationship,
			t.Date.Format("2006-01-02"),
			string(t.Transaction),
			t.Cost.StringFixed(2),
			strconv.FormatInt(t.Shares, 10),
			t.Value.StringFixed(2),
			t.FiledAt,
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writer.Flush()
	return c.file.Close()
}
