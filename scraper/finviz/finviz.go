// Package finviz fetches the Finviz insider-trading page and extracts its
// table into raw rows.
package finviz

import (
	"context"

	"insider-tracker/models"
	"insider-tracker/utils"
)

// InsiderTradingURL is the listing page scraped on every run.
const InsiderTradingURL = "https://finviz.com/insidertrading.ashx"

// Scraper drives one fetch and one extraction.
type Scraper struct {
	fetcher Fetcher
	url     string
	logger  *utils.Logger
}

// New creates a Scraper against InsiderTradingURL.
func New(fetcher Fetcher, logger *utils.Logger) *Scraper {
	return &Scraper{fetcher: fetcher, url: InsiderTradingURL, logger: logger}
}

// Scrape fetches the page and returns its raw table rows.
// Errors are *NetworkError or *ParseError.
func (s *Scraper) Scrape(ctx context.Context) ([]models.RawRow, error) {
	s.logger.Info("[finviz] Fetching insider trading data from %s", s.url)

	page, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}

	rows, err := ExtractBytes(page)
	if err != nil {
		return nil, err
	}

	s.logger.Info("[finviz] Extracted %d raw rows", len(rows))
	return rows, nil
}
