package finviz

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"insider-tracker/utils"
)

// Fetcher retrieves the raw page body for a URL. One attempt, no retries.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches pages with a plain HTTP GET.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	logger    *utils.Logger
}

// NewHTTPFetcher creates an HTTPFetcher. Finviz answers the default Go
// user agent with 403, so a browser UA is required.
func NewHTTPFetcher(timeout time.Duration, userAgent string, logger *utils.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		logger:    logger,
	}
}

// Fetch issues a single GET and returns the body of a 2xx response.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	f.logger.Debug("[fetcher] GET %s", url)
	start := time.Now()

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &NetworkError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	f.logger.Debug("[fetcher] %s returned %d bytes in %v", url, len(body), time.Since(start))
	return body, nil
}
