package finviz

import (
	"errors"
	"fmt"
)

// ErrTableNotFound means the page no longer carries the expected table.
var ErrTableNotFound = errors.New("table not found")

// NetworkError reports a failed fetch: transport error or non-2xx status.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("finviz: fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("finviz: fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports that the page structure did not match what the
// extractor expects, typically after a site layout change.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("finviz: parse page: %s: %v", e.Reason, e.Err)
	}
	return "finviz: parse page: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }
