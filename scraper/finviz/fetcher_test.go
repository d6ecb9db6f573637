package finviz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insider-tracker/utils"
)

const testUA = "insider-tracker-test"

func TestHTTPFetcherSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, testUA, utils.NewNopLogger())
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(body))
	assert.Equal(t, testUA, gotUA)
}

func TestHTTPFetcherNon2xxIsNetworkError(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		f := NewHTTPFetcher(5*time.Second, testUA, utils.NewNopLogger())
		_, err := f.Fetch(context.Background(), srv.URL)
		srv.Close()

		var nerr *NetworkError
		require.True(t, errors.As(err, &nerr), "status %d: want *NetworkError, got %T", status, err)
		assert.Equal(t, status, nerr.StatusCode)
	}
}

func TestHTTPFetcherTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewHTTPFetcher(2*time.Second, testUA, utils.NewNopLogger())
	_, err := f.Fetch(context.Background(), url)

	var nerr *NetworkError
	require.True(t, errors.As(err, &nerr))
	assert.Zero(t, nerr.StatusCode)
	assert.Error(t, nerr.Unwrap())
}

func TestHTTPFetcherTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(50*time.Millisecond, testUA, utils.NewNopLogger())
	_, err := f.Fetch(context.Background(), srv.URL)

	var nerr *NetworkError
	assert.True(t, errors.As(err, &nerr))
}

func TestBrowserFetcherRendersPage(t *testing.T) {
	if os.Getenv("CHROME_BIN") == "" {
		t.Skip("CHROME_BIN not set, skipping")
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p id=\"x\">rendered</p></body></html>"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	f := NewBrowserFetcher("", testUA, utils.NewNopLogger())
	body, err := f.Fetch(ctx, srv.URL)
	require.NoError(t, err)
	assert.Contains(t, string(body), "rendered")
}
