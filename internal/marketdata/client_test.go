package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEOD(t *testing.T) {
	var gotPath, gotToken, gotFrom, gotTo string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("api_token")
		gotFrom = r.URL.Query().Get("from")
		gotTo = r.URL.Query().Get("to")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date": "2024-08-01", "open": 100, "high": 102, "low": 99, "close": 101, "adjusted_close": 101, "volume": 1000},
			{"date": "2024-08-02", "open": 101, "high": 104, "low": 100, "close": 103, "adjusted_close": 103, "volume": 1200}
		]`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	from := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)

	bars, err := client.GetEOD(context.Background(), "GLD.US", WithDateRange(from, to))
	require.NoError(t, err)

	assert.Equal(t, "/eod/GLD.US", gotPath)
	assert.Equal(t, "test-key", gotToken)
	assert.Equal(t, "2024-08-01", gotFrom)
	assert.Equal(t, "2024-08-31", gotTo)

	require.Len(t, bars, 2)
	assert.Equal(t, 101.0, bars[0].Close)
	assert.Equal(t, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), bars[0].Date)
}

func TestGetEODAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("invalid token"))
	}))
	defer server.Close()

	client := NewClient("bad-key", WithBaseURL(server.URL))

	_, err := client.GetEOD(context.Background(), "GLD.US")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestClosePricesSkipsNonPositive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"date": "2024-08-01", "close": 100},
			{"date": "2024-08-02", "close": 0},
			{"date": "2024-08-03", "close": 110}
		]`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	closes, err := client.ClosePrices(context.Background(), "NIFTY.INDX", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 110}, closes)
}
