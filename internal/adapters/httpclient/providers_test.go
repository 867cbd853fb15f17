package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExchangeRateAPIClient_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"base": "USD", "rates": {"CNY": 7.1999, "EUR": 0.92}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateAPIClient(srv.Client(), srv.URL)

	rate, err := c.FetchRate(context.Background(), "USD", "CNY")
	require.NoError(t, err)
	require.Equal(t, "/v4/latest/USD", gotPath)
	require.InDelta(t, 7.1999, rate, 1e-9)
	require.Equal(t, "exchangerate-api.com", c.Name())
}

func TestExchangeRateAPIClient_MissingQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"base": "USD", "rates": {"EUR": 0.92}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateAPIClient(srv.Client(), srv.URL)

	_, err := c.FetchRate(context.Background(), "USD", "KRW")
	require.Error(t, err)
	require.Contains(t, err.Error(), `rate for "KRW" missing`)
}

func TestExchangeRateAPIClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateAPIClient(srv.Client(), srv.URL)

	_, err := c.FetchRate(context.Background(), "USD", "CNY")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 503")
}

func TestExchangeRateAPIClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateAPIClient(srv.Client(), srv.URL)

	_, err := c.FetchRate(context.Background(), "USD", "CNY")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode response")
}

func TestOpenERAPIClient_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result": "success", "rates": {"JPY": 150.0}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewOpenERAPIClient(srv.Client(), srv.URL)

	rate, err := c.FetchRate(context.Background(), "USD", "JPY")
	require.NoError(t, err)
	require.Equal(t, "/v6/latest/USD", gotPath)
	require.InDelta(t, 150.0, rate, 1e-9)
	require.Equal(t, "open.er-api.com", c.Name())
}

func TestOpenERAPIClient_NonSuccessResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result": "error", "rates": {}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewOpenERAPIClient(srv.Client(), srv.URL)

	_, err := c.FetchRate(context.Background(), "USD", "JPY")
	require.Error(t, err)
	require.Contains(t, err.Error(), `api returned non-success result for currency "USD": error`)
}

func TestExchangeRateHostClient_Success(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success": true, "rates": {"GBP": 0.7812}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateHostClient(srv.Client(), srv.URL)

	rate, err := c.FetchRate(context.Background(), "USD", "GBP")
	require.NoError(t, err)
	require.Equal(t, "base=USD&symbols=GBP", gotQuery)
	require.InDelta(t, 0.7812, rate, 1e-9)
	require.Equal(t, "exchangerate.host", c.Name())
}

func TestExchangeRateHostClient_NonSuccessResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success": false, "rates": {}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateHostClient(srv.Client(), srv.URL)

	_, err := c.FetchRate(context.Background(), "USD", "GBP")
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-success result")
}

func TestPickRate_NonPositive(t *testing.T) {
	_, err := pickRate(map[string]float64{"CNY": 0}, "CNY")
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-positive rate")

	_, err = pickRate(map[string]float64{"CNY": -1.5}, "CNY")
	require.Error(t, err)
}
