package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const exchangeRateHostName = "exchangerate.host"

// ExchangeRateHostClient talks to exchangerate.host:
// GET {base}/latest?base={FROM}&symbols={TO} -> {"success": true, "rates": {...}}
type ExchangeRateHostClient struct {
	http    *http.Client
	baseURL string
}

type exchangeRateHostResponse struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
}

func (c *ExchangeRateHostClient) Name() string { return exchangeRateHostName }

func (c *ExchangeRateHostClient) FetchRate(ctx context.Context, from, to string) (float64, error) {
	q := url.Values{}
	q.Set("base", from)
	q.Set("symbols", to)
	reqURL := fmt.Sprintf("%s/latest?%s", strings.TrimSuffix(c.baseURL, "/"), q.Encode())

	var body exchangeRateHostResponse
	if err := doGetJSON(ctx, c.http, reqURL, &body); err != nil {
		return 0, err
	}
	if !body.Success {
		return 0, fmt.Errorf("api returned non-success result for currency %q", from)
	}
	return pickRate(body.Rates, to)
}

func NewExchangeRateHostClient(httpClient *http.Client, baseURL string) *ExchangeRateHostClient {
	return &ExchangeRateHostClient{http: httpClient, baseURL: baseURL}
}
