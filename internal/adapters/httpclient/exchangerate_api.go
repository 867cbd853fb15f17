package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const exchangeRateAPIName = "exchangerate-api.com"

// ExchangeRateAPIClient talks to the free v4 endpoint of exchangerate-api.com:
// GET {base}/v4/latest/{FROM} -> {"rates": {"CNY": 7.19, ...}}
type ExchangeRateAPIClient struct {
	http    *http.Client
	baseURL string
}

type exchangeRateAPIResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (c *ExchangeRateAPIClient) Name() string { return exchangeRateAPIName }

func (c *ExchangeRateAPIClient) FetchRate(ctx context.Context, from, to string) (float64, error) {
	url := fmt.Sprintf("%s/v4/latest/%s", strings.TrimSuffix(c.baseURL, "/"), from)

	var body exchangeRateAPIResponse
	if err := doGetJSON(ctx, c.http, url, &body); err != nil {
		return 0, err
	}
	return pickRate(body.Rates, to)
}

func NewExchangeRateAPIClient(httpClient *http.Client, baseURL string) *ExchangeRateAPIClient {
	return &ExchangeRateAPIClient{http: httpClient, baseURL: baseURL}
}
