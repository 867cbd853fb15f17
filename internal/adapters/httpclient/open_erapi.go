package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const openERAPIName = "open.er-api.com"

// OpenERAPIClient talks to open.er-api.com:
// GET {base}/v6/latest/{FROM} -> {"result": "success", "rates": {...}}
type OpenERAPIClient struct {
	http    *http.Client
	baseURL string
}

type openERAPIResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

func (c *OpenERAPIClient) Name() string { return openERAPIName }

func (c *OpenERAPIClient) FetchRate(ctx context.Context, from, to string) (float64, error) {
	url := fmt.Sprintf("%s/v6/latest/%s", strings.TrimSuffix(c.baseURL, "/"), from)

	var body openERAPIResponse
	if err := doGetJSON(ctx, c.http, url, &body); err != nil {
		return 0, err
	}
	if body.Result != "success" {
		return 0, fmt.Errorf("api returned non-success result for currency %q: %s", from, body.Result)
	}
	return pickRate(body.Rates, to)
}

func NewOpenERAPIClient(httpClient *http.Client, baseURL string) *OpenERAPIClient {
	return &OpenERAPIClient{http: httpClient, baseURL: baseURL}
}
