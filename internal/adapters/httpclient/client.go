package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// doGetJSON performs a GET and decodes the JSON body into out.
func doGetJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request %q: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d for %q: %s", resp.StatusCode, url, resp.Status)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %q: %w", url, err)
	}
	return nil
}

// pickRate pulls the quote currency out of a provider rates map and rejects
// anything that is not usable as an exchange rate.
func pickRate(rates map[string]float64, to string) (float64, error) {
	rate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("rate for %q missing in response", to)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("non-positive rate %v for %q", rate, to)
	}
	return rate, nil
}
