package domain

import (
	"time"
)

// SourceDirect marks identity-pair results that never touched a provider.
const SourceDirect = "direct"

// RateSnapshot is the last known rate for a currency pair. At most one
// snapshot exists per pair; a newer successful fetch overwrites it whole.
type RateSnapshot struct {
	PairKey   string
	Rate      float64
	Source    string
	FetchedAt time.Time
}

// RateResult is what the resolver hands back to callers. Degraded is set
// only when the value came from a stale snapshot after every provider failed.
type RateResult struct {
	Rate      float64
	Source    string
	FetchedAt time.Time
	Degraded  bool
}

type CurrencyPair struct {
	From string
	To   string
}

// Key returns the canonical cache key, e.g. "USD-CNY".
func (p CurrencyPair) Key() string {
	return p.From + "-" + p.To
}
