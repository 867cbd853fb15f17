package adapters

import (
	"context"
	"vpsworth/internal/domain"
)

// RateProvider is a single external rate-source API. Providers are attempted
// by the resolver in a fixed priority order.
type RateProvider interface {
	Name() string
	FetchRate(ctx context.Context, from, to string) (float64, error)
}

// RateCache holds the last snapshot per pair. Entries are never evicted by
// age; staleness is the resolver's call.
type RateCache interface {
	Get(key string) (domain.RateSnapshot, bool)
	Set(snapshot domain.RateSnapshot)
}

// RateSnapshotRepository persists the latest snapshot per pair so the cache
// survives restarts. Optional; a nil repository disables persistence.
type RateSnapshotRepository interface {
	Upsert(ctx context.Context, snapshot domain.RateSnapshot) error
	LoadAll(ctx context.Context) ([]domain.RateSnapshot, error)
}
