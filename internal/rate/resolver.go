package rate

import (
	"context"
	"math"
	"time"

	"vpsworth/internal/adapters"
	"vpsworth/internal/domain"
	"vpsworth/internal/metrics"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// freshnessWindow is how long a snapshot is served without consulting
// providers.
const freshnessWindow = time.Hour

const perAttemptTimeout = 5 * time.Second

// Resolver answers currency-pair lookups with a layered strategy: fresh
// cache, then providers in declared order, then whatever stale snapshot is
// left, and only then an error.
type Resolver struct {
	providers []adapters.RateProvider
	cache     adapters.RateCache
	snapshots adapters.RateSnapshotRepository
	metrics   *metrics.RateMetrics
	group     singleflight.Group
}

func NewResolver(providers []adapters.RateProvider, cache adapters.RateCache, snapshots adapters.RateSnapshotRepository, m *metrics.RateMetrics) *Resolver {
	return &Resolver{providers: providers, cache: cache, snapshots: snapshots, metrics: m}
}

func (r *Resolver) Resolve(ctx context.Context, from, to string) (domain.RateResult, error) {
	if from == to {
		return domain.RateResult{Rate: 1, Source: domain.SourceDirect, FetchedAt: time.Now()}, nil
	}

	pair := domain.CurrencyPair{From: from, To: to}
	if snap, ok := r.cache.Get(pair.Key()); ok && time.Since(snap.FetchedAt) < freshnessWindow {
		r.metrics.RecordCacheHit("fresh")
		r.metrics.RecordResolution("ok")
		return resultFromSnapshot(snap, false), nil
	}

	// Concurrent misses for the same pair share one provider traversal. The
	// traversal runs detached from the initiating request so cancelling one
	// caller cannot fail the other waiters; per-attempt timeouts still bound
	// every fetch.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := r.group.Do(pair.Key(), func() (any, error) {
		return r.resolveMiss(fetchCtx, pair)
	})
	if err != nil {
		return domain.RateResult{}, err
	}
	return v.(domain.RateResult), nil
}

func (r *Resolver) resolveMiss(ctx context.Context, pair domain.CurrencyPair) (domain.RateResult, error) {
	for _, provider := range r.providers {
		attemptCtx, cancel := context.WithTimeout(ctx, perAttemptTimeout)
		rate, err := provider.FetchRate(attemptCtx, pair.From, pair.To)
		cancel()
		if err != nil {
			r.metrics.RecordProviderAttempt(provider.Name(), "error")
			logrus.WithError(err).WithFields(logrus.Fields{
				"provider": provider.Name(),
				"pair":     pair.Key(),
			}).Warn("Rate provider attempt failed, trying next")
			continue
		}
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			r.metrics.RecordProviderAttempt(provider.Name(), "invalid")
			logrus.WithFields(logrus.Fields{
				"provider": provider.Name(),
				"pair":     pair.Key(),
				"rate":     rate,
			}).Warn("Rate provider returned unusable value, trying next")
			continue
		}

		snap := domain.RateSnapshot{
			PairKey:   pair.Key(),
			Rate:      math.Round(rate*10000) / 10000,
			Source:    provider.Name(),
			FetchedAt: time.Now(),
		}
		r.cache.Set(snap)
		r.persist(ctx, snap)
		r.metrics.RecordProviderAttempt(provider.Name(), "ok")
		r.metrics.RecordResolution("ok")
		return resultFromSnapshot(snap, false), nil
	}

	// Every provider is down; a stale snapshot still beats an error.
	if snap, ok := r.cache.Get(pair.Key()); ok {
		r.metrics.RecordCacheHit("degraded")
		r.metrics.RecordResolution("degraded")
		logrus.WithFields(logrus.Fields{
			"pair":       pair.Key(),
			"fetched_at": snap.FetchedAt,
		}).Warn("All rate providers failed, serving stale snapshot")
		return resultFromSnapshot(snap, true), nil
	}

	r.metrics.RecordResolution("failed")
	return domain.RateResult{}, domain.ErrNoRateAvailable
}

func (r *Resolver) persist(ctx context.Context, snap domain.RateSnapshot) {
	if r.snapshots == nil {
		return
	}
	upsertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err := r.snapshots.Upsert(upsertCtx, snap); err != nil {
		logrus.WithError(err).WithField("pair", snap.PairKey).Error("Failed to persist rate snapshot")
	}
}

// WarmFromSnapshots pre-seeds the cache with persisted snapshots. Stored
// fetch times are kept, so the structural freshness check still applies.
func (r *Resolver) WarmFromSnapshots(ctx context.Context) error {
	if r.snapshots == nil {
		return nil
	}
	snaps, err := r.snapshots.LoadAll(ctx)
	if err != nil {
		return err
	}
	for _, snap := range snaps {
		r.cache.Set(snap)
	}
	logrus.Infof("Pre-seeded rate cache with %d persisted snapshots", len(snaps))
	return nil
}

func resultFromSnapshot(snap domain.RateSnapshot, degraded bool) domain.RateResult {
	return domain.RateResult{
		Rate:      snap.Rate,
		Source:    snap.Source,
		FetchedAt: snap.FetchedAt,
		Degraded:  degraded,
	}
}
