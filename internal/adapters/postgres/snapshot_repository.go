package postgres

import (
	"context"
	"fmt"

	"vpsworth/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository keeps the latest rate per pair so a restart does not
// start with an empty cache. One row per pair, no history.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func (r *SnapshotRepository) Upsert(ctx context.Context, snap domain.RateSnapshot) error {
	const q = `
        insert into rate_snapshots (pair_key, rate, source, fetched_at)
        values ($1, $2, $3, $4)
        on conflict (pair_key) do update
            set rate = excluded.rate, source = excluded.source, fetched_at = excluded.fetched_at
            where excluded.fetched_at >= rate_snapshots.fetched_at;
    `
	if _, err := r.pool.Exec(ctx, q, snap.PairKey, snap.Rate, snap.Source, snap.FetchedAt); err != nil {
		return fmt.Errorf("failed to upsert snapshot for pair %q: %w", snap.PairKey, err)
	}
	return nil
}

func (r *SnapshotRepository) LoadAll(ctx context.Context) ([]domain.RateSnapshot, error) {
	const q = `select pair_key, rate, source, fetched_at from rate_snapshots;`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to select snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []domain.RateSnapshot
	for rows.Next() {
		var s domain.RateSnapshot
		if err = rows.Scan(&s.PairKey, &s.Rate, &s.Source, &s.FetchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snaps = append(snaps, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return snaps, nil
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}
