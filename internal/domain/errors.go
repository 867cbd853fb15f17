package domain

import "errors"

var (
	ErrNoRateAvailable  = errors.New("no rate available from any source")
	ErrSnapshotNotFound = errors.New("rate snapshot not found")
)
