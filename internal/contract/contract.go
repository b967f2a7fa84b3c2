// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/codegauge/codegauge/schema"
)

// SnapshotStore defines the operations for historical snapshot storage.
// The analysis pipeline performs exactly one Latest read per run and never
// writes; Record and History exist for the orchestrating shell. Keeping the
// store behind an interface allows the trend engine to be tested without a
// database.
type SnapshotStore interface {
	// Latest returns the most recent snapshot for the repo and branch,
	// or (nil, nil) when no snapshot exists yet.
	Latest(ctx context.Context, repo, branch string) (*schema.Snapshot, error)

	// Record persists a new snapshot.
	Record(ctx context.Context, snap schema.Snapshot) error

	// History returns up to limit snapshots for the repo and branch,
	// most recent first.
	History(ctx context.Context, repo, branch string, limit int) ([]schema.Snapshot, error)

	// GetStatus returns status information about the snapshot store.
	GetStatus(ctx context.Context) (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}
