package schema

import "time"

// Snapshot is the minimal historical record the trend engine needs.
// The pipeline only ever reads the most recent one; writing new snapshots
// is the orchestrating shell's responsibility.
type Snapshot struct {
	Repo          string    `json:"repo"`
	Branch        string    `json:"branch"`
	Timestamp     time.Time `json:"timestamp"`
	QualityScore  float64   `json:"quality_score"`
	ComplexityAvg float64   `json:"complexity_avg"`
	TotalLines    int       `json:"total_lines"`
}

// StoreStatus holds status information about the snapshot store.
type StoreStatus struct {
	Backend        DatabaseBackend `json:"backend"`
	SnapshotCount  int64           `json:"snapshot_count"`
	LatestSnapshot time.Time       `json:"latest_snapshot"` // Zero when the store is empty
}
