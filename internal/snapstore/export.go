package snapstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/internal/parquet"
)

// historyExportLimit bounds one export to a sane number of rows.
const historyExportLimit = 10000

// ExecuteSnapshotExport exports the snapshot history for a repo and branch to
// a Parquet file.
func ExecuteSnapshotExport(ctx context.Context, store contract.SnapshotStore, repo, branch, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	status, err := store.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.SnapshotCount == 0 {
		return errors.New("no snapshot data found to export")
	}

	history, err := store.History(ctx, repo, branch, historyExportLimit)
	if err != nil {
		return fmt.Errorf("failed to retrieve snapshot history: %w", err)
	}
	if len(history) == 0 {
		return fmt.Errorf("no snapshots found for repo %q branch %q", repo, branch)
	}

	rows := parquet.ConvertSnapshots(history)
	if err := parquet.WriteSnapshotsParquet(rows, outputFile); err != nil {
		return fmt.Errorf("failed to write snapshots: %w", err)
	}
	fmt.Printf("Exported %d snapshots to: %s\n", len(rows), outputFile)
	return nil
}
