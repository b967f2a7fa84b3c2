package cmd

import (
	"fmt"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/internal/snapstore"
	"github.com/codegauge/codegauge/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need snapshot access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	// Values used by the export command
	cfg.RepoName = viper.GetString("repo")
	cfg.Branch = viper.GetString("branch")
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT open the store or create tables,
// allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetSnapshotDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on snapshot data management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by analysis commands. This avoids scan-root
// validation and policy processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage historical quality snapshots",
	Long: `Manage the snapshot store that powers trend analysis.

Every report and trend run records one snapshot per repo/branch pair:
quality score, complexity average and total line count at that moment.
Trend comparisons read the most recent snapshot as their baseline.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show snapshot counts and connection info
  export  - Export snapshot history to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Check store status
  codegauge store status

  # Export a repo's history for DuckDB/pandas
  codegauge store export --repo service --output-file history.parquet`,
}

// storeStatusCmd shows snapshot store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot statistics and connection details",
	Long: `Show detailed information about the snapshot store.

Displays:
- Backend type and connection status
- Total number of recorded snapshots
- Timestamp of the most recent snapshot

Use this to:
- Verify snapshot recording is enabled and working
- Monitor history growth over time
- Debug store connection issues

Examples:
  # Check snapshot store status
  codegauge store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := snapstore.NewSnapshotStore(rootCtx, cfg.StoreBackend, cfg.StoreDBConnect)
		if err != nil {
			contract.LogFatal("Failed to open snapshot store", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		snapstore.PrintStoreStatus(status)
	},
}

// storeExportCmd exports snapshot history to a Parquet file.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export snapshot history to Parquet for BI tools and analytics",
	Long: `Export the recorded snapshot history of one repo/branch pair to
Parquet format for use with analytics tools.

Each row carries the repo, branch, recording time, quality score, complexity
average and total line count of one run.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --repo and --output-file parameters

Examples:
  # Export one repo's history
  codegauge store export --repo service --output-file history.parquet

  # Use with DuckDB for analysis
  codegauge store export --repo service --output-file history.parquet
  duckdb -c "SELECT * FROM read_parquet('history.parquet') LIMIT 10"`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.RepoName == "" {
			contract.LogFatal("Failed to export snapshots", fmt.Errorf("--repo is required"))
		}

		store, err := snapstore.NewSnapshotStore(rootCtx, cfg.StoreBackend, cfg.StoreDBConnect)
		if err != nil {
			contract.LogFatal("Failed to open snapshot store", err)
		}
		defer func() { _ = store.Close() }()

		if err := snapstore.ExecuteSnapshotExport(rootCtx, store, cfg.RepoName, cfg.Branch, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export snapshots", err)
		}
	},
}

// storeMigrateCmd runs database migrations for the snapshot store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the snapshot store.

Migrations allow:
- Upgrading to new schema versions when Codegauge is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  codegauge store migrate

  # Rollback to initial state
  codegauge store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := snapstore.MigrateSnapshots(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
