package cmd

import (
	"github.com/codegauge/codegauge/core"
	"github.com/codegauge/codegauge/internal/contract"
	"github.com/spf13/cobra"
)

// trendCmd compares the current tree against the last recorded snapshot.
var trendCmd = &cobra.Command{
	Use:   "trend [path]",
	Short: "Compare current quality against the previous snapshot.",
	Long: `Analyze the tree, load the most recent snapshot for the repo and
branch, and report which way quality is moving.

The direction is improving, declining or stable; score movement inside a
small dead band counts as stable so normal churn does not flip the verdict.
Line count and complexity shifts are narrated only when they clear their
noise floors. A new snapshot is recorded after the comparison.

The first run for a repo/branch pair has no baseline and reports stable.

Examples:
  # Track the main branch (default)
  codegauge trend

  # Track a feature branch separately
  codegauge trend --branch feature/ingest

  # Shared history across machines
  codegauge trend --store-backend postgresql --store-db-connect "postgres://..."`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrend(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run trend analysis", err)
		}
	},
}
