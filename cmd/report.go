package cmd

import (
	"github.com/codegauge/codegauge/core"
	"github.com/codegauge/codegauge/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd runs the full four-stage analysis pipeline.
var reportCmd = &cobra.Command{
	Use:   "report [path]",
	Short: "Run the full analysis pipeline and print a combined report.",
	Long: `Run metric, integrity and deprecation scans in parallel, compare the
result against the previous snapshot, and record a new snapshot.

The report bundles four sections:
- Metrics      - lines, complexity, maintainability and the composite quality score
- Integrity    - leaked secrets, debug leftovers, binaries and oversized files
- Deprecations - usages of APIs that have a well-known modern replacement
- Trend        - quality movement against the last recorded run

A snapshot is recorded only when every stage succeeds, so a failed run never
pollutes the baseline.

Examples:
  # Analyze the current directory
  codegauge report

  # Analyze a checkout with a diff from CI
  codegauge report ~/src/service --diff-file changes.patch

  # Pipe a diff through stdin
  git diff main | codegauge report --diff-file -

  # Machine-readable output for dashboards
  codegauge report --output json --output-file report.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}
