package cmd

import (
	"github.com/codegauge/codegauge/core"
	"github.com/codegauge/codegauge/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd performs the file metric stage on its own.
var metricsCmd = &cobra.Command{
	Use:   "metrics [path]",
	Short: "Measure lines, complexity and maintainability per file.",
	Long: `Walk the source tree and compute per-file metrics plus tree-wide
aggregates and a composite quality score.

Per file:
- Line count
- Cyclomatic complexity (AST-based for Go, nesting-based elsewhere)
- A maintainability estimate on a 0-100 scale

Tree-wide:
- Total lines and file count
- Complexity and maintainability averages
- Composite quality score weighing maintainability, complexity and change size

Examples:
  # Summary for the current directory
  codegauge metrics

  # Include the per-file table
  codegauge metrics --detail

  # Fold a pending change into the score
  codegauge metrics --diff-file changes.patch

  # Export per-file rows for analytics
  codegauge metrics --output parquet --output-file metrics.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run metrics analysis", err)
		}
	},
}
