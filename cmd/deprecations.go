package cmd

import (
	"github.com/codegauge/codegauge/core"
	"github.com/codegauge/codegauge/internal/contract"
	"github.com/spf13/cobra"
)

// deprecationsCmd performs the deprecation stage on its own.
var deprecationsCmd = &cobra.Command{
	Use:   "deprecations [path]",
	Short: "Find usages of deprecated APIs with known replacements.",
	Long: `Scan source files line by line for APIs that have a well-known modern
replacement, matched by file extension.

Covered languages: Python, JavaScript/TypeScript, Java, Go and Ruby, plus a
set of general markers (DEPRECATED comments, legacy references) that apply to
every file. Each finding carries the line number and a suggested replacement.

A line yields at most one warning; language-specific rules win over the
general markers.

Examples:
  # Scan the current directory
  codegauge deprecations

  # Show more findings in the text table
  codegauge deprecations --warning-limit 100

  # Full list for tooling
  codegauge deprecations --output csv --output-file deprecations.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDeprecations(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run deprecation scan", err)
		}
	},
}
