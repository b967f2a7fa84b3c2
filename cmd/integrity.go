package cmd

import (
	"github.com/codegauge/codegauge/core"
	"github.com/codegauge/codegauge/internal/contract"
	"github.com/spf13/cobra"
)

// integrityCmd performs the integrity stage on its own.
var integrityCmd = &cobra.Command{
	Use:   "integrity [path]",
	Short: "Scan for leaked secrets, debug leftovers and suspicious files.",
	Long: `Scan every file in the tree for content that should not ship:

- Hardcoded credentials (API keys, passwords, AWS keys, bearer tokens, private keys)
- Debug leftovers (console.log, debugger statements, debug prints)
- Binary artifacts committed into the tree
- Files above the configured size threshold

Secrets are critical and fail the scan; everything else is a warning. The scan
also prints a deterministic content hash of the whole tree, useful for
verifying that two checkouts are identical.

Examples:
  # Gate a CI pipeline on leaked secrets
  codegauge integrity

  # Raise the size threshold for media-heavy repos
  codegauge integrity --max-file-size-mb 50

  # Full issue list as JSON
  codegauge integrity --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteIntegrity(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run integrity scan", err)
		}
	},
}
