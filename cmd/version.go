package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of codegauge.",
	Long: `Display the release version along with the commit hash, build
timestamp and Go runtime the binary was compiled with.

Include this output when filing bug reports, and use it to confirm
which build a CI runner or workstation actually has installed.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("codegauge CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
	},
}
