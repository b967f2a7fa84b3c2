// main is the entry point for the codegauge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/codegauge/codegauge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
