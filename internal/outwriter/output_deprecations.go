package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintDeprecations outputs deprecation warnings, dispatching based on the
// output format configured.
func PrintDeprecations(warnings []schema.DeprecationWarning, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, warnings)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeCSVDeprecations(w, warnings)
		}, "Wrote CSV")

	case schema.ParquetOut:
		return errors.New("parquet output is not supported for deprecation scans")

	default:
		return writeWithFile(cfg, func(w io.Writer) error {
			if err := writeDeprecationsTable(w, warnings, cfg); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Scan completed in %v\n", duration)
			return err
		}, "Wrote table")
	}
}

// writeDeprecationsTable writes a bounded table of warnings. The render cap
// keeps a legacy-ridden tree from producing an unreadable wall of rows; CSV
// and JSON modes always carry the full list.
func writeDeprecationsTable(w io.Writer, warnings []schema.DeprecationWarning, cfg *contract.Config) error {
	fmt.Fprintf(w, "Deprecated API usages found: %d\n", len(warnings))

	if len(warnings) > 0 {
		shown := warnings
		if len(shown) > cfg.Policy.WarningRenderCap {
			shown = shown[:cfg.Policy.WarningRenderCap]
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"File", "Line", "Language", "Detail"})

		maxPathWidth := GetMaxTablePathWidth(cfg)
		var data [][]string
		for _, warning := range shown {
			data = append(data, []string{
				contract.TruncatePath(warning.File, maxPathWidth),
				strconv.Itoa(warning.Line),
				warning.Language,
				warning.Message,
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		if hidden := len(warnings) - len(shown); hidden > 0 {
			fmt.Fprintf(w, "... and %d more\n", hidden)
		}
	}
	return nil
}

// writeCSVDeprecations writes one row per warning in CSV format.
func writeCSVDeprecations(w io.Writer, warnings []schema.DeprecationWarning) error {
	header := []string{"file", "line", "language", "pattern", "message"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, warning := range warnings {
			record := []string{
				warning.File,
				strconv.Itoa(warning.Line),
				warning.Language,
				warning.Pattern,
				warning.Message,
			}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
