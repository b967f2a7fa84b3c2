package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintIntegrity outputs an integrity scan result, dispatching based on the
// output format configured.
func PrintIntegrity(result *schema.IntegrityResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeCSVIntegrity(w, result)
		}, "Wrote CSV")

	case schema.ParquetOut:
		return errors.New("parquet output is not supported for integrity scans")

	default:
		return writeWithFile(cfg, func(w io.Writer) error {
			if err := writeIntegrityTable(w, result, cfg); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Scan completed in %v with %d workers\n", duration, cfg.Workers)
			return err
		}, "Wrote table")
	}
}

// writeIntegrityTable generates and writes the human-readable verdict plus an
// issue table when any issues were found.
func writeIntegrityTable(w io.Writer, result *schema.IntegrityResult, cfg *contract.Config) error {
	fmt.Fprintf(w, "Status:        %s\n", string(result.Status))
	fmt.Fprintf(w, "Content hash:  %s\n", result.ContentHash)
	fmt.Fprintf(w, "Files scanned: %d\n", result.FilesScanned)
	fmt.Fprintf(w, "Issues found:  %d\n", len(result.Issues))

	if len(result.Issues) > 0 {
		table := tablewriter.NewWriter(w)
		table.Header([]string{"File", "Kind", "Severity", "Detail"})

		maxPathWidth := GetMaxTablePathWidth(cfg)
		var data [][]string
		for _, issue := range result.Issues {
			severity := string(issue.Severity)
			if cfg.UseColors {
				severity = contract.GetColorSeverityLabel(issue.Severity)
			}
			data = append(data, []string{
				contract.TruncatePath(issue.File, maxPathWidth),
				string(issue.Kind),
				severity,
				issue.Detail,
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVIntegrity writes one row per issue in CSV format.
func writeCSVIntegrity(w io.Writer, result *schema.IntegrityResult) error {
	header := []string{"file", "kind", "severity", "detail"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, issue := range result.Issues {
			record := []string{
				issue.File,
				string(issue.Kind),
				string(issue.Severity),
				issue.Detail,
			}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
