package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/internal/parquet"
	"github.com/codegauge/codegauge/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintMetrics outputs commit metrics, dispatching based on the output format
// configured.
func PrintMetrics(metrics *schema.CommitMetrics, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := floatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, metrics)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeCSVMetrics(w, metrics, fmtFloat)
		}, "Wrote CSV")

	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		rows := parquet.ConvertFileMetrics(metrics.FileDetails)
		if err := parquet.WriteFileMetricsParquet(rows, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Printf("Exported %d file metrics to: %s\n", len(rows), cfg.OutputFile)
		return nil

	default:
		return writeWithFile(cfg, func(w io.Writer) error {
			if err := writeMetricsTable(w, metrics, cfg, fmtFloat); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Analysis completed in %v with %d workers\n", duration, cfg.Workers)
			return err
		}, "Wrote table")
	}
}

// writeMetricsTable generates and writes the human-readable summary, plus the
// per-file table when detail mode is on.
func writeMetricsTable(w io.Writer, metrics *schema.CommitMetrics, cfg *contract.Config, fmtFloat func(float64) string) error {
	fmt.Fprintf(w, "Total lines:       %d\n", metrics.TotalLines)
	fmt.Fprintf(w, "Files analyzed:    %d\n", metrics.FilesChanged)
	if metrics.LinesAdded > 0 || metrics.LinesDeleted > 0 {
		fmt.Fprintf(w, "Diff lines:        +%d / -%d\n", metrics.LinesAdded, metrics.LinesDeleted)
	}
	fmt.Fprintf(w, "Complexity avg:    %s\n", fmtFloat(metrics.ComplexityAvg))
	fmt.Fprintf(w, "Maintainability:   %s\n", fmtFloat(metrics.MaintainabilityIndex))
	fmt.Fprintf(w, "Quality score:     %s (%s)\n", fmtFloat(metrics.QualityScore), qualityLabel(metrics.QualityScore, cfg))

	if cfg.Detail && len(metrics.FileDetails) > 0 {
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Path", "Lines", "Complexity", "Maintainability"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		maxPathWidth := GetMaxTablePathWidth(cfg)
		var data [][]string
		for _, fm := range metrics.FileDetails {
			data = append(data, []string{
				contract.TruncatePath(fm.Path, maxPathWidth),
				strconv.Itoa(fm.Lines),
				fmtFloat(fm.Complexity),
				fmtFloat(fm.Maintainability),
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

// writeCSVMetrics writes one row per analyzed file in CSV format.
func writeCSVMetrics(w io.Writer, metrics *schema.CommitMetrics, fmtFloat func(float64) string) error {
	header := []string{"path", "lines", "complexity", "maintainability"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, fm := range metrics.FileDetails {
			record := []string{
				fm.Path,
				strconv.Itoa(fm.Lines),
				fmtFloat(fm.Complexity),
				fmtFloat(fm.Maintainability),
			}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
