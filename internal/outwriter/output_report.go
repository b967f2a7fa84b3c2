package outwriter

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/internal/parquet"
	"github.com/codegauge/codegauge/schema"
)

// PrintReport outputs a full pipeline report. JSON carries the whole bundle;
// CSV and parquet reduce to the per-file metric rows since a flat format
// cannot hold four heterogeneous sections; text renders each section in
// pipeline order.
func PrintReport(report schema.ReportResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")

	case schema.CSVOut:
		fmtFloat := floatFormatter(cfg.Precision)
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeCSVMetrics(w, report.Metrics, fmtFloat)
		}, "Wrote CSV")

	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		rows := parquet.ConvertFileMetrics(report.Metrics.FileDetails)
		if err := parquet.WriteFileMetricsParquet(rows, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Printf("Exported %d file metrics to: %s\n", len(rows), cfg.OutputFile)
		return nil

	default:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeReportText(w, report, cfg, duration)
		}, "Wrote table")
	}
}

// writeReportText renders all sections in pipeline order with one shared
// completion footer.
func writeReportText(w io.Writer, report schema.ReportResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := floatFormatter(cfg.Precision)

	fmt.Fprintln(w, "=== Metrics ===")
	if err := writeMetricsTable(w, report.Metrics, cfg, fmtFloat); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Integrity ===")
	if err := writeIntegrityTable(w, report.Integrity, cfg); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Deprecations ===")
	if err := writeDeprecationsTable(w, report.Deprecations, cfg); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Trend ===")
	if err := writeTrendText(w, report.Trend, cfg, fmtFloat); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nReport completed in %v with %d workers\n", duration, cfg.Workers)
	return err
}
