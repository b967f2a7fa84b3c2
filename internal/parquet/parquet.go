// Package parquet provides data structures and functions for exporting
// codegauge metrics and snapshot history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/codegauge/codegauge/schema"
	"github.com/parquet-go/parquet-go"
)

// FileMetricRow is the Parquet projection of one analyzed file.
type FileMetricRow struct {
	// FilePath is the relative path to the file in the scanned tree
	FilePath string `parquet:"file_path,snappy"`

	// Lines is the line count of the file
	Lines int32 `parquet:"lines,snappy"`

	// Complexity is the cyclomatic complexity estimate
	Complexity float64 `parquet:"complexity,snappy"`

	// Maintainability is the maintainability estimate in [0,100]
	Maintainability float64 `parquet:"maintainability,snappy"`
}

// SnapshotRow is the Parquet projection of one stored snapshot.
type SnapshotRow struct {
	// Repo is the logical repository name
	Repo string `parquet:"repo,snappy"`

	// Branch is the branch the snapshot was recorded for
	Branch string `parquet:"branch,snappy"`

	// RecordedAt is when the snapshot was taken
	RecordedAt time.Time `parquet:"recorded_at,snappy"`

	// QualityScore is the composite quality score at that point
	QualityScore float64 `parquet:"quality_score,snappy"`

	// ComplexityAvg is the mean file complexity at that point
	ComplexityAvg float64 `parquet:"complexity_avg,snappy"`

	// TotalLines is the total analyzable line count at that point
	TotalLines int64 `parquet:"total_lines,snappy"`
}

// ConvertFileMetrics converts schema file metrics to Parquet rows.
func ConvertFileMetrics(details []schema.FileMetric) []FileMetricRow {
	rows := make([]FileMetricRow, 0, len(details))
	for _, fm := range details {
		rows = append(rows, FileMetricRow{
			FilePath:        fm.Path,
			Lines:           int32(fm.Lines),
			Complexity:      fm.Complexity,
			Maintainability: fm.Maintainability,
		})
	}
	return rows
}

// ConvertSnapshots converts schema snapshots to Parquet rows.
func ConvertSnapshots(snaps []schema.Snapshot) []SnapshotRow {
	rows := make([]SnapshotRow, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, SnapshotRow{
			Repo:          s.Repo,
			Branch:        s.Branch,
			RecordedAt:    s.Timestamp,
			QualityScore:  s.QualityScore,
			ComplexityAvg: s.ComplexityAvg,
			TotalLines:    int64(s.TotalLines),
		})
	}
	return rows
}

// WriteFileMetricsParquet writes file metric rows to a Parquet file.
func WriteFileMetricsParquet(data []FileMetricRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteSnapshotsParquet writes snapshot rows to a Parquet file.
func WriteSnapshotsParquet(data []SnapshotRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes any row type to a Parquet file using struct schema
// inference from the parquet tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
