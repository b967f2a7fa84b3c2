package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/schema"
)

// PrintTrend outputs a trend analysis, dispatching based on the output format
// configured.
func PrintTrend(trend *schema.TrendAnalysis, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := floatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, trend)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeCSVTrend(w, trend, fmtFloat)
		}, "Wrote CSV")

	case schema.ParquetOut:
		return errors.New("parquet output is not supported for trend analysis")

	default:
		return writeWithFile(cfg, func(w io.Writer) error {
			if err := writeTrendText(w, trend, cfg, fmtFloat); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration)
			return err
		}, "Wrote table")
	}
}

// writeTrendText writes the human-readable trend summary.
func writeTrendText(w io.Writer, trend *schema.TrendAnalysis, cfg *contract.Config, fmtFloat func(float64) string) error {
	direction := string(trend.Direction)
	if cfg.UseColors {
		direction = contract.GetColorDirectionLabel(trend.Direction)
	}
	fmt.Fprintf(w, "Direction:      %s\n", direction)
	fmt.Fprintf(w, "Current score:  %s (%s)\n", fmtFloat(trend.CurrentScore), qualityLabel(trend.CurrentScore, cfg))
	if trend.HasBaseline() {
		fmt.Fprintf(w, "Previous score: %s\n", fmtFloat(*trend.PreviousScore))
		fmt.Fprintf(w, "Quality delta:  %+.2f\n", trend.QualityDelta)
		fmt.Fprintf(w, "Lines delta:    %+d\n", trend.LinesDelta)
	}
	_, err := fmt.Fprintf(w, "Summary:        %s\n", trend.Summary)
	return err
}

// writeCSVTrend writes the trend as a single CSV record.
func writeCSVTrend(w io.Writer, trend *schema.TrendAnalysis, fmtFloat func(float64) string) error {
	header := []string{"direction", "quality_delta", "complexity_delta", "lines_delta", "previous_score", "current_score", "summary"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		previous := ""
		if trend.HasBaseline() {
			previous = fmtFloat(*trend.PreviousScore)
		}
		record := []string{
			string(trend.Direction),
			fmt.Sprintf("%.2f", trend.QualityDelta),
			fmt.Sprintf("%.2f", trend.ComplexityDelta),
			fmt.Sprintf("%d", trend.LinesDelta),
			previous,
			fmtFloat(trend.CurrentScore),
			trend.Summary,
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
		return nil
	})
}
