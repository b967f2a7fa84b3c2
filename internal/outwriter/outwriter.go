// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the
// core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a full pipeline report using the configured output format.
func (ow *OutWriter) WriteReport(report schema.ReportResult, cfg *contract.Config, duration time.Duration) error {
	return PrintReport(report, cfg, duration)
}

// WriteMetrics prints file metrics using the configured output format.
func (ow *OutWriter) WriteMetrics(metrics *schema.CommitMetrics, cfg *contract.Config, duration time.Duration) error {
	return PrintMetrics(metrics, cfg, duration)
}

// WriteIntegrity prints an integrity scan result using the configured output format.
func (ow *OutWriter) WriteIntegrity(result *schema.IntegrityResult, cfg *contract.Config, duration time.Duration) error {
	return PrintIntegrity(result, cfg, duration)
}

// WriteDeprecations prints deprecation warnings using the configured output format.
func (ow *OutWriter) WriteDeprecations(warnings []schema.DeprecationWarning, cfg *contract.Config, duration time.Duration) error {
	return PrintDeprecations(warnings, cfg, duration)
}

// WriteTrend prints a trend analysis using the configured output format.
func (ow *OutWriter) WriteTrend(trend *schema.TrendAnalysis, cfg *contract.Config, duration time.Duration) error {
	return PrintTrend(trend, cfg, duration)
}
