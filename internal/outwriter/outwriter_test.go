package outwriter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		RepoName:  "myrepo",
		Branch:    "main",
		Workers:   2,
		Precision: 1,
		Output:    schema.TextOut,
		Width:     120,
		Policy:    schema.DefaultScanPolicy(),
	}
}

func sampleMetrics() *schema.CommitMetrics {
	return &schema.CommitMetrics{
		TotalLines:           120,
		FilesChanged:         2,
		ComplexityAvg:        3.25,
		MaintainabilityIndex: 72.5,
		QualityScore:         81.3,
		FileDetails: []schema.FileMetric{
			{Path: "a/main.go", Lines: 80, Complexity: 4.5, Maintainability: 70.0},
			{Path: "b/util.go", Lines: 40, Complexity: 2.0, Maintainability: 75.0},
		},
	}
}

func TestWriteMetricsTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	cfg.Detail = true
	fmtFloat := floatFormatter(cfg.Precision)

	require.NoError(t, writeMetricsTable(&buf, sampleMetrics(), cfg, fmtFloat))

	out := buf.String()
	assert.Contains(t, out, "Total lines:       120")
	assert.Contains(t, out, "Quality score:     81.3 (Good)")
	assert.Contains(t, out, "a/main.go")
	assert.Contains(t, out, "b/util.go")
}

func TestWriteCSVMetrics(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat := floatFormatter(2)

	require.NoError(t, writeCSVMetrics(&buf, sampleMetrics(), fmtFloat))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "path,lines,complexity,maintainability", lines[0])
	assert.Equal(t, "a/main.go,80,4.50,70.00", lines[1])
}

func TestPrintMetricsJSONToFile(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "metrics.json")

	require.NoError(t, PrintMetrics(sampleMetrics(), cfg, time.Second))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var decoded schema.CommitMetrics
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 120, decoded.TotalLines)
	assert.Equal(t, 81.3, decoded.QualityScore)
}

func TestWriteIntegrityTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	result := &schema.IntegrityResult{
		Status:       schema.FailStatus,
		ContentHash:  "abc123",
		FilesScanned: 10,
		Issues: []schema.IntegrityIssue{
			{File: "config.py", Kind: schema.SecretIssue, Detail: "potential secret/credential detected", Severity: schema.CriticalSeverity},
			{File: "app.exe", Kind: schema.BinaryIssue, Detail: "binary file detected: .exe", Severity: schema.WarningSeverity},
		},
	}

	require.NoError(t, writeIntegrityTable(&buf, result, cfg))

	out := buf.String()
	assert.Contains(t, out, "Status:        fail")
	assert.Contains(t, out, "Content hash:  abc123")
	assert.Contains(t, out, "config.py")
	assert.Contains(t, out, "critical")
}

func TestWriteDeprecationsTableCap(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	cfg.Policy.WarningRenderCap = 3

	var warnings []schema.DeprecationWarning
	for i := range 10 {
		warnings = append(warnings, schema.DeprecationWarning{
			File: fmt.Sprintf("f%d.py", i), Line: i + 1,
			Pattern: `\boptparse\b`, Message: "optparse is deprecated. Use argparse instead",
			Language: "Python",
		})
	}

	require.NoError(t, writeDeprecationsTable(&buf, warnings, cfg))

	out := buf.String()
	assert.Contains(t, out, "Deprecated API usages found: 10")
	assert.Contains(t, out, "f2.py")
	assert.NotContains(t, out, "f3.py", "rows past the render cap are hidden")
	assert.Contains(t, out, "... and 7 more")
}

func TestWriteTrendText(t *testing.T) {
	previous := 70.0
	trend := &schema.TrendAnalysis{
		Direction:     schema.ImprovingTrend,
		QualityDelta:  5.0,
		LinesDelta:    120,
		Summary:       "Quality improved +5.0 points (70.0 -> 75.0).",
		PreviousScore: &previous,
		CurrentScore:  75.0,
	}

	var buf bytes.Buffer
	cfg := testConfig()
	fmtFloat := floatFormatter(cfg.Precision)

	require.NoError(t, writeTrendText(&buf, trend, cfg, fmtFloat))

	out := buf.String()
	assert.Contains(t, out, "Direction:      improving")
	assert.Contains(t, out, "Previous score: 70.0")
	assert.Contains(t, out, "Quality improved +5.0 points")
}

func TestWriteReportText(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	report := schema.ReportResult{
		Metrics:   sampleMetrics(),
		Integrity: &schema.IntegrityResult{Status: schema.PassStatus, ContentHash: "deadbeef", FilesScanned: 2},
		Deprecations: []schema.DeprecationWarning{
			{File: "old.py", Line: 3, Pattern: `\boptparse\b`, Message: "optparse is deprecated. Use argparse instead", Language: "Python"},
		},
		Trend: &schema.TrendAnalysis{
			Direction:    schema.StableTrend,
			Summary:      "First run - no baseline to compare against.",
			CurrentScore: 81.3,
		},
	}

	require.NoError(t, writeReportText(&buf, report, cfg, 2*time.Second))

	out := buf.String()
	assert.Contains(t, out, "=== Metrics ===")
	assert.Contains(t, out, "=== Integrity ===")
	assert.Contains(t, out, "=== Deprecations ===")
	assert.Contains(t, out, "=== Trend ===")
	assert.Contains(t, out, "First run - no baseline to compare against.")
}

func TestGetMaxTablePathWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "narrow terminal clamps to minimum", width: 40, want: 15},
		{name: "wide terminal clamps to maximum", width: 200, want: 70},
		{name: "mid terminal leaves room for columns", width: 100, want: 70},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Width = tc.width
			assert.Equal(t, tc.want, GetMaxTablePathWidth(cfg))
		})
	}
}
