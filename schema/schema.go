// Package schema has configs, models and constants for all parts of codegauge.
package schema

// FileMetric holds the size, complexity and maintainability estimates for a
// single analyzed source file. It is created once per scanned file and never
// mutated afterwards.
type FileMetric struct {
	Path            string  `json:"path"`            // Relative path to the file in the scanned tree
	Lines           int     `json:"lines"`           // Newline-terminated lines, +1 for a trailing partial line
	Complexity      float64 `json:"complexity"`      // Cyclomatic estimate, >= 0, rounded to 2 decimals
	Maintainability float64 `json:"maintainability"` // Maintainability estimate in [0,100], rounded to 2 decimals
}

// CommitMetrics is the aggregate view of one push/commit worth of code.
// It is built incrementally by folding FileMetric values; QualityScore is
// always derived from the other fields and never assigned directly.
type CommitMetrics struct {
	TotalLines           int          `json:"total_lines"`
	LinesAdded           int          `json:"lines_added"`
	LinesDeleted         int          `json:"lines_deleted"`
	FilesChanged         int          `json:"files_changed"`
	ComplexityAvg        float64      `json:"complexity_avg"`
	MaintainabilityIndex float64      `json:"maintainability_index"`
	QualityScore         float64      `json:"quality_score"`
	FileDetails          []FileMetric `json:"file_details"`
}
