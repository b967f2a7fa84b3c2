package schema

// ReportResult bundles the outputs of all four pipeline stages for one run.
// Any stage the caller skipped is nil.
type ReportResult struct {
	Metrics      *CommitMetrics       `json:"metrics"`
	Integrity    *IntegrityResult     `json:"integrity"`
	Deprecations []DeprecationWarning `json:"deprecations"`
	Trend        *TrendAnalysis       `json:"trend"`
}
