package schema

// TrendAnalysis compares the current aggregate metrics against the most
// recent stored snapshot for the same repo and branch.
type TrendAnalysis struct {
	Direction       TrendDirection `json:"direction"`        // improving | stable | declining
	QualityDelta    float64        `json:"quality_delta"`    // current - previous quality score
	ComplexityDelta float64        `json:"complexity_delta"` // current - previous complexity average
	LinesDelta      int            `json:"lines_delta"`      // current - previous total lines
	Summary         string         `json:"summary"`          // Human-readable narration of the deltas
	PreviousScore   *float64       `json:"previous_score"`   // nil on the first ever run
	CurrentScore    float64        `json:"current_score"`
}

// HasBaseline reports whether a previous snapshot was available.
func (t *TrendAnalysis) HasBaseline() bool {
	return t.PreviousScore != nil
}
