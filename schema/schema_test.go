package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIntegrityResultHasCritical checks the fail-iff-critical invariant helper.
func TestIntegrityResultHasCritical(t *testing.T) {
	tests := []struct {
		name     string
		issues   []IntegrityIssue
		expected bool
	}{
		{
			name:     "no issues",
			issues:   nil,
			expected: false,
		},
		{
			name: "warnings only",
			issues: []IntegrityIssue{
				{File: "a.zip", Kind: BinaryIssue, Severity: WarningSeverity},
				{File: "b.js", Kind: DebugIssue, Severity: WarningSeverity},
			},
			expected: false,
		},
		{
			name: "one critical among warnings",
			issues: []IntegrityIssue{
				{File: "a.zip", Kind: BinaryIssue, Severity: WarningSeverity},
				{File: "cfg.py", Kind: SecretIssue, Severity: CriticalSeverity},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &IntegrityResult{Issues: tt.issues}
			assert.Equal(t, tt.expected, r.HasCritical())
		})
	}
}

// TestTrendAnalysisHasBaseline distinguishes first runs from baselined runs.
func TestTrendAnalysisHasBaseline(t *testing.T) {
	first := &TrendAnalysis{Direction: StableTrend}
	assert.False(t, first.HasBaseline())

	prev := 70.0
	later := &TrendAnalysis{Direction: ImprovingTrend, PreviousScore: &prev}
	assert.True(t, later.HasBaseline())
}
