package core

import (
	"testing"

	"github.com/codegauge/codegauge/schema"
	"github.com/stretchr/testify/assert"
)

func defaultWeights() schema.QualityWeights {
	return schema.DefaultScanPolicy().Weights
}

func TestFoldFileMetricsEmpty(t *testing.T) {
	m := foldFileMetrics(nil, defaultWeights())

	assert.Equal(t, 0, m.TotalLines)
	assert.Equal(t, 0, m.FilesChanged)
	assert.Equal(t, 0.0, m.ComplexityAvg, "means are 0 when no files were analyzable")
	assert.Equal(t, 0.0, m.MaintainabilityIndex)
}

func TestFoldFileMetricsAverages(t *testing.T) {
	details := []schema.FileMetric{
		{Path: "a.go", Lines: 100, Complexity: 2.0, Maintainability: 80.0},
		{Path: "b.go", Lines: 50, Complexity: 4.0, Maintainability: 60.0},
	}
	m := foldFileMetrics(details, defaultWeights())

	assert.Equal(t, 150, m.TotalLines)
	assert.Equal(t, 2, m.FilesChanged)
	assert.Equal(t, 3.0, m.ComplexityAvg)
	assert.Equal(t, 70.0, m.MaintainabilityIndex)
	assert.Greater(t, m.QualityScore, 0.0)
	assert.LessOrEqual(t, m.QualityScore, 100.0)
}

func TestComputeQualityScoreComponents(t *testing.T) {
	tests := []struct {
		name string
		m    schema.CommitMetrics
		want float64
	}{
		{
			name: "perfect small change",
			m:    schema.CommitMetrics{MaintainabilityIndex: 100, FilesChanged: 1},
			want: 100.0,
		},
		{
			name: "medium change size steps down",
			m:    schema.CommitMetrics{MaintainabilityIndex: 100, FilesChanged: 1, LinesAdded: 100, LinesDeleted: 10},
			want: 96.0, // size score drops from 100 to 80 at 20% weight
		},
		{
			name: "many files changed steps down",
			m:    schema.CommitMetrics{MaintainabilityIndex: 100, FilesChanged: 5},
			want: 97.0, // files score drops from 100 to 70 at 10% weight
		},
		{
			name: "high complexity erodes score",
			m:    schema.CommitMetrics{MaintainabilityIndex: 100, FilesChanged: 1, ComplexityAvg: 10},
			want: 70.0, // complexity component bottoms out at 0
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, computeQualityScore(&tc.m, defaultWeights()))
		})
	}
}

func TestApplyDiffCountsRederivesScore(t *testing.T) {
	m := foldFileMetrics([]schema.FileMetric{
		{Path: "a.go", Lines: 100, Complexity: 2.0, Maintainability: 80.0},
	}, defaultWeights())
	before := m.QualityScore

	ApplyDiffCounts(m, 400, 300, defaultWeights())

	assert.Equal(t, 400, m.LinesAdded)
	assert.Equal(t, 300, m.LinesDeleted)
	assert.Less(t, m.QualityScore, before, "a large diff must lower the composite score")
}

func TestQualityScoreMonotonicInMaintainability(t *testing.T) {
	base := schema.CommitMetrics{ComplexityAvg: 3, FilesChanged: 4, LinesAdded: 150, LinesDeleted: 30}
	var previous = -1.0
	for mi := 0.0; mi <= 100.0; mi += 5.0 {
		m := base
		m.MaintainabilityIndex = mi
		score := computeQualityScore(&m, defaultWeights())
		assert.GreaterOrEqual(t, score, previous, "score must not drop as maintainability rises (at MI %.0f)", mi)
		previous = score
	}
}

func TestQualityScoreMonotonicInChangeSize(t *testing.T) {
	base := schema.CommitMetrics{MaintainabilityIndex: 90, ComplexityAvg: 2, FilesChanged: 2}
	var previous = 101.0
	for _, changed := range []int{10, 100, 300, 1000, 5000} {
		m := base
		m.LinesAdded = changed
		score := computeQualityScore(&m, defaultWeights())
		assert.LessOrEqual(t, score, previous, "score must not rise as the diff grows (at %d lines)", changed)
		previous = score
	}
}
