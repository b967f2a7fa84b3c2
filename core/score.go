package core

import (
	"math"

	"github.com/codegauge/codegauge/schema"
)

// foldFileMetrics reduces an ordered sequence of FileMetric values into
// CommitMetrics. Means are 0 when no files were analyzable.
func foldFileMetrics(details []schema.FileMetric, weights schema.QualityWeights) *schema.CommitMetrics {
	m := &schema.CommitMetrics{FileDetails: details, FilesChanged: len(details)}

	var complexitySum, maintainabilitySum float64
	for _, fm := range details {
		m.TotalLines += fm.Lines
		complexitySum += fm.Complexity
		maintainabilitySum += fm.Maintainability
	}
	if n := len(details); n > 0 {
		m.ComplexityAvg = round2(complexitySum / float64(n))
		m.MaintainabilityIndex = round2(maintainabilitySum / float64(n))
	}

	m.QualityScore = computeQualityScore(m, weights)
	return m
}

// ApplyDiffCounts sets the diff line counts and re-derives the quality score,
// since the change-size component depends on them. QualityScore is never
// assigned directly anywhere else either.
func ApplyDiffCounts(m *schema.CommitMetrics, added, deleted int, weights schema.QualityWeights) {
	m.LinesAdded = added
	m.LinesDeleted = deleted
	m.QualityScore = computeQualityScore(m, weights)
}

// computeQualityScore blends four components into a 0-100 composite:
// maintainability, a complexity penalty, a change-size penalty and a
// files-changed penalty. The two penalties are step functions of diff size
// and breadth so that large unreviewable pushes score lower even when the
// code itself is clean.
func computeQualityScore(m *schema.CommitMetrics, w schema.QualityWeights) float64 {
	miScore := math.Min(m.MaintainabilityIndex, 100)

	complexityScore := math.Max(0, 100-m.ComplexityAvg*10)

	totalChanged := m.LinesAdded + m.LinesDeleted
	var sizeScore float64
	switch {
	case totalChanged <= 50:
		sizeScore = 100
	case totalChanged <= 200:
		sizeScore = 80
	case totalChanged <= 500:
		sizeScore = 60
	default:
		sizeScore = math.Max(20, 100-float64(totalChanged)/20)
	}

	var filesScore float64
	switch {
	case m.FilesChanged <= 3:
		filesScore = 100
	case m.FilesChanged <= 10:
		filesScore = 70
	default:
		filesScore = math.Max(20, 100-float64(m.FilesChanged)*3)
	}

	return round1(miScore*w.Maintainability +
		complexityScore*w.Complexity +
		sizeScore*w.ChangeSize +
		filesScore*w.FilesChanged)
}
