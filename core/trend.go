package core

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/schema"
)

// ComputeTrend compares the current metrics against the most recent snapshot
// for the same repo and branch. Without a baseline the direction is stable
// with zero deltas; the store is read-only here, recording a new snapshot is
// the caller's decision.
func ComputeTrend(ctx context.Context, store contract.SnapshotStore, cfg *contract.Config, current *schema.CommitMetrics) (*schema.TrendAnalysis, error) {
	previous, err := store.Latest(ctx, cfg.RepoName, cfg.Branch)
	if err != nil {
		return nil, err
	}

	if previous == nil {
		return &schema.TrendAnalysis{
			Direction:    schema.StableTrend,
			Summary:      "First run - no baseline to compare against.",
			CurrentScore: current.QualityScore,
		}, nil
	}

	thresholds := cfg.Policy.Trend
	qualityDelta := current.QualityScore - previous.QualityScore
	complexityDelta := current.ComplexityAvg - previous.ComplexityAvg
	linesDelta := current.TotalLines - previous.TotalLines

	direction := schema.StableTrend
	switch {
	case qualityDelta > thresholds.QualityDeadBand:
		direction = schema.ImprovingTrend
	case qualityDelta < -thresholds.QualityDeadBand:
		direction = schema.DecliningTrend
	}

	var parts []string
	switch direction {
	case schema.ImprovingTrend:
		parts = append(parts, fmt.Sprintf("Quality improved %+.1f points (%.1f -> %.1f)",
			qualityDelta, previous.QualityScore, current.QualityScore))
	case schema.DecliningTrend:
		parts = append(parts, fmt.Sprintf("Quality dropped %+.1f points (%.1f -> %.1f)",
			qualityDelta, previous.QualityScore, current.QualityScore))
	default:
		parts = append(parts, fmt.Sprintf("Quality stable at %.1f", current.QualityScore))
	}

	if absInt(linesDelta) > thresholds.LinesNoise {
		verb := "grew"
		if linesDelta < 0 {
			verb = "shrank"
		}
		parts = append(parts, fmt.Sprintf("Codebase %s by %d lines", verb, absInt(linesDelta)))
	}

	if math.Abs(complexityDelta) > thresholds.ComplexityNoise {
		verb := "rose"
		if complexityDelta < 0 {
			verb = "fell"
		}
		parts = append(parts, fmt.Sprintf("Complexity %s by %.1f", verb, math.Abs(complexityDelta)))
	}

	prevScore := previous.QualityScore
	return &schema.TrendAnalysis{
		Direction:       direction,
		QualityDelta:    round2(qualityDelta),
		ComplexityDelta: round2(complexityDelta),
		LinesDelta:      linesDelta,
		Summary:         strings.Join(parts, ". ") + ".",
		PreviousScore:   &prevScore,
		CurrentScore:    current.QualityScore,
	}, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
