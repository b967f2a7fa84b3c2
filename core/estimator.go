package core

import "github.com/codegauge/codegauge/schema"

// complexityEstimator is the per-language strategy behind file metrics.
// One implementation is AST-aware for the reference language (Go); the other
// is a generic brace-nesting heuristic for everything else. Dispatch happens
// by extension via estimatorFor, not conditional chains.
type complexityEstimator interface {
	// EstimateComplexity returns a cyclomatic-complexity estimate (>= 0).
	EstimateComplexity(src []byte) float64

	// EstimateMaintainability returns a maintainability estimate. The caller
	// clamps the result to [0,100].
	EstimateMaintainability(src []byte, lines int) float64
}

// referenceExtension is the one extension analyzed with a real AST.
const referenceExtension = ".go"

// estimatorFor returns the strategy for a recognized extension.
func estimatorFor(ext string, policy *schema.ScanPolicy) complexityEstimator {
	if ext == referenceExtension {
		return astEstimator{}
	}
	return braceEstimator{nestingCap: policy.NestingCap}
}
