package core

// braceEstimator approximates complexity for languages we do not parse.
// Maximum nesting depth of {} pairs is a crude but serviceable proxy; the cap
// prevents pathological files from dominating a commit-level average.
type braceEstimator struct {
	nestingCap int
}

var _ complexityEstimator = braceEstimator{} // Compile-time check

// EstimateComplexity implements the complexityEstimator interface.
func (e braceEstimator) EstimateComplexity(src []byte) float64 {
	nesting := 0
	maxNesting := 0
	for _, b := range src {
		switch b {
		case '{':
			nesting++
			if nesting > maxNesting {
				maxNesting = nesting
			}
		case '}':
			if nesting > 0 {
				nesting--
			}
		}
	}
	if maxNesting > e.nestingCap {
		return float64(e.nestingCap)
	}
	return float64(maxNesting)
}

// EstimateMaintainability implements the complexityEstimator interface.
// Deeper nesting and longer files both erode the estimate.
func (e braceEstimator) EstimateMaintainability(src []byte, lines int) float64 {
	complexity := e.EstimateComplexity(src)
	return 100 - complexity*4 - float64(lines)/50
}
