package core

import (
	"testing"

	"github.com/codegauge/codegauge/schema"
	"github.com/stretchr/testify/assert"
)

func TestBraceEstimatorComplexity(t *testing.T) {
	e := braceEstimator{nestingCap: schema.DefaultNestingCap}

	tests := []struct {
		name string
		src  string
		want float64
	}{
		{name: "no braces", src: "x = 1\ny = 2\n", want: 0},
		{name: "flat block", src: "function f() { return 1; }", want: 1},
		{name: "nested blocks", src: "if (a) { if (b) { if (c) { d(); } } }", want: 3},
		{name: "unbalanced close ignored", src: "} } {", want: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.EstimateComplexity([]byte(tc.src)))
		})
	}
}

func TestBraceEstimatorCap(t *testing.T) {
	e := braceEstimator{nestingCap: 3}

	deep := ""
	for range 10 {
		deep += "{"
	}
	assert.Equal(t, 3.0, e.EstimateComplexity([]byte(deep)))
}

func TestBraceEstimatorMaintainability(t *testing.T) {
	e := braceEstimator{nestingCap: schema.DefaultNestingCap}

	flat := e.EstimateMaintainability([]byte("x = 1"), 1)
	nested := e.EstimateMaintainability([]byte("{ { { { } } } }"), 1)
	assert.Greater(t, flat, nested, "deeper nesting erodes the estimate")

	long := e.EstimateMaintainability([]byte("x = 1"), 5000)
	assert.Less(t, long, flat, "longer files erode the estimate")
}

func TestEstimatorFor(t *testing.T) {
	policy := schema.DefaultScanPolicy()

	_, isAST := estimatorFor(".go", policy).(astEstimator)
	assert.True(t, isAST)

	_, isBrace := estimatorFor(".py", policy).(braceEstimator)
	assert.True(t, isBrace)
}
