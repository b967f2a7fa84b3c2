package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const branchySource = `package main

func simple() {}

func branchy(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		if i%2 == 0 && i > 2 {
			total++
		}
	}
	return total
}
`

func TestAstEstimatorComplexity(t *testing.T) {
	e := astEstimator{}

	// simple() is 1; branchy() is 1 + for + if + && = 4; mean is 2.5
	assert.Equal(t, 2.5, e.EstimateComplexity([]byte(branchySource)))
}

func TestAstEstimatorComplexityEdgeCases(t *testing.T) {
	e := astEstimator{}

	tests := []struct {
		name string
		src  string
		want float64
	}{
		{name: "no functions", src: "package main\n\nvar x = 1\n", want: 0},
		{name: "unparseable source", src: "package main\n\nfunc broken( {\n", want: 0},
		{
			name: "switch counts non-default cases",
			src: `package main

func classify(n int) string {
	switch {
	case n < 0:
		return "neg"
	case n == 0:
		return "zero"
	default:
		return "pos"
	}
}
`,
			want: 3, // 1 + two case clauses, default adds nothing
		},
		{
			name: "select comm clauses count",
			src: `package main

func pump(a, b chan int) int {
	select {
	case v := <-a:
		return v
	case v := <-b:
		return v
	}
}
`,
			want: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.EstimateComplexity([]byte(tc.src)))
		})
	}
}

func TestAstEstimatorMaintainability(t *testing.T) {
	e := astEstimator{}

	got := e.EstimateMaintainability([]byte(branchySource), 13)
	assert.Greater(t, got, 0.0)

	// Unparseable source falls back to the moderate default.
	assert.Equal(t, 50.0, e.EstimateMaintainability([]byte("func nope( {"), 1))
}

func TestAstEstimatorMaintainabilityShrinksWithSize(t *testing.T) {
	e := astEstimator{}

	small := "package main\n\nfunc a() {}\n"
	var largeBody string
	for range 60 {
		largeBody += "\tx++\n"
	}
	large := "package main\n\nfunc a() {\n\tx := 0\n" + largeBody + "\t_ = x\n}\n"

	smallScore := e.EstimateMaintainability([]byte(small), 3)
	largeScore := e.EstimateMaintainability([]byte(large), 66)
	assert.Greater(t, smallScore, largeScore, "longer denser files score lower")
}

func TestHalsteadVolume(t *testing.T) {
	assert.Equal(t, 1.0, halsteadVolume(nil), "empty source has unit volume")
	assert.Greater(t, halsteadVolume([]byte(branchySource)), 1.0)
}
