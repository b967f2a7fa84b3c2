package core

import (
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"math"
	"strings"
)

// astEstimator analyzes Go source with the real parser. Complexity is the
// arithmetic mean of per-function cyclomatic complexity; maintainability is
// the classic maintainability-index formula over Halstead volume, mean
// complexity, line count and comment ratio.
type astEstimator struct{}

var _ complexityEstimator = astEstimator{} // Compile-time check

// EstimateComplexity implements the complexityEstimator interface.
// A file with no function declarations yields 0. A file that fails to parse
// also yields 0; broken source contributes no complexity signal.
func (astEstimator) EstimateComplexity(src []byte) float64 {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", src, parser.SkipObjectResolution)
	if err != nil {
		return 0
	}
	values := functionComplexities(file)
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// EstimateMaintainability implements the complexityEstimator interface.
// Extraction failure falls back to 50.0: a file we cannot parse is treated as
// moderately maintainable rather than perfect or hopeless.
func (astEstimator) EstimateMaintainability(src []byte, lines int) float64 {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return 50.0
	}

	volume := halsteadVolume(src)

	var meanComplexity float64
	if values := functionComplexities(file); len(values) > 0 {
		sum := 0
		for _, v := range values {
			sum += v
		}
		meanComplexity = float64(sum) / float64(len(values))
	}

	sloc := float64(lines)
	if sloc < 1 {
		sloc = 1
	}

	commentRatio := float64(commentLineCount(file)) / sloc
	if commentRatio > 1 {
		commentRatio = 1
	}

	mi := 171 -
		5.2*math.Log(math.Max(volume, 1)) -
		0.23*meanComplexity -
		16.2*math.Log(sloc) +
		50*math.Sin(math.Sqrt(2.4*commentRatio))
	return mi * 100 / 171
}

// functionComplexities returns the cyclomatic complexity of every declared
// function and method with a body.
func functionComplexities(file *ast.File) []int {
	var values []int
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		values = append(values, cyclomatic(fn.Body))
	}
	return values
}

// cyclomatic counts independent paths through one function body: one for the
// straight line plus one per branching construct and short-circuit operator.
func cyclomatic(body ast.Node) int {
	count := 1
	ast.Inspect(body, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt, *ast.CommClause:
			count++
		case *ast.CaseClause:
			// default clauses do not add a path
			if node.List != nil {
				count++
			}
		case *ast.BinaryExpr:
			if node.Op == token.LAND || node.Op == token.LOR {
				count++
			}
		}
		return true
	})
	return count
}

// halsteadVolume computes N*log2(n) over the token stream, where N is total
// operator+operand occurrences and n the distinct count. Comments and the
// automatically inserted semicolons are excluded.
func halsteadVolume(src []byte) float64 {
	fset := token.NewFileSet()
	file := fset.AddFile("src.go", fset.Base(), len(src))

	var s scanner.Scanner
	s.Init(file, src, nil, 0)

	occurrences := 0
	distinct := make(map[string]struct{})
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		key := tok.String()
		if tok.IsLiteral() && lit != "" {
			key = lit
		}
		occurrences++
		distinct[key] = struct{}{}
	}
	if len(distinct) == 0 {
		return 1
	}
	return float64(occurrences) * math.Log2(float64(len(distinct)))
}

// commentLineCount counts source lines occupied by comments.
func commentLineCount(file *ast.File) int {
	count := 0
	for _, group := range file.Comments {
		for _, comment := range group.List {
			count += strings.Count(comment.Text, "\n") + 1
		}
	}
	return count
}
