package core

import (
	"context"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/schema"
)

// AnalyzeTree walks the configured root, computes a FileMetric for every
// analyzable file and folds the collection into CommitMetrics. LinesAdded and
// LinesDeleted are left at zero; ApplyDiffCounts fills them in afterwards.
func AnalyzeTree(ctx context.Context, cfg *contract.Config) (*schema.CommitMetrics, error) {
	files, err := listAnalyzableFiles(cfg.RootPath, cfg.Policy)
	if err != nil {
		return nil, err
	}

	details := analyzeFiles(ctx, cfg, files)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Worker completion order is nondeterministic; sort so FileDetails and
	// every derived mean are stable across runs.
	sort.Slice(details, func(i, j int) bool { return details[i].Path < details[j].Path })

	return foldFileMetrics(details, cfg.Policy.Weights), nil
}

// listAnalyzableFiles enumerates candidate files under root, applying the
// policy's ignore rules. Hidden directories and known dependency/build
// directories never contribute files.
func listAnalyzableFiles(root string, policy *schema.ScanPolicy) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // unreadable subtrees are silently excluded
		}
		if d.IsDir() {
			if path != root && shouldSkipDir(d.Name(), policy) {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// shouldSkipDir reports whether a directory name is excluded from scans.
func shouldSkipDir(name string, policy *schema.ScanPolicy) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ignored := policy.IgnoredDirs[name]
	return ignored
}

// analyzeFiles processes all files in parallel using a worker pool of
// cfg.Workers goroutines. Files that yield no metric are dropped.
func analyzeFiles(ctx context.Context, cfg *contract.Config, files []string) []schema.FileMetric {
	fileCh := make(chan string, len(files))
	resultCh := make(chan schema.FileMetric, len(files))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for path := range fileCh {
				if ctx.Err() != nil {
					continue // drain without analyzing once canceled
				}
				if fm := analyzeFile(path, cfg.RootPath, cfg.Policy); fm != nil {
					resultCh <- *fm
				}
			}
		})
	}

	for _, f := range files {
		fileCh <- f
	}
	close(fileCh)
	wg.Wait()
	close(resultCh)

	details := make([]schema.FileMetric, 0, len(files))
	for fm := range resultCh {
		details = append(details, fm)
	}
	return details
}

// analyzeFile computes the metric for a single file, or nil when the file is
// not applicable: extension outside the allow-list, unreadable, or not
// decodable as text. Skips are silent per the error-handling contract.
func analyzeFile(path, root string, policy *schema.ScanPolicy) *schema.FileMetric {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := policy.AnalyzableExtensions[ext]; !ok {
		return nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	if !isText(src) {
		return nil
	}

	lines := countLines(src)
	estimator := estimatorFor(ext, policy)

	complexity := estimator.EstimateComplexity(src)
	if complexity < 0 {
		complexity = 0
	}

	maintainability := estimator.EstimateMaintainability(src, lines)
	maintainability = math.Min(math.Max(maintainability, 0), 100)

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	return &schema.FileMetric{
		Path:            filepath.ToSlash(rel),
		Lines:           lines,
		Complexity:      round2(complexity),
		Maintainability: round2(maintainability),
	}
}

// countLines counts newline-terminated lines, plus one more when the file
// ends with content and no final newline. Empty files yield 0.
func countLines(src []byte) int {
	if len(src) == 0 {
		return 0
	}
	count := 0
	for _, b := range src {
		if b == '\n' {
			count++
		}
	}
	if src[len(src)-1] != '\n' {
		count++
	}
	return count
}

// isText reports whether the bytes decode as text: valid UTF-8 and free of
// NUL bytes.
func isText(src []byte) bool {
	for _, b := range src {
		if b == 0 {
			return false
		}
	}
	return utf8.Valid(src)
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to 1 decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
