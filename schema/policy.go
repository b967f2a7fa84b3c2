package schema

import "maps"

// Default policy values.
const (
	DefaultMaxFileSizeBytes = 10 * 1024 * 1024 // integrity size check threshold
	DefaultTextReadCap      = 500 * 1024       // max bytes inspected for secret/debug patterns
	DefaultNestingCap       = 20               // brace-nesting complexity cap
	DefaultWarningRenderCap = 50               // deprecation table row cap
)

// QualityWeights is the fixed-weight blend behind the composite quality score.
// Size and breadth of a change are penalized independently of code quality to
// discourage large unreviewable diffs even when the code itself is clean.
type QualityWeights struct {
	Maintainability float64 // weight of the maintainability index
	Complexity      float64 // weight of the complexity penalty
	ChangeSize      float64 // weight of the added+deleted step penalty
	FilesChanged    float64 // weight of the files-changed step penalty
}

// TrendThresholds holds the dead-band and noise floors for trend narration.
type TrendThresholds struct {
	QualityDeadBand float64 // |quality delta| inside this band is "stable"
	ComplexityNoise float64 // complexity deltas below this are never narrated
	LinesNoise      int     // line-count deltas below this are never narrated
}

// ScanPolicy carries every tunable the pipeline consults: ignore rules,
// extension sets, size limits, scoring weights and trend thresholds. It is
// explicit immutable configuration passed into each component rather than
// process-wide constants, so tests can run with overridden thresholds.
type ScanPolicy struct {
	// IgnoredDirs are directory names skipped by the tree walker and the
	// per-file integrity/deprecation scans. Hidden directories are always
	// skipped in addition to these.
	IgnoredDirs map[string]struct{}

	// AnalyzableExtensions is the allow-list of source extensions that
	// yield a FileMetric.
	AnalyzableExtensions map[string]struct{}

	// BinaryExtensions flag a file as binary during the integrity scan.
	BinaryExtensions map[string]struct{}

	MaxFileSizeBytes int64 // integrity size threshold
	TextReadCap      int64 // cap on bytes read for pattern inspection
	NestingCap       int   // cap on brace-nesting complexity

	Weights          QualityWeights
	Trend            TrendThresholds
	WarningRenderCap int // max deprecation warnings rendered in detail
}

// DefaultScanPolicy returns the policy the CLI runs with.
func DefaultScanPolicy() *ScanPolicy {
	return &ScanPolicy{
		IgnoredDirs: map[string]struct{}{
			"node_modules": {},
			"__pycache__":  {},
			"venv":         {},
			"dist":         {},
			"build":        {},
			"target":       {},
			"vendor":       {},
		},
		AnalyzableExtensions: map[string]struct{}{
			".py": {}, ".js": {}, ".ts": {}, ".jsx": {}, ".tsx": {},
			".java": {}, ".go": {}, ".rs": {}, ".rb": {}, ".php": {},
			".c": {}, ".cpp": {}, ".h": {}, ".cs": {},
		},
		BinaryExtensions: map[string]struct{}{
			".exe": {}, ".dll": {}, ".so": {}, ".dylib": {},
			".bin": {}, ".zip": {}, ".tar": {}, ".gz": {},
		},
		MaxFileSizeBytes: DefaultMaxFileSizeBytes,
		TextReadCap:      DefaultTextReadCap,
		NestingCap:       DefaultNestingCap,
		Weights: QualityWeights{
			Maintainability: 0.40,
			Complexity:      0.30,
			ChangeSize:      0.20,
			FilesChanged:    0.10,
		},
		Trend: TrendThresholds{
			QualityDeadBand: 1.0,
			ComplexityNoise: 0.5,
			LinesNoise:      50,
		},
		WarningRenderCap: DefaultWarningRenderCap,
	}
}

// Clone returns a deep copy of the policy so callers can tweak thresholds
// without mutating a shared instance.
func (p *ScanPolicy) Clone() *ScanPolicy {
	clone := *p
	clone.IgnoredDirs = maps.Clone(p.IgnoredDirs)
	clone.AnalyzableExtensions = maps.Clone(p.AnalyzableExtensions)
	clone.BinaryExtensions = maps.Clone(p.BinaryExtensions)
	return &clone
}
