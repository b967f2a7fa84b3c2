// Package core has core logic for metrics, integrity, deprecation and trend analysis.
package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/internal/outwriter"
	"github.com/codegauge/codegauge/internal/snapstore"
	"github.com/codegauge/codegauge/schema"
	"golang.org/x/sync/errgroup"
)

// ExecutorFunc defines the function signature for executing different analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteReport runs the full pipeline: metrics, integrity and deprecation
// scans concurrently, then diff counting and the trend comparison, and prints
// the combined report. A new snapshot is recorded only when every stage
// succeeded, so a partial run can never poison the baseline history.
func ExecuteReport(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	logHeader(cfg, "Full report", "\U0001F4CA")

	var (
		metrics      *schema.CommitMetrics
		integrity    *schema.IntegrityResult
		deprecations []schema.DeprecationWarning
	)

	// The three scans are independent walks over the same immutable tree.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		metrics, err = AnalyzeTree(gctx, cfg)
		return err
	})
	g.Go(func() error {
		var err error
		integrity, err = ScanIntegrity(gctx, cfg)
		return err
	})
	g.Go(func() error {
		var err error
		deprecations, err = ScanDeprecations(gctx, cfg)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.DiffFile != "" {
		added, deleted, err := CountDiffFile(cfg.DiffFile)
		if err != nil {
			return fmt.Errorf("cannot read diff input: %w", err)
		}
		ApplyDiffCounts(metrics, added, deleted, cfg.Policy.Weights)
	}

	store, err := snapstore.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	trend, err := ComputeTrend(ctx, store, cfg, metrics)
	if err != nil {
		return err
	}

	report := schema.ReportResult{
		Metrics:      metrics,
		Integrity:    integrity,
		Deprecations: deprecations,
		Trend:        trend,
	}

	ow := outwriter.NewOutWriter()
	if err := ow.WriteReport(report, cfg, time.Since(start)); err != nil {
		return err
	}

	// Record after a fully successful run. A write failure degrades to a
	// warning; the report itself already reached the user.
	if err := store.Record(ctx, schema.Snapshot{
		Repo:          cfg.RepoName,
		Branch:        cfg.Branch,
		Timestamp:     time.Now().UTC(),
		QualityScore:  metrics.QualityScore,
		ComplexityAvg: metrics.ComplexityAvg,
		TotalLines:    metrics.TotalLines,
	}); err != nil {
		contract.LogWarn("recording snapshot", err)
	}
	return nil
}

// ExecuteMetrics runs only the file-metrics stage, plus diff counting when a
// diff input was provided.
func ExecuteMetrics(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	logHeader(cfg, "File metrics", "\U0001F4C8")

	metrics, err := AnalyzeTree(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.DiffFile != "" {
		added, deleted, err := CountDiffFile(cfg.DiffFile)
		if err != nil {
			return fmt.Errorf("cannot read diff input: %w", err)
		}
		ApplyDiffCounts(metrics, added, deleted, cfg.Policy.Weights)
	}

	ow := outwriter.NewOutWriter()
	return ow.WriteMetrics(metrics, cfg, time.Since(start))
}

// ExecuteIntegrity runs only the integrity scan.
func ExecuteIntegrity(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	logHeader(cfg, "Integrity scan", "\U0001F512")

	result, err := ScanIntegrity(ctx, cfg)
	if err != nil {
		return err
	}

	ow := outwriter.NewOutWriter()
	return ow.WriteIntegrity(result, cfg, time.Since(start))
}

// ExecuteDeprecations runs only the deprecation scan.
func ExecuteDeprecations(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	logHeader(cfg, "Deprecation scan", "\U0001F4DC")

	warnings, err := ScanDeprecations(ctx, cfg)
	if err != nil {
		return err
	}

	ow := outwriter.NewOutWriter()
	return ow.WriteDeprecations(warnings, cfg, time.Since(start))
}

// ExecuteTrend analyzes the tree, compares it against the stored baseline and
// prints the trend. Like ExecuteReport it records a new snapshot afterwards.
func ExecuteTrend(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	logHeader(cfg, "Trend analysis", "\U0001F4C9")

	metrics, err := AnalyzeTree(ctx, cfg)
	if err != nil {
		return err
	}

	store, err := snapstore.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	trend, err := ComputeTrend(ctx, store, cfg, metrics)
	if err != nil {
		return err
	}

	ow := outwriter.NewOutWriter()
	if err := ow.WriteTrend(trend, cfg, time.Since(start)); err != nil {
		return err
	}

	if err := store.Record(ctx, schema.Snapshot{
		Repo:          cfg.RepoName,
		Branch:        cfg.Branch,
		Timestamp:     time.Now().UTC(),
		QualityScore:  metrics.QualityScore,
		ComplexityAvg: metrics.ComplexityAvg,
		TotalLines:    metrics.TotalLines,
	}); err != nil {
		contract.LogWarn("recording snapshot", err)
	}
	return nil
}

// readDiffInput loads unified diff text from a file, or stdin for "-".
func readDiffInput(source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// logHeader prints a one-line banner to stderr so stdout stays clean for
// machine-readable output modes.
func logHeader(cfg *contract.Config, title, emoji string) {
	if cfg.UseEmojis {
		fmt.Fprintf(os.Stderr, "%s %s: %s (branch %s)\n", emoji, title, cfg.RepoName, cfg.Branch)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %s (branch %s)\n", title, cfg.RepoName, cfg.Branch)
}
