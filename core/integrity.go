package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/schema"
	"github.com/dustin/go-humanize"
)

// Secret-like strings, in check order. First match per file wins.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(api[_-]?key|api[_-]?secret)\s*[:=]\s*['"]?.{8,}`),
	regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[:=]\s*['"]?.{4,}`),
	regexp.MustCompile(`(?i)(aws_access_key_id|aws_secret_access_key)\s*[:=]`),
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-_.]{20,}`),
	regexp.MustCompile(`-----BEGIN\s+(RSA|DSA|EC|OPENSSH)?\s*PRIVATE KEY-----`),
}

// Debug leftovers, in check order. First match per file wins.
var debugPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bconsole\.log\b`),
	regexp.MustCompile(`(?i)\bprint\s*\(.*debug`),
	regexp.MustCompile(`(?i)\bTODO\b.*\bHACK\b`),
	regexp.MustCompile(`\bdebugger\b`),
}

// ScanIntegrity hashes the whole tree deterministically and flags secret-like
// strings, debug leftovers, oversized files and binary files. Status is fail
// iff at least one issue is critical; warnings alone still pass.
func ScanIntegrity(ctx context.Context, cfg *contract.Config) (*schema.IntegrityResult, error) {
	result := &schema.IntegrityResult{Status: schema.PassStatus}

	hash, err := ComputeTreeHash(ctx, cfg.RootPath, cfg.Workers)
	if err != nil {
		return nil, err
	}
	result.ContentHash = hash

	err = filepath.WalkDir(cfg.RootPath, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == cfg.RootPath {
				return walkErr
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != cfg.RootPath && shouldSkipDir(d.Name(), cfg.Policy) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(cfg.RootPath, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		result.FilesScanned++
		checkFile(result, path, rel, cfg.Policy)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.HasCritical() {
		result.Status = schema.FailStatus
	}
	return result, nil
}

// checkFile runs the per-file checks in order; the binary and size checks
// short-circuit the whole file, a secret match only stops further secret
// checks so debug leftovers in the same file are still reported.
func checkFile(result *schema.IntegrityResult, path, rel string, policy *schema.ScanPolicy) {
	ext := strings.ToLower(filepath.Ext(path))

	if _, ok := policy.BinaryExtensions[ext]; ok {
		result.Issues = append(result.Issues, schema.IntegrityIssue{
			File:     rel,
			Kind:     schema.BinaryIssue,
			Detail:   fmt.Sprintf("binary file detected: %s", ext),
			Severity: schema.WarningSeverity,
		})
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.Size() > policy.MaxFileSizeBytes {
		result.Issues = append(result.Issues, schema.IntegrityIssue{
			File: rel,
			Kind: schema.SizeIssue,
			Detail: fmt.Sprintf("file too large: %s (limit %s)",
				humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(policy.MaxFileSizeBytes))),
			Severity: schema.WarningSeverity,
		})
		return
	}

	content, err := readCapped(path, policy.TextReadCap)
	if err != nil {
		return
	}

	for _, pattern := range secretPatterns {
		if pattern.Match(content) {
			result.Issues = append(result.Issues, schema.IntegrityIssue{
				File:     rel,
				Kind:     schema.SecretIssue,
				Detail:   "potential secret/credential detected",
				Severity: schema.CriticalSeverity,
			})
			break // one secret issue per file is enough
		}
	}

	for _, pattern := range debugPatterns {
		if pattern.Match(content) {
			result.Issues = append(result.Issues, schema.IntegrityIssue{
				File:     rel,
				Kind:     schema.DebugIssue,
				Detail:   fmt.Sprintf("debug code detected: %s", excerptPattern(pattern.String(), 40)),
				Severity: schema.WarningSeverity,
			})
			break
		}
	}
}

// ComputeTreeHash returns the SHA-256 digest over all file contents under
// root. Traversal order is lexicographic by relative path, so two scans of
// byte-identical trees always agree regardless of how the filesystem
// enumerates directories. Per-file digests run on a worker pool; each worker
// writes to its own index, which keeps the concatenation order fixed.
func ComputeTreeHash(ctx context.Context, root string, workers int) (string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return "", err
	}
	sort.Slice(paths, func(i, j int) bool {
		return relSlash(root, paths[i]) < relSlash(root, paths[j])
	})

	entries := make([]string, len(paths))
	indexCh := make(chan int, len(paths))
	var wg sync.WaitGroup

	if workers < 1 {
		workers = 1
	}
	for range workers {
		wg.Go(func() {
			for i := range indexCh {
				if ctx.Err() != nil {
					continue
				}
				content, readErr := os.ReadFile(paths[i])
				if readErr != nil {
					continue // unreadable files contribute nothing
				}
				digest := sha256.Sum256(content)
				entries[i] = fmt.Sprintf("%s:%s", relSlash(root, paths[i]), hex.EncodeToString(digest[:]))
			}
		})
	}
	for i := range paths {
		indexCh <- i
	}
	close(indexCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		if e != "" {
			kept = append(kept, e)
		}
	}

	hasher := sha256.New()
	hasher.Write([]byte(strings.Join(kept, "\n")))
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// readCapped reads at most limit bytes from path.
func readCapped(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(io.LimitReader(f, limit))
}

// relSlash returns the slash-separated path of target relative to root.
func relSlash(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}

// excerptPattern truncates a regex source string for display.
func excerptPattern(pattern string, maxLen int) string {
	if len(pattern) > maxLen {
		return pattern[:maxLen]
	}
	return pattern
}
