package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnalysisConfig(root string) *contract.Config {
	return &contract.Config{
		RootPath: root,
		RepoName: "myrepo",
		Branch:   "main",
		Workers:  2,
		Policy:   schema.DefaultScanPolicy(),
	}
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestAnalyzeTree(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.go":              "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n",
		"lib/util.py":          "def add(a, b):\n    return a + b\n",
		"README.md":            "# readme\n",
		"node_modules/dep.js":  "var x = 1;\n",
		".hidden/secret.py":    "x = 1\n",
		"vendor/third/mod.go":  "package third\n",
	})

	metrics, err := AnalyzeTree(context.Background(), testAnalysisConfig(root))
	require.NoError(t, err)

	require.Len(t, metrics.FileDetails, 2, "only allow-listed extensions outside ignored dirs count")
	assert.Equal(t, "lib/util.py", metrics.FileDetails[0].Path, "details are sorted by path")
	assert.Equal(t, "main.go", metrics.FileDetails[1].Path)
	assert.Equal(t, 2, metrics.FilesChanged)
	assert.Equal(t, 7, metrics.TotalLines)
	assert.Equal(t, 0, metrics.LinesAdded, "diff counts are a separate stage")
}

func TestAnalyzeTreeMissingRoot(t *testing.T) {
	cfg := testAnalysisConfig(filepath.Join(t.TempDir(), "nope"))
	_, err := AnalyzeTree(context.Background(), cfg)
	assert.Error(t, err)
}

func TestAnalyzeTreeCanceledContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"main.go": "package main\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AnalyzeTree(ctx, testAnalysisConfig(root))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeFileSkips(t *testing.T) {
	root := t.TempDir()
	policy := schema.DefaultScanPolicy()

	tests := []struct {
		name    string
		file    string
		content []byte
	}{
		{name: "extension outside allow-list", file: "notes.txt", content: []byte("hello\n")},
		{name: "NUL byte means binary", file: "fake.go", content: []byte("package main\x00\n")},
		{name: "invalid utf8 means binary", file: "bad.py", content: []byte{0xff, 0xfe, 0x41}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(root, tc.file)
			require.NoError(t, os.WriteFile(path, tc.content, 0o644))
			assert.Nil(t, analyzeFile(path, root, policy))
		})
	}
}

func TestAnalyzeFileMetricRanges(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	src := "package main\n\nfunc main() {\n\tfor i := 0; i < 10; i++ {\n\t\tprintln(i)\n\t}\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	fm := analyzeFile(path, root, schema.DefaultScanPolicy())
	require.NotNil(t, fm)
	assert.Equal(t, "main.go", fm.Path)
	assert.Equal(t, 7, fm.Lines)
	assert.GreaterOrEqual(t, fm.Complexity, 0.0)
	assert.GreaterOrEqual(t, fm.Maintainability, 0.0)
	assert.LessOrEqual(t, fm.Maintainability, 100.0)
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{name: "empty", src: "", want: 0},
		{name: "single line with newline", src: "a\n", want: 1},
		{name: "single line without newline", src: "a", want: 1},
		{name: "two lines no trailing newline", src: "a\nb", want: 2},
		{name: "two lines trailing newline", src: "a\nb\n", want: 2},
		{name: "blank lines count", src: "\n\n\n", want: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, countLines([]byte(tc.src)))
		})
	}
}

func TestIsText(t *testing.T) {
	assert.True(t, isText([]byte("hello world\n")))
	assert.False(t, isText([]byte("hello\x00world")))
	assert.False(t, isText([]byte{0xff, 0xfe}))
}
