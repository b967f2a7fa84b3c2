package core

import (
	"context"
	"testing"

	"github.com/codegauge/codegauge/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDeprecationsPython(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"legacy.py": "import os\n\nhandle = os.popen(\"ls\")\n",
	})

	warnings, err := ScanDeprecations(context.Background(), testAnalysisConfig(root))
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	w := warnings[0]
	assert.Equal(t, "legacy.py", w.File)
	assert.Equal(t, 3, w.Line)
	assert.Equal(t, "Python", w.Language)
	assert.Contains(t, w.Message, "subprocess.run()")
}

func TestScanDeprecationsOneWarningPerLine(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"both.js": "var s = escape(unescape(input));\n",
	})

	warnings, err := ScanDeprecations(context.Background(), testAnalysisConfig(root))
	require.NoError(t, err)

	require.Len(t, warnings, 1, "a line yields at most one warning")
	assert.Contains(t, warnings[0].Message, "encodeURIComponent()",
		"the first pattern in table order wins")
}

func TestScanDeprecationsLanguageLabels(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app.tsx":    "ReactDOM.render(<App />, el);\n",
		"old.rb":     "File.exists?(path)\n",
		"macros.c":   "// DEPRECATED: use frob2 instead\n",
		"server.java": "Integer n = new Integer(42);\n",
	})

	warnings, err := ScanDeprecations(context.Background(), testAnalysisConfig(root))
	require.NoError(t, err)
	require.Len(t, warnings, 4)

	byFile := map[string]schema.DeprecationWarning{}
	for _, w := range warnings {
		byFile[w.File] = w
	}
	assert.Equal(t, "TypeScript", byFile["app.tsx"].Language)
	assert.Equal(t, "Ruby", byFile["old.rb"].Language)
	assert.Equal(t, "General", byFile["macros.c"].Language, "general markers apply to any extension")
	assert.Equal(t, "Java", byFile["server.java"].Language)
}

func TestScanDeprecationsSelfExclusion(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"deprecation.go": "package rules\n\n// matches ioutil.ReadAll as a literal\n",
		"user.go":        "package user\n\nvar _ = ioutil.ReadAll\n",
	})

	warnings, err := ScanDeprecations(context.Background(), testAnalysisConfig(root))
	require.NoError(t, err)

	require.Len(t, warnings, 1, "the rule-table file itself is never scanned")
	assert.Equal(t, "user.go", warnings[0].File)
}

func TestScanDeprecationsSkipsIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"node_modules/lib.js": "document.write('x');\n",
		".cache/tmp.py":       "import optparse\n",
	})

	warnings, err := ScanDeprecations(context.Background(), testAnalysisConfig(root))
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestScanDeprecationsPatternExcerptCap(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"abc.py": "from collections import Mapping\nx = collections.Mapping\n",
	})

	warnings, err := ScanDeprecations(context.Background(), testAnalysisConfig(root))
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
	for _, w := range warnings {
		assert.LessOrEqual(t, len(w.Pattern), 50)
	}
}
