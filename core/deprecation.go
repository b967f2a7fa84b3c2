package core

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/schema"
)

// deprecationRule pairs a compiled pattern with the remediation message
// reported when it matches.
type deprecationRule struct {
	pattern *regexp.Regexp
	message string
}

func rule(expr, message string) deprecationRule {
	return deprecationRule{pattern: regexp.MustCompile(expr), message: message}
}

var pythonDeprecations = []deprecationRule{
	rule(`\bos\.popen\b`, "os.popen() is deprecated. Use subprocess.run() instead"),
	rule(`\boptparse\b`, "optparse is deprecated. Use argparse instead"),
	rule(`\bimp\b\.\w+`, "imp module is deprecated. Use importlib instead"),
	rule(`\bcgi\b\.\w+`, "cgi module is deprecated since Python 3.11. Use alternatives"),
	rule(`\bpkg_resources\b`, "pkg_resources is deprecated. Use importlib.metadata instead"),
	rule(`\basyncio\.coroutine\b`, "asyncio.coroutine is deprecated. Use async def instead"),
	rule(`\bcollections\.(Mapping|MutableMapping|Sequence|MutableSequence|Set)\b`,
		"collections.ABC classes moved to collections.abc"),
	rule(`\btyping\.(Dict|List|Tuple|Set|FrozenSet|Type)\b`,
		"typing.Dict/List/etc deprecated since 3.9. Use dict, list, tuple directly"),
	rule(`\bunittest\.makeSuite\b`, "unittest.makeSuite() is deprecated"),
	rule(`\blogging\.warn\b`, "logging.warn() is deprecated. Use logging.warning()"),
	rule(`\bbase64\.encodestring\b`, "base64.encodestring() removed. Use base64.encodebytes()"),
	rule(`\bthreading\.currentThread\b`, "threading.currentThread() deprecated. Use current_thread()"),
	rule(`\bsqlite3\.OptimizedUnicode\b`, "sqlite3.OptimizedUnicode deprecated since 3.10"),
	rule(`@asyncio\.coroutine`, "@asyncio.coroutine decorator deprecated. Use async def"),
	rule(`\bdistutils\b`, "distutils is deprecated since Python 3.12. Use setuptools"),
}

var javascriptDeprecations = []deprecationRule{
	rule(`\b__defineGetter__\b`, "__defineGetter__ is deprecated. Use Object.defineProperty()"),
	rule(`\b__defineSetter__\b`, "__defineSetter__ is deprecated. Use Object.defineProperty()"),
	rule(`\bescape\(`, "escape() is deprecated. Use encodeURIComponent()"),
	rule(`\bunescape\(`, "unescape() is deprecated. Use decodeURIComponent()"),
	rule(`\bdocument\.write\b`, "document.write() is deprecated. Manipulate DOM directly"),
	rule(`\b\.substr\(`, "String.substr() is deprecated. Use .substring() or .slice()"),
	rule(`\bnew\s+Buffer\(`, "new Buffer() is deprecated. Use Buffer.from() or Buffer.alloc()"),
	rule(`\bfs\.exists\(`, "fs.exists() is deprecated. Use fs.access() or fs.stat()"),
	rule(`\brequire\(\s*['"]crypto['"]`, "Consider: Node.js crypto some methods are deprecated"),
	rule(`\bcomponentWillMount\b`, "componentWillMount is deprecated. Use componentDidMount"),
	rule(`\bcomponentWillReceiveProps\b`, "componentWillReceiveProps deprecated. Use getDerivedStateFromProps"),
	rule(`\bcomponentWillUpdate\b`, "componentWillUpdate deprecated. Use getSnapshotBeforeUpdate"),
	rule(`\bReactDOM\.render\b`, "ReactDOM.render() deprecated in React 18. Use createRoot()"),
	rule(`\bpropTypes\s*=`, "PropTypes is deprecated for TypeScript projects. Use TS interfaces"),
}

var javaDeprecations = []deprecationRule{
	rule(`\bnew\s+Date\(\s*\d`, "Date(int, int, int) constructor deprecated. Use LocalDate"),
	rule(`\b\.stop\(\)\s*;.*Thread`, "Thread.stop() is deprecated and dangerous"),
	rule(`\b\.suspend\(\)\s*;.*Thread`, "Thread.suspend() is deprecated"),
	rule(`\b\.resume\(\)\s*;.*Thread`, "Thread.resume() is deprecated"),
	rule(`\bnew\s+Integer\(`, "new Integer() deprecated since Java 9. Use Integer.valueOf()"),
	rule(`\bnew\s+Boolean\(`, "new Boolean() deprecated. Use Boolean.valueOf()"),
	rule(`\bRuntime\.getRuntime\(\)\.exec\(String\b`, "Runtime.exec(String) deprecated. Use ProcessBuilder"),
	rule(`\b@SuppressWarnings\("deprecation"\)`, "Code explicitly suppressing deprecation warnings"),
}

var goDeprecations = []deprecationRule{
	rule(`\bioutil\.\w+`, "ioutil package is deprecated since Go 1.16. Use io and os packages"),
	rule(`\bstrings\.Title\b`, "strings.Title() deprecated since Go 1.18. Use golang.org/x/text"),
	rule(`\bsyscall\.\w+`, "syscall package is deprecated. Use golang.org/x/sys"),
}

var rubyDeprecations = []deprecationRule{
	rule(`\bFile\.exists\?`, "File.exists? is deprecated. Use File.exist?"),
	rule(`\bDir\.exists\?`, "Dir.exists? is deprecated. Use Dir.exist?"),
	rule(`\bURI\.escape\b`, "URI.escape is removed. Use CGI.escape or ERB::Util.url_encode"),
	rule(`\b(Fixnum|Bignum)\b`, "Fixnum/Bignum unified into Integer in Ruby 2.4"),
	rule(`\.(taint|untaint)\b`, "taint/untaint are no-ops since Ruby 3.2"),
}

// generalDeprecations apply to every scanned file after the language-specific
// rules, so annotation-style markers are caught in any language.
var generalDeprecations = []deprecationRule{
	rule(`@[Dd]eprecated`, "Contains @Deprecated annotation - review if still needed"),
	rule(`#\s*pragma.*deprecated`, "Contains #pragma deprecated"),
	rule(`\[\[deprecated\]\]`, "Contains [[deprecated]] attribute (C++14+)"),
	rule(`DeprecationWarning`, "Code references DeprecationWarning"),
	rule(`DEPRECATED`, "Contains DEPRECATED marker"),
}

var languageRules = map[string][]deprecationRule{
	".py":   pythonDeprecations,
	".js":   javascriptDeprecations,
	".jsx":  javascriptDeprecations,
	".ts":   javascriptDeprecations,
	".tsx":  javascriptDeprecations,
	".java": javaDeprecations,
	".go":   goDeprecations,
	".rb":   rubyDeprecations,
}

var languageLabels = map[string]string{
	".py":   "Python",
	".js":   "JavaScript",
	".jsx":  "JavaScript",
	".ts":   "TypeScript",
	".tsx":  "TypeScript",
	".java": "Java",
	".go":   "Go",
	".rb":   "Ruby",
}

// ScanDeprecations walks the configured root and reports every use of a known
// deprecated API. Rules are tried in table order and at most one warning is
// emitted per line; language-specific rules always run before the general
// markers. Warnings come back ordered by file path then line number.
func ScanDeprecations(ctx context.Context, cfg *contract.Config) ([]schema.DeprecationWarning, error) {
	warnings := []schema.DeprecationWarning{}

	err := filepath.WalkDir(cfg.RootPath, func(path string, d fs.DirEntry, walkErr error) error {
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
		// This file carries every pattern as a literal, so it would flag
		// itself on every scan of this repository.
		if d.Name() == "deprecation.go" {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		rules := append(append([]deprecationRule{}, languageRules[ext]...), generalDeprecations...)

		fileWarnings, scanErr := scanFileDeprecations(path, relSlash(cfg.RootPath, path), ext, rules, cfg.Policy.TextReadCap)
		if scanErr != nil {
			return nil // unreadable files are silently skipped
		}
		warnings = append(warnings, fileWarnings...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return warnings, nil
}

// scanFileDeprecations applies the rule set line by line, first match wins.
func scanFileDeprecations(path, rel, ext string, rules []deprecationRule, readCap int64) ([]schema.DeprecationWarning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	language, ok := languageLabels[ext]
	if !ok {
		language = "General"
	}

	var warnings []schema.DeprecationWarning
	scanner := bufio.NewScanner(io.LimitReader(f, readCap))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		for _, r := range rules {
			if r.pattern.MatchString(line) {
				warnings = append(warnings, schema.DeprecationWarning{
					File:     rel,
					Line:     lineNum,
					Pattern:  excerptPattern(r.pattern.String(), 50),
					Message:  r.message,
					Language: language,
				})
				break // one warning per line
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return warnings, nil
}
