// Package imports follows Solidity import statements from a connector's
// entry module and scans the whole closure for forbidden patterns.
package imports

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lintErrors "connlint/internal/errors"
	"connlint/internal/forbidden"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("connlint.imports")

// PackagePrefix marks import paths that resolve against the package directory.
const PackagePrefix = "@"

// ErrImportCycle is returned when a file transitively imports itself.
var ErrImportCycle = errors.New("import cycle")

// Result is the entry module's text and every forbidden match in its import closure
type Result struct {
	Code      string
	Forbidden []lintErrors.Diagnostic
}

// Resolver walks import graphs starting at entry modules
type Resolver struct {
	packageDir string
	scanner    *forbidden.Scanner
	readFile   func(string) ([]byte, error)
}

// NewResolver creates a resolver that maps "@" imports below packageDir
func NewResolver(packageDir string, scanner *forbidden.Scanner) *Resolver {
	if scanner == nil {
		scanner = forbidden.NewScanner()
	}
	return &Resolver{
		packageDir: packageDir,
		scanner:    scanner,
		readFile:   os.ReadFile,
	}
}

// WithReader replaces the file reader, e.g. to see unsaved editor buffers
func (r *Resolver) WithReader(readFile func(string) ([]byte, error)) *Resolver {
	r.readFile = readFile
	return r
}

// Resolve reads the entry module and every file it imports, directly or
// transitively. Only the entry module's own text is returned as Code; the
// forbidden matches of imported files are appended after the entry's own.
// A missing import or an import cycle is fatal.
func (r *Resolver) Resolve(entryPath string) (*Result, error) {
	code, found, err := r.resolve(entryPath, nil)
	if err != nil {
		return nil, err
	}
	return &Result{Code: code, Forbidden: found}, nil
}

func (r *Resolver) resolve(path string, stack []string) (string, []lintErrors.Diagnostic, error) {
	for _, p := range stack {
		if p == path {
			chain := append(append([]string{}, stack...), path)
			return "", nil, fmt.Errorf("%w: %s", ErrImportCycle, strings.Join(chain, " -> "))
		}
	}

	data, err := r.readFile(path)
	if err != nil {
		if len(stack) > 0 {
			return "", nil, fmt.Errorf("failed to resolve import %s from %s: %w", path, stack[len(stack)-1], err)
		}
		return "", nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	code := string(data)

	found := r.scanner.Scan(code, path)

	stack = append(stack, path)
	for _, imported := range Statements(code) {
		target := r.Locate(path, imported)
		log.Debugf("%s imports %s", path, target)

		_, nested, err := r.resolve(target, stack)
		if err != nil {
			return "", nil, err
		}
		found = append(found, nested...)
	}

	return code, found, nil
}

// Locate maps an import path to a file path relative to the importing file,
// or below the package directory for "@" paths.
func (r *Resolver) Locate(importer, imported string) string {
	if strings.HasPrefix(imported, PackagePrefix) {
		return filepath.Join(r.packageDir, imported)
	}
	return filepath.Join(filepath.Dir(importer), imported)
}

// Statements returns the quoted path of every import statement in code, in
// order. A statement may span lines up to its closing semicolon.
func Statements(code string) []string {
	var paths []string
	var pending []string
	for _, line := range strings.Split(code, "\n") {
		if pending == nil {
			if !isImport(line) {
				continue
			}
		}
		pending = append(pending, strings.TrimSpace(line))
		if !strings.Contains(line, ";") {
			continue
		}
		if p, ok := Path(strings.Join(pending, " ")); ok {
			paths = append(paths, p)
		}
		pending = nil
	}
	return paths
}

func isImport(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "import") {
		return false
	}
	rest := trimmed[len("import"):]
	return rest == "" || strings.IndexByte(" \t\"'{*", rest[0]) >= 0
}

// Path extracts the quoted path from an import statement such as
// `import { Basic } from "../../common/basic.sol";`. Statements without a
// closed quoted path report false.
func Path(statement string) (string, bool) {
	if !isImport(statement) {
		return "", false
	}
	rest := strings.TrimSpace(statement)[len("import"):]

	start := strings.IndexAny(rest, `"'`)
	if start < 0 {
		return "", false
	}
	quote := rest[start]
	end := strings.IndexByte(rest[start+1:], quote)
	if end < 0 {
		return "", false
	}
	p := strings.TrimSpace(rest[start+1 : start+1+end])
	return p, p != ""
}
