// Package linter runs the connector pipeline: discovery, import
// resolution, extraction and policy checks.
package linter

import (
	"errors"
	"fmt"
	"os"

	"connlint/internal/ast"
	lintErrors "connlint/internal/errors"
	"connlint/internal/forbidden"
	"connlint/internal/imports"
	"connlint/internal/parser"
	"connlint/internal/report"
	"connlint/internal/semantic"
	"connlint/internal/tree"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("connlint.linter")

// Linter processes connectors one at a time, in discovery order
type Linter struct {
	resolver  *imports.Resolver
	extractor parser.Extractor
	readFile  func(string) ([]byte, error)
}

// New creates a linter resolving "@" imports below packageDir and
// rejecting the given forbidden patterns (the defaults when empty).
func New(packageDir string, forbiddenPatterns []string) *Linter {
	return &Linter{
		resolver:  imports.NewResolver(packageDir, forbidden.NewScanner(forbiddenPatterns...)),
		extractor: parser.NewHeuristic(),
		readFile:  os.ReadFile,
	}
}

// WithReader replaces the file reader for both the connector files and
// their imports
func (l *Linter) WithReader(readFile func(string) ([]byte, error)) *Linter {
	l.readFile = readFile
	l.resolver.WithReader(readFile)
	return l
}

// Run lints every connector below roots. Policy violations end up in the
// report; a non-nil error means the environment was unusable and the run
// was aborted.
func (l *Linter) Run(roots ...string) (*report.Report, error) {
	dirs, err := tree.Walk(roots...)
	if err != nil {
		return nil, err
	}
	log.Infof("linting %d connectors", len(dirs))

	rep := report.New()
	for _, dir := range dirs {
		result, err := l.Lint(dir)
		if err != nil {
			return nil, err
		}
		rep.Merge(result)
	}
	return rep, nil
}

// Lint checks the single connector rooted at dir. Forbidden-pattern
// errors come first, followed by the analyzer's errors in check order.
func (l *Linter) Lint(dir string) (*report.Report, error) {
	c, found, err := l.Load(dir)
	if err != nil {
		return nil, err
	}

	analyzer := semantic.NewAnalyzer()
	analyzer.Analyze(c)

	rep := report.New()
	rep.Add(found, nil)
	rep.Add(analyzer.GetErrors(), analyzer.GetWarnings())
	log.Debugf("%s: %d errors, %d warnings", dir, len(rep.Errors), len(rep.Warnings))
	return rep, nil
}

// Load reads and populates the connector rooted at dir and returns it
// together with the forbidden matches of its import closure.
func (l *Linter) Load(dir string) (*ast.Connector, []lintErrors.Diagnostic, error) {
	c := ast.NewConnector(dir)

	result, err := l.resolver.Resolve(c.MainPath())
	if err != nil {
		return nil, nil, err
	}
	c.Code = result.Code

	events, err := l.readFile(c.EventsPath())
	switch {
	case err == nil:
		c.HasEventsFile = true
		c.EventsCode = string(events)
	case errors.Is(err, os.ErrNotExist):
		log.Debugf("%s has no %s", dir, ast.EventsFile)
	default:
		return nil, nil, fmt.Errorf("failed to read %s: %w", c.EventsPath(), err)
	}

	parser.Populate(c, l.extractor)
	return c, result.Forbidden, nil
}
