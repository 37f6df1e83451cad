package semantic

import (
	"connlint/internal/ast"
	"connlint/internal/errors"
)

// Analyzer runs every policy check over one connector. Findings are
// accumulated as data; checks never stop one another.
type Analyzer struct {
	connector *ast.Connector
	errors    []errors.Diagnostic
	warnings  []errors.Diagnostic
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze checks a populated connector. The order of checks is part of
// the report contract: events, function docs, payable, name, head comment.
func (a *Analyzer) Analyze(c *ast.Connector) {
	a.connector = c
	a.errors = make([]errors.Diagnostic, 0)
	a.warnings = make([]errors.Diagnostic, 0)

	a.checkEvents(c)
	a.checkFunctionDocs(c)
	a.checkPayable(c)
	a.checkName(c)
	a.checkHeadComments(c)
}

// GetErrors returns the errors found by the last Analyze call
func (a *Analyzer) GetErrors() []errors.Diagnostic {
	return a.errors
}

// GetWarnings returns the warnings found by the last Analyze call
func (a *Analyzer) GetWarnings() []errors.Diagnostic {
	return a.warnings
}
