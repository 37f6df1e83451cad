package parser

import (
	"strings"

	"connlint/internal/ast"
)

// Extractor slices an entry module into function records and an events
// module into event declarations. The line heuristics in Heuristic are the
// reference behaviour; a grammar-based implementation can be swapped in as
// long as it yields the same record shape.
type Extractor interface {
	Functions(code string) []ast.Function
	Events(code string) (events []string, firstLines []int)
}

// Heuristic is the line-oriented extractor
type Heuristic struct{}

// NewHeuristic creates the default line-oriented extractor
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (*Heuristic) Functions(code string) []ast.Function {
	return ExtractFunctions(code)
}

func (*Heuristic) Events(code string) ([]string, []int) {
	return ExtractEvents(code)
}

// Populate fills every derived field of the connector from its Code and
// EventsCode using the given extractor.
func Populate(c *ast.Connector, ex Extractor) {
	all := ex.Functions(c.Code)
	c.AllPublicFuncs = PublicFunctions(all)
	c.Funcs = LoggingFunctions(c.AllPublicFuncs)

	if c.HasEventsFile {
		c.Events, c.EventsFirstLines = ex.Events(c.EventsCode)
	}

	lines := strings.Split(c.Code, "\n")
	c.MainEvents = nil
	c.MainEventsLines = nil
	for _, fn := range c.Funcs {
		sig, ok := LoggedEvent(fn.Raw)
		if !ok {
			continue
		}
		c.MainEvents = append(c.MainEvents, sig)
		c.MainEventsLines = append(c.MainEventsLines, firstLineContaining(lines, sig))
	}
}

// LoggedEvent returns the quoted signature assigned to _eventName in a
// flattened function body, e.g. `_eventName = "LogDeposit(address,uint256)"`.
func LoggedEvent(raw string) (string, bool) {
	const marker = "_eventName"

	rest := raw
	for {
		idx := strings.Index(rest, marker)
		if idx < 0 {
			return "", false
		}
		rest = rest[idx+len(marker):]

		after := strings.TrimLeft(rest, " \t")
		if !strings.HasPrefix(after, "=") || strings.HasPrefix(after, "==") {
			continue
		}
		after = strings.TrimLeft(after[1:], " \t")
		if !strings.HasPrefix(after, `"`) {
			continue
		}
		sig, _, ok := strings.Cut(after[1:], `"`)
		if !ok {
			return "", false
		}
		return sig, true
	}
}

func firstLineContaining(lines []string, s string) int {
	for i, line := range lines {
		if strings.Contains(line, s) {
			return i + 1
		}
	}
	return 0
}

// isComment reports whether a line is part of a comment rather than code
func isComment(line string) bool {
	s := strings.TrimSpace(line)
	return strings.HasPrefix(s, "//") ||
		strings.HasPrefix(s, "/*") ||
		strings.HasPrefix(s, "*")
}

func flatten(lines []string) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
