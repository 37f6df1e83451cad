package semantic

import (
	"strings"

	"connlint/internal/ast"
	"connlint/internal/errors"
)

// checkEvents cross-validates every logged signature against the events module.
func (a *Analyzer) checkEvents(c *ast.Connector) {
	if !c.HasEventsFile {
		a.addDiagnostic(errors.MissingEventsFile(c.MainPath()))
		return
	}
	if len(c.Events) == 0 {
		return
	}

	declared := make(map[string][]int)
	for i, event := range c.Events {
		name := ast.EventName(event)
		declared[name] = append(declared[name], i)
	}

	for i, sig := range c.MainEvents {
		name := ast.SignatureName(sig)
		line := 0
		if i < len(c.MainEventsLines) {
			line = c.MainEventsLines[i]
		}

		matches := declared[name]
		if len(matches) == 0 {
			a.addEventMissingError(name)
			continue
		}
		if len(matches) > 1 {
			a.addDuplicateEventError(name, len(matches))
		}

		invokedArgs := ast.ParenArgs(sig)
		declaredArgs := ast.ParenArgs(c.Events[matches[0]])
		if len(invokedArgs) != len(declaredArgs) {
			// Count mismatch skips the per-argument comparison for this event only
			a.addArgumentCountError(name, line)
			continue
		}

		for k := range invokedArgs {
			if !strings.HasPrefix(invokedArgs[k], ast.ArgType(declaredArgs[k])) {
				a.addInvalidArgumentError(k+1, name, line)
			}
		}
	}

	a.checkUnusedEvents(c)
}

func (a *Analyzer) checkUnusedEvents(c *ast.Connector) {
	logged := make(map[string]bool, len(c.MainEvents))
	for _, sig := range c.MainEvents {
		logged[ast.SignatureName(sig)] = true
	}

	var unused []string
	for _, event := range c.Events {
		if name := ast.EventName(event); !logged[name] {
			unused = append(unused, name)
		}
	}

	if len(unused) > 0 {
		a.addDiagnostic(errors.UnusedEvents(unused, c.MainPath()))
	}
}
