package semantic

import (
	"strings"

	"connlint/internal/ast"
	"connlint/internal/errors"
)

// Tags every logging function must carry
var requiredFunctionTags = []string{"@dev", "@notice"}

// Tags the contract head comment must carry
var requiredHeadTags = []string{"@title", "@dev"}

func (a *Analyzer) checkFunctionDocs(c *ast.Connector) {
	for _, fn := range c.Funcs {
		for _, arg := range fn.Args {
			name := ast.ArgName(arg)
			if !hasParamTag(fn.Comments, name) {
				a.addMissingParamError(name, fn.Name, fn.FirstLine)
			}
		}

		for _, tag := range requiredFunctionTags {
			if !hasTag(fn.Comments, tag) {
				a.addMissingTagError(tag, fn.Name, fn.FirstLine)
			}
		}
	}
}

func (a *Analyzer) checkPayable(c *ast.Connector) {
	for _, fn := range c.AllPublicFuncs {
		if !strings.Contains(fn.Raw, "payable") {
			a.addDiagnostic(errors.NotPayable(fn.Name, c.MainPath(), fn.FirstLine))
		}
	}
}

func (a *Analyzer) checkName(c *ast.Connector) {
	lines := strings.Split(c.Code, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if strings.Contains(line, "string") && strings.Contains(line, "public") && strings.Contains(line, "name = ") {
			return
		}
	}
	a.addDiagnostic(errors.MissingName(c.MainPath()))
}

// checkHeadComments looks for the required tags above the first "{" of the file.
func (a *Analyzer) checkHeadComments(c *ast.Connector) {
	found := make(map[string]bool, len(requiredHeadTags))
	for _, line := range strings.Split(c.Code, "\n") {
		if strings.Contains(line, "{") {
			break
		}
		for _, tag := range requiredHeadTags {
			if strings.Contains(line, tag) {
				found[tag] = true
			}
		}
	}

	for _, tag := range requiredHeadTags {
		if !found[tag] {
			a.addDiagnostic(errors.MissingHeadTag(tag, c.MainPath()))
		}
	}
}

func hasParamTag(comments []string, name string) bool {
	for _, comment := range comments {
		if !strings.HasPrefix(comment, "@param") {
			continue
		}
		fields := strings.Fields(comment)
		if len(fields) > 1 && fields[1] == name {
			return true
		}
	}
	return false
}

func hasTag(comments []string, tag string) bool {
	for _, comment := range comments {
		if strings.HasPrefix(comment, tag) {
			return true
		}
	}
	return false
}
