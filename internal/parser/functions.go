package parser

import (
	"strings"

	"connlint/internal/ast"
)

// ExtractFunctions slices code into function bodies.
//
// A non-comment line containing "function" opens a buffer; following
// non-comment lines are appended. The buffer closes on the first line that
// starts with the opening line's text before "function" followed by "}".
// Nested braces at the same indentation close the buffer early; callers
// depend on that layout, so it is kept.
func ExtractFunctions(code string) []ast.Function {
	lines := strings.Split(code, "\n")

	var (
		funcs     []ast.Function
		buf       []string
		prefix    string
		firstLine int
	)

	for i, line := range lines {
		comment := isComment(line)
		if strings.Contains(line, "function") && !comment {
			buf = []string{line}
			prefix, _, _ = strings.Cut(line, "function")
			firstLine = i + 1
		} else if len(buf) > 0 && !comment {
			buf = append(buf, line)
		}

		if len(buf) > 0 && strings.HasPrefix(line, prefix+"}") {
			funcs = append(funcs, ast.Function{
				Raw:       flatten(buf),
				Comments:  Comments(lines, firstLine-1),
				FirstLine: firstLine,
			})
			buf = nil
		}
	}

	return funcs
}

// PublicFunctions keeps functions with public or external visibility and names them.
func PublicFunctions(funcs []ast.Function) []ast.Function {
	var public []ast.Function
	for _, fn := range funcs {
		if !strings.Contains(fn.Raw, "external") && !strings.Contains(fn.Raw, "public") {
			continue
		}
		fn.Name = functionName(fn.Raw)
		public = append(public, fn)
	}
	return public
}

// LoggingFunctions keeps functions returning the (string, bytes) event pair
// and fills in their declared arguments.
func LoggingFunctions(public []ast.Function) []ast.Function {
	var logging []ast.Function
	for _, fn := range public {
		if !returnsEventPair(fn.Raw) {
			continue
		}
		fn.Args = nil
		for _, arg := range ast.ParenArgs(fn.Raw) {
			if arg != "" {
				fn.Args = append(fn.Args, arg)
			}
		}
		logging = append(logging, fn)
	}
	return logging
}

func functionName(raw string) string {
	head, _, _ := strings.Cut(raw, "(")
	_, name, ok := strings.Cut(head, "function")
	if !ok {
		return ""
	}
	return strings.TrimSpace(name)
}

func returnsEventPair(raw string) bool {
	_, after, ok := strings.Cut(raw, "returns")
	if !ok {
		return false
	}
	// Only the text up to a second "returns" belongs to this clause
	clause, _, _ := strings.Cut(after, "returns")
	_, inner, ok := strings.Cut(clause, "(")
	if !ok {
		return false
	}
	inner, _, _ = strings.Cut(inner, ")")
	return strings.Contains(inner, "string") && strings.Contains(inner, "bytes")
}
