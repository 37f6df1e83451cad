package errors

import (
	"fmt"
	"strings"
)

// DiagnosticBuilder provides a fluent interface for creating diagnostics
type DiagnosticBuilder struct {
	d Diagnostic
}

// NewLintError creates a new error builder
func NewLintError(code, message, path string, line int) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		d: Diagnostic{
			Level:   Error,
			Code:    code,
			Message: message,
			Path:    path,
			Line:    line,
		},
	}
}

// NewLintWarning creates a new warning builder
func NewLintWarning(code, message, path string, line int) *DiagnosticBuilder {
	b := NewLintError(code, message, path, line)
	b.d.Level = Warning
	return b
}

// WithNote adds a note to the diagnostic
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

// WithHelp sets help text on the diagnostic
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.d.HelpText = help
	return b
}

// Build returns the completed diagnostic
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.d
}

// ForbiddenPattern reports a deny-listed substring on a given line
func ForbiddenPattern(pattern, path string, line int) Diagnostic {
	return NewLintError(ErrorForbiddenPattern,
		fmt.Sprintf("found '%s' in %s:%d", pattern, path, line), path, line).
		WithHelp(fmt.Sprintf("connectors must not use '%s'", pattern)).
		Build()
}

// EventMissing reports a logged event absent from the events module
func EventMissing(name, eventsPath string) Diagnostic {
	return NewLintError(ErrorEventMissing,
		fmt.Sprintf("event %s missing at %s", name, eventsPath), eventsPath, 0).
		WithHelp(fmt.Sprintf("declare 'event %s(...)' in the events contract", name)).
		Build()
}

// ArgumentCountMismatch reports a logged event with the wrong number of arguments
func ArgumentCountMismatch(name, mainPath string, line int) Diagnostic {
	return NewLintError(ErrorArgumentCount,
		fmt.Sprintf("arguments amount don't match for %s at %s:%d", name, mainPath, line), mainPath, line).
		Build()
}

// InvalidArgument reports a 1-based argument position whose type does not match
func InvalidArgument(position int, name, mainPath string, line int) Diagnostic {
	return NewLintError(ErrorInvalidArgument,
		fmt.Sprintf("invalid argument #%d for %s at %s:%d", position, name, mainPath, line), mainPath, line).
		WithNote("logged argument types must start with the declared argument type").
		Build()
}

// DuplicateEvent reports a logged event name declared several times
func DuplicateEvent(name string, count int, eventsPath string) Diagnostic {
	return NewLintError(ErrorDuplicateEvent,
		fmt.Sprintf("event %s declared %d times at %s", name, count, eventsPath), eventsPath, 0).
		WithNote("signatures are checked against the first declaration").
		Build()
}

// UnusedEvents groups every declared but never logged event into one warning
func UnusedEvents(names []string, mainPath string) Diagnostic {
	return NewLintWarning(WarningUnusedEvent,
		fmt.Sprintf("%s event(s) not used at %s", strings.Join(names, ", "), mainPath), mainPath, 0).
		WithHelp("remove deprecated events or log them from a connector function").
		Build()
}

// MissingEventsFile reports a connector with no events module
func MissingEventsFile(mainPath string) Diagnostic {
	return NewLintWarning(WarningMissingEventsFile,
		fmt.Sprintf("missing events file for %s", mainPath), mainPath, 0).
		Build()
}

// MissingParam reports an argument without a matching @param line
func MissingParam(arg, function, mainPath string, line int) Diagnostic {
	return NewLintError(ErrorMissingParam,
		fmt.Sprintf("argument %s has no @param for function %s at %s:%d", arg, function, mainPath, line), mainPath, line).
		WithHelp(fmt.Sprintf("add '@param %s <description>' above the function", arg)).
		Build()
}

// MissingTag reports a function without a required NatSpec tag
func MissingTag(tag, function, mainPath string, line int) Diagnostic {
	return NewLintError(ErrorMissingTag,
		fmt.Sprintf("no %s for function %s at %s:%d", tag, function, mainPath, line), mainPath, line).
		Build()
}

// NotPayable reports a public or external function missing payable
func NotPayable(function, mainPath string, line int) Diagnostic {
	return NewLintError(ErrorNotPayable,
		fmt.Sprintf("public function %s is not payable at %s:%d", function, mainPath, line), mainPath, line).
		WithNote("connector functions are delegate-called by payable wallet entry points").
		Build()
}

// MissingName reports a connector without a public string name
func MissingName(mainPath string) Diagnostic {
	return NewLintError(ErrorMissingName,
		fmt.Sprintf("name variable missing in %s", mainPath), mainPath, 0).
		WithHelp(`add 'string public constant name = "<Connector>-v1";'`).
		Build()
}

// MissingHeadTag reports a contract head comment without a required tag
func MissingHeadTag(tag, mainPath string) Diagnostic {
	return NewLintError(ErrorMissingHeadTag,
		fmt.Sprintf("%s missing for %s", tag, mainPath), mainPath, 0).
		Build()
}
