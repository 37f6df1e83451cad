package lsp

import (
	"strings"

	"connlint/internal/errors"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "connlint"

// ConvertDiagnostics groups lint findings by file and transforms them into
// LSP diagnostics. A finding without a line is anchored on the first line.
// The whole offending line is highlighted when its text is known.
func ConvertDiagnostics(ds []errors.Diagnostic, source func(path string) []string) map[string][]protocol.Diagnostic {
	byPath := make(map[string][]protocol.Diagnostic)

	for _, d := range ds {
		line := d.Line - 1
		if line < 0 {
			line = 0
		}

		var end int
		if lines := source(d.Path); line < len(lines) {
			end = len(strings.TrimRight(lines[line], "\r"))
		}

		byPath[d.Path] = append(byPath[d.Path], protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(line), Character: 0},
				End:   protocol.Position{Line: uint32(line), Character: uint32(end)},
			},
			Severity: ptrSeverity(severity(d.Level)),
			Code:     &protocol.IntegerOrString{Value: d.Code},
			Source:   ptrString(diagnosticSource),
			Message:  d.Message,
		})
	}

	return byPath
}

// fatalDiagnostic reports an aborted lint run (unresolvable import,
// unreadable file) on the first line of the entry module
func fatalDiagnostic(err error) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString(diagnosticSource),
		Message:  err.Error(),
	}
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	if level == errors.Warning {
		return protocol.DiagnosticSeverityWarning
	}
	return protocol.DiagnosticSeverityError
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
