package semantic

import (
	"connlint/internal/errors"
)

func (a *Analyzer) addDiagnostic(d errors.Diagnostic) {
	if d.Level == errors.Warning {
		a.warnings = append(a.warnings, d)
		return
	}
	a.errors = append(a.errors, d)
}

func (a *Analyzer) addEventMissingError(name string) {
	a.addDiagnostic(errors.EventMissing(name, a.connector.EventsPath()))
}

func (a *Analyzer) addDuplicateEventError(name string, count int) {
	a.addDiagnostic(errors.DuplicateEvent(name, count, a.connector.EventsPath()))
}

func (a *Analyzer) addArgumentCountError(name string, line int) {
	a.addDiagnostic(errors.ArgumentCountMismatch(name, a.connector.MainPath(), line))
}

func (a *Analyzer) addInvalidArgumentError(position int, name string, line int) {
	a.addDiagnostic(errors.InvalidArgument(position, name, a.connector.MainPath(), line))
}

func (a *Analyzer) addMissingParamError(arg, function string, line int) {
	a.addDiagnostic(errors.MissingParam(arg, function, a.connector.MainPath(), line))
}

func (a *Analyzer) addMissingTagError(tag, function string, line int) {
	a.addDiagnostic(errors.MissingTag(tag, function, a.connector.MainPath(), line))
}
