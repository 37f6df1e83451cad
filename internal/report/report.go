// Package report aggregates diagnostics across connectors and renders the
// final pass/fail summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"connlint/internal/errors"

	"github.com/fatih/color"
)

// Report holds every finding of a run in discovery order
type Report struct {
	Errors   []errors.Diagnostic `json:"errors"`
	Warnings []errors.Diagnostic `json:"warnings"`
}

func New() *Report {
	return &Report{
		Errors:   make([]errors.Diagnostic, 0),
		Warnings: make([]errors.Diagnostic, 0),
	}
}

// Add appends one connector's findings. Order within each list is kept.
func (r *Report) Add(errs, warnings []errors.Diagnostic) {
	r.Errors = append(r.Errors, errs...)
	r.Warnings = append(r.Warnings, warnings...)
}

func (r *Report) Merge(other *Report) {
	r.Add(other.Errors, other.Warnings)
}

// Failed reports whether any error was collected
func (r *Report) Failed() bool {
	return len(r.Errors) > 0
}

// ErrorMessages returns the error strings in report order
func (r *Report) ErrorMessages() []string {
	return messages(r.Errors)
}

// WarningMessages returns the warning strings in report order
func (r *Report) WarningMessages() []string {
	return messages(r.Warnings)
}

// WriteText prints the totals to out and the messages to errOut, errors
// before warnings.
func (r *Report) WriteText(out, errOut io.Writer) {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	fmt.Fprintf(out, "Total errors: %d\n", len(r.Errors))
	if len(r.Errors) > 0 {
		red.Fprintln(errOut, strings.Join(r.ErrorMessages(), "\n"))
	}

	fmt.Fprintf(out, "Total warnings: %d\n", len(r.Warnings))
	if len(r.Warnings) > 0 {
		yellow.Fprintln(errOut, strings.Join(r.WarningMessages(), "\n"))
	}
}

// WriteJSON prints the report as a single JSON document
func (r *Report) WriteJSON(out io.Writer) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WritePretty renders every diagnostic with its source frame
func (r *Report) WritePretty(errOut io.Writer, reporter *errors.ErrorReporter) {
	for _, d := range r.Errors {
		fmt.Fprintln(errOut, reporter.FormatError(d))
	}
	for _, d := range r.Warnings {
		fmt.Fprintln(errOut, reporter.FormatError(d))
	}
}

func messages(ds []errors.Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Message
	}
	return out
}
