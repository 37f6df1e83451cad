package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
)

// Diagnostic is a single lint finding. Message is the complete
// report line; Path and Line locate it for editors (Line 0 means
// the finding is about the whole file).
type Diagnostic struct {
	Level    ErrorLevel `json:"level"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	Path     string     `json:"path"`
	Line     int        `json:"line,omitempty"`
	Notes    []string   `json:"notes,omitempty"`
	HelpText string     `json:"help,omitempty"`
}

func (d Diagnostic) String() string {
	return d.Message
}

// ErrorReporter renders diagnostics with source context
type ErrorReporter struct {
	readFile func(string) ([]byte, error)
	lines    map[string][]string
}

// NewErrorReporter creates a reporter reading sources from disk
func NewErrorReporter() *ErrorReporter {
	return NewErrorReporterWithReader(os.ReadFile)
}

// NewErrorReporterWithReader creates a reporter with a custom source reader
func NewErrorReporterWithReader(readFile func(string) ([]byte, error)) *ErrorReporter {
	return &ErrorReporter{
		readFile: readFile,
		lines:    make(map[string][]string),
	}
}

// FormatError formats a diagnostic with Rust-like styling
func (er *ErrorReporter) FormatError(d Diagnostic) string {
	var result strings.Builder

	levelColor := er.getLevelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[L0001]: message
	if d.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(d.Level)), d.Code, d.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(d.Level)), d.Message))
	}

	lineNumberWidth := er.getLineNumberWidth(d.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	if d.Line > 0 {
		result.WriteString(fmt.Sprintf("%s %s %s:%d\n", indent, dim("-->"), d.Path, d.Line))
	} else {
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("-->"), d.Path))
	}

	lines := er.source(d.Path)
	if d.Line > 0 && d.Line <= len(lines) {
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

		if d.Line > 1 {
			result.WriteString(fmt.Sprintf("%s %s %s\n",
				dim(fmt.Sprintf("%*d", lineNumberWidth, d.Line-1)),
				dim("│"),
				lines[d.Line-2]))
		}

		lineContent := lines[d.Line-1]
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, d.Line)),
			dim("│"),
			lineContent))

		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, dim("│"), er.createMarker(lineContent, d.Level)))
	}

	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	if d.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), d.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

func (er *ErrorReporter) source(path string) []string {
	if lines, ok := er.lines[path]; ok {
		return lines
	}
	var lines []string
	if data, err := er.readFile(path); err == nil {
		lines = strings.Split(string(data), "\n")
	}
	er.lines[path] = lines
	return lines
}

// getLevelColor returns the appropriate color function for a level
func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker underlines the non-blank part of a line
func (er *ErrorReporter) createMarker(line string, level ErrorLevel) string {
	trimmed := strings.TrimLeft(line, " \t")
	spaces := strings.Repeat(" ", len(line)-len(trimmed))
	length := len(strings.TrimRight(trimmed, " \t\r"))
	if length <= 0 {
		length = 1
	}

	markerColor := er.getLevelColor(level)
	return spaces + markerColor(strings.Repeat("^", length))
}

// getLineNumberWidth calculates the width needed for line numbers
func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
