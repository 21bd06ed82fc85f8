package marl

import (
	"errors"
	"fmt"
	"strings"
)

// Phase identifies the front-end stage that produced an error.
type Phase uint8

const (
	PhaseLexical Phase = iota
	PhaseSyntactic
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLexical:
		return "lexical"
	case PhaseSyntactic:
		return "syntactic"
	}
	return "unknown"
}

// SourceError represents a lexical or syntactic error with source location
// information. It is the only error type the front end produces.
type SourceError struct {
	Phase   Phase
	Message string
	Span    Span
	Source  string // Original source code (for context display)
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Span.Start.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Message)
}

// FormatWithContext returns the error message with source context.
// Shows the problematic line with a caret pointing to the error location.
func (e *SourceError) FormatWithContext() string {
	if e.Source == "" || e.Span.Start.Line == 0 {
		return e.Error()
	}

	lines := strings.Split(e.Source, "\n")
	lineNum := e.Span.Start.Line
	if lineNum < 1 || lineNum > len(lines) {
		return e.Error()
	}

	line := lines[lineNum-1]
	col := e.Span.Start.Column
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s error: %s\n", e.Phase, e.Message)
	fmt.Fprintf(&sb, "  --> line %d:%d\n", lineNum, col)
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%3d| %s\n", lineNum, line)
	fmt.Fprintf(&sb, "   | %s^\n", strings.Repeat(" ", col-1))

	return sb.String()
}

// NewLexError creates a lexical SourceError.
func NewLexError(message string, span Span, source string) *SourceError {
	return &SourceError{
		Phase:   PhaseLexical,
		Message: message,
		Span:    span,
		Source:  source,
	}
}

// NewSyntaxError creates a syntactic SourceError.
func NewSyntaxError(message string, span Span, source string) *SourceError {
	return &SourceError{
		Phase:   PhaseSyntactic,
		Message: message,
		Span:    span,
		Source:  source,
	}
}

// IsIncomplete reports whether err is a syntax error raised at end of input,
// meaning the source so far is a valid prefix of a statement. Interactive
// drivers use this to keep reading instead of reporting the error.
func IsIncomplete(err error) bool {
	var se *SourceError
	if !errors.As(err, &se) {
		return false
	}
	return se.Phase == PhaseSyntactic && se.Span.Start.Offset >= len(se.Source)
}

// SourceErrors represents a list of source errors.
type SourceErrors []*SourceError

// Error implements the error interface.
func (el SourceErrors) Error() string {
	if len(el) == 0 {
		return "no errors"
	}
	if len(el) == 1 {
		return el[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
}

// FormatAll returns all errors formatted with context.
func (el SourceErrors) FormatAll() string {
	var sb strings.Builder
	for i, e := range el {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(e.FormatWithContext())
	}
	return sb.String()
}

// Add adds an error to the list.
func (el *SourceErrors) Add(err *SourceError) {
	*el = append(*el, err)
}

// Len returns the number of errors.
func (el SourceErrors) Len() int {
	return len(el)
}

// HasErrors returns true if there are any errors.
func (el SourceErrors) HasErrors() bool {
	return len(el) > 0
}
