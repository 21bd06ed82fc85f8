package marl

import (
	"errors"
	"strings"
	"testing"
)

func TestSourceErrorMessage(t *testing.T) {
	err := NewSyntaxError("expected ';'", Span{
		Start: Position{Line: 3, Column: 7, Offset: 20},
		End:   Position{Line: 3, Column: 8, Offset: 21},
	}, "")

	if got := err.Error(); got != "3:7: expected ';'" {
		t.Errorf("Error() = %q", got)
	}

	// Without a location only the message survives.
	bare := &SourceError{Phase: PhaseSyntactic, Message: "oops"}
	if got := bare.Error(); got != "oops" {
		t.Errorf("Error() = %q", got)
	}
}

func TestSourceErrorFormatWithContext(t *testing.T) {
	source := "x = 1;\ny = ;\nz = 3;"
	err := NewSyntaxError("expected expression, found ';'", Span{
		Start: Position{Line: 2, Column: 5, Offset: 11},
		End:   Position{Line: 2, Column: 6, Offset: 12},
	}, source)

	out := err.FormatWithContext()
	for _, want := range []string{
		"syntactic error: expected expression, found ';'",
		"line 2:5",
		"y = ;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	// The caret sits under column 5.
	caretLine := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "^") {
			caretLine = line
		}
	}
	if caretLine == "" {
		t.Fatal("no caret line in output")
	}
	if got := strings.Index(caretLine, "^"); got != len("   | ")+4 {
		t.Errorf("caret at index %d in %q", got, caretLine)
	}
}

func TestSourceErrorFormatLexicalPhase(t *testing.T) {
	source := `x = "abc`
	err := NewLexError("unterminated string literal", Span{
		Start: Position{Line: 1, Column: 5, Offset: 4},
		End:   Position{Line: 1, Column: 9, Offset: 8},
	}, source)

	if !strings.HasPrefix(err.FormatWithContext(), "lexical error:") {
		t.Errorf("unexpected prefix: %q", err.FormatWithContext())
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseLexical.String() != "lexical" || PhaseSyntactic.String() != "syntactic" {
		t.Error("phase names wrong")
	}
}

func TestSourceErrorsAggregate(t *testing.T) {
	var errs SourceErrors
	if errs.HasErrors() {
		t.Error("empty list reports errors")
	}

	errs.Add(NewSyntaxError("first", Span{Start: Position{Line: 1, Column: 1}}, ""))
	errs.Add(NewSyntaxError("second", Span{Start: Position{Line: 2, Column: 1}}, ""))

	if errs.Len() != 2 || !errs.HasErrors() {
		t.Fatalf("expected 2 errors, got %d", errs.Len())
	}
	if got := errs.Error(); !strings.Contains(got, "first") || !strings.Contains(got, "1 more") {
		t.Errorf("Error() = %q", got)
	}

	all := errs.FormatAll()
	if !strings.Contains(all, "first") || !strings.Contains(all, "second") {
		t.Errorf("FormatAll() = %q", all)
	}
}

func TestIsIncompleteNonSourceError(t *testing.T) {
	if IsIncomplete(nil) {
		t.Error("nil reported incomplete")
	}
	if IsIncomplete(errors.New("not a source error")) {
		t.Error("foreign error reported incomplete")
	}
}
