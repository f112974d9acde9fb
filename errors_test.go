package lispy

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", sub, s)
	}
}

func Test_Error_String_WithAndWithoutPosition(t *testing.T) {
	located := &Error{Kind: ErrName, Msg: "undefined variable: x", Line: 3, Col: 7}
	if got := located.Error(); got != "NAME ERROR at 3:7: undefined variable: x" {
		t.Fatalf("unexpected message: %q", got)
	}
	floating := &Error{Kind: ErrArity, Msg: "car expects 1 arguments, got 2"}
	if got := floating.Error(); got != "ARITY ERROR: car expects 1 arguments, got 2" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func Test_Error_KindPredicates(t *testing.T) {
	probes := []func(error) bool{IsSyntaxError, IsNameError, IsTypeError, IsArityError, IsArithmeticError}
	kinds := []ErrKind{ErrSyntax, ErrName, ErrType, ErrArity, ErrArithmetic}
	for i, kind := range kinds {
		err := errf(kind, "boom")
		for j, probe := range probes {
			if got := probe(err); got != (i == j) {
				t.Fatalf("kind %v, probe %d: want %v, got %v", kind, j, i == j, got)
			}
		}
	}
	for _, probe := range probes {
		if probe(errors.New("plain")) {
			t.Fatalf("plain errors must not match any kind")
		}
	}
}

func Test_Error_PredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("while loading: %w", errf(ErrName, "undefined variable: ghost"))
	if !IsNameError(err) {
		t.Fatalf("wrapped name error not recognized: %v", err)
	}
	if IsTypeError(err) {
		t.Fatalf("wrapped name error misclassified: %v", err)
	}
}

func Test_Error_IsIncomplete(t *testing.T) {
	_, err := Parse("(define x")
	if !IsIncomplete(err) {
		t.Fatalf("dangling open paren should be incomplete, got %v", err)
	}
	_, err = Parse(")")
	if IsIncomplete(err) {
		t.Fatalf("stray close paren should be a hard error, got %v", err)
	}
	if IsIncomplete(errors.New("whatever")) {
		t.Fatalf("foreign errors are never incomplete")
	}
}

func Test_WrapErrorWithSource_CaretAndContext(t *testing.T) {
	src := "(define x\n  (/ 1 0))"
	err := evalErr(t, src)
	msg := WrapErrorWithSource(err, src).Error()

	mustContain(t, msg, "ARITHMETIC ERROR at 2:3: division by zero")
	mustContain(t, msg, "   1 | (define x")
	mustContain(t, msg, "   2 |   (/ 1 0))")
	mustContain(t, msg, "     |   ^")
}

func Test_WrapErrorWithName_LabelsTheSource(t *testing.T) {
	src := "ghost"
	err := evalErr(t, src)
	msg := WrapErrorWithName(err, "demo.scm", src).Error()

	mustContain(t, msg, "NAME ERROR in demo.scm at 1:1: undefined variable: ghost")
	mustContain(t, msg, "   1 | ghost")
	mustContain(t, msg, "     | ^")
}

func Test_WrapErrorWithSource_CaretPastLineEnd(t *testing.T) {
	// An unterminated form is reported one column past the last token.
	src := "(+ 1 2"
	_, err := Parse(src)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	msg := WrapErrorWithSource(err, src).Error()
	mustContain(t, msg, "SYNTAX ERROR at 1:7")
	mustContain(t, msg, "   1 | (+ 1 2")
	mustContain(t, msg, "     |       ^")
}

func Test_WrapErrorWithSource_PassesForeignErrorsThrough(t *testing.T) {
	plain := errors.New("disk on fire")
	if got := WrapErrorWithSource(plain, "src"); got != plain {
		t.Fatalf("foreign error should pass through, got %v", got)
	}
	floating := errf(ErrType, "no location")
	if got := WrapErrorWithSource(floating, "src"); got != error(floating) {
		t.Fatalf("location-less error should pass through, got %v", got)
	}
}
