// errors.go: the interpreter's error taxonomy and caret-snippet rendering.
//
// Every failure the library can produce is an *Error carrying a Kind, so
// callers can distinguish a parse problem from an unbound variable from an
// arity mismatch without string matching. Line/Col are 1-based when known
// and zero when the failure has no source anchor (e.g. a builtin called
// through Apply by a host program).
//
// `WrapErrorWithSource` turns an *Error into a readable snippet with a caret
// under the offending column:
//
//	SYNTAX ERROR at 2:14: unexpected ')'
//
//	   1 | (define x
//	   2 |   (+ 1 2) 3))
//	     |              ^
//
// The snippet includes up to one line of context before and after the error.
// Errors of any other type pass through unchanged.
package lispy

import (
	"errors"
	"fmt"
	"strings"
)

/* ===========================
   PUBLIC API
   =========================== */

// ErrKind discriminates the failure classes the interpreter can produce.
type ErrKind int

const (
	ErrSyntax     ErrKind = iota // malformed source or special-form shape
	ErrName                      // unbound variable (lookup or set! target)
	ErrType                      // wrong operand kind; applying a non-procedure
	ErrArity                     // argument-count mismatch
	ErrArithmetic                // division by zero and friends
)

func (k ErrKind) String() string {
	switch k {
	case ErrSyntax:
		return "SYNTAX ERROR"
	case ErrName:
		return "NAME ERROR"
	case ErrType:
		return "TYPE ERROR"
	case ErrArity:
		return "ARITY ERROR"
	case ErrArithmetic:
		return "ARITHMETIC ERROR"
	default:
		return "ERROR"
	}
}

// Error is the single diagnostic type produced by the library.
// Line and Col are 1-based; both are 0 when the location is unknown.
type Error struct {
	Kind ErrKind
	Msg  string
	Line int
	Col  int

	incomplete bool // ran out of input mid-form; REPLs keep reading
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// IsIncomplete reports whether err is a syntax error caused by the input
// ending mid-form. Interactive callers treat this as "read another line"
// rather than a hard failure.
func IsIncomplete(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.incomplete
}

// Kind probes, one per taxonomy entry. They follow errors.As, so wrapped
// errors still answer correctly.
func IsSyntaxError(err error) bool     { return hasKind(err, ErrSyntax) }
func IsNameError(err error) bool       { return hasKind(err, ErrName) }
func IsTypeError(err error) bool       { return hasKind(err, ErrType) }
func IsArityError(err error) bool      { return hasKind(err, ErrArity) }
func IsArithmeticError(err error) bool { return hasKind(err, ErrArithmetic) }

// WrapErrorWithSource returns err augmented with a caret-annotated snippet of
// src. Only *Error values with a known location are decorated; anything else
// is returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source label (file name,
// "<repl>", ...) included in the header line.
func WrapErrorWithName(err error, srcName string, src string) error {
	var e *Error
	if !errors.As(err, &e) || e.Line < 1 {
		return err
	}
	return fmt.Errorf("%s", prettyErrorStringLabeled(src, e.Kind.String(), srcName, e.Line, e.Col, e.Msg))
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: constructors & rendering
   =========================== */

func hasKind(err error, k ErrKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// errf builds a location-less *Error; eval anchors it to the failing
// expression before returning it to the caller.
func errf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// errAt builds an *Error anchored at a 1-based source position.
func errAt(kind ErrKind, line, col int, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Line: line, Col: col}
}

// prettyErrorStringLabeled builds the snippet with a header and a caret.
// It shows at most one previous and one next line when available.
// Coordinates are treated as 1-based and clamped to the source bounds.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad > len(lineTxt) {
		caretPad = len(lineTxt)
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
