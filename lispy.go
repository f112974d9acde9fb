// Package lispy implements a small interpreter for a Scheme-like language:
// a tokenizer and reader that turn source text into an expression tree, a
// chain of lexical environments, and a recursive evaluator with the special
// forms quote, if, define, set! and lambda. Procedures are first-class
// closures that capture their defining environment by reference.
//
// The canonical pipeline is
//
//	src → Tokenize → Parse → Eval (against an *Env) → Render
//
// There is no process-wide default environment: callers build a root with
// StandardEnv (or NewEnv) and pass it explicitly to every Eval. All failures
// surface as *Error values with a distinct Kind (syntax, name, type, arity,
// arithmetic); WrapErrorWithSource decorates them with a caret snippet for
// display.
package lispy

// Version is the interpreter version reported by the CLI.
const Version = "0.3.0"

// BuildDate is stamped by hand on tagged releases.
const BuildDate = "2026-08-25"
