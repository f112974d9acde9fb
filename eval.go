// eval.go — the recursive tree-walking evaluator.
//
// OVERVIEW
// --------
// Eval dispatches on the expression's tag, in this order:
//
//  1. symbol atom     → environment lookup (innermost frame first)
//  2. number atom     → self-evaluating
//  3. list            → special form by head symbol (quote, if, define,
//     set!, lambda), otherwise procedure application:
//     evaluate the head, evaluate the arguments
//     left-to-right, invoke via Apply.
//
// Special forms are recognized only in the head position of a list, by
// name, before any lookup; a variable named `if` is therefore legal, it
// just cannot be called in head position.
//
// The evaluator is single-threaded and performs no recovery: any failure
// aborts the current top-level evaluation with an *Error, and a failed
// define/set! right-hand side never touches a binding. Deep user-level
// recursion is bounded by the host stack; there is no trampoline.
package lispy

import "errors"

// Eval evaluates x against env and returns the resulting value.
// Statement forms (define, set!) return the None value.
func Eval(x Expr, env *Env) (Value, error) {
	switch x.Tag {
	case ESym:
		v, err := env.Get(x.Data.(string))
		if err != nil {
			return Value{}, anchor(err, x)
		}
		return v, nil
	case EInt:
		return Int(x.Data.(int64)), nil
	case ENum:
		return Num(x.Data.(float64)), nil
	}

	list := x.Data.([]Expr)
	if len(list) == 0 {
		return Value{}, errAt(ErrSyntax, x.Line, x.Col, "cannot evaluate the empty list")
	}
	if head, ok := headSymbol(list[0]); ok {
		switch head {
		case "quote":
			return evalQuote(x, list)
		case "if":
			return evalIf(x, list, env)
		case "define":
			return evalDefine(x, list, env)
		case "set!":
			return evalSet(x, list, env)
		case "lambda":
			return evalLambda(x, list, env)
		}
	}
	return evalApply(x, list, env)
}

// Apply invokes a procedure or builtin value on already-evaluated
// arguments. It is the single call path shared by the evaluator and by
// higher-order builtins (apply, map).
func Apply(fn Value, args []Value) (Value, error) {
	switch fn.Tag {
	case VTProc:
		p := fn.Data.(*Procedure)
		callEnv, err := NewCallEnv(p.Params, args, p.Env)
		if err != nil {
			return Value{}, err
		}
		return Eval(p.Body, callEnv)
	case VTBuiltin:
		return fn.Data.(*Builtin).Fn(args)
	}
	return Value{}, errf(ErrType, "not callable: %s", Render(fn))
}

/* ---------- special forms ---------- */

// (quote E) → E as a Value, unevaluated.
func evalQuote(x Expr, list []Expr) (Value, error) {
	if len(list) != 2 {
		return Value{}, errAt(ErrSyntax, x.Line, x.Col, "quote expects (quote expr)")
	}
	return quoted(list[1]), nil
}

// (if TEST CONSEQ ALT) — exactly one branch is evaluated.
func evalIf(x Expr, list []Expr, env *Env) (Value, error) {
	if len(list) != 4 {
		return Value{}, errAt(ErrSyntax, x.Line, x.Col, "if expects (if test conseq alt)")
	}
	test, err := Eval(list[1], env)
	if err != nil {
		return Value{}, err
	}
	if Truthy(test) {
		return Eval(list[2], env)
	}
	return Eval(list[3], env)
}

// (define NAME EXPR) — bind in the innermost frame. The right-hand side is
// evaluated first, so a failing EXPR binds nothing.
func evalDefine(x Expr, list []Expr, env *Env) (Value, error) {
	name, ok := bindingName(list)
	if !ok {
		return Value{}, errAt(ErrSyntax, x.Line, x.Col, "define expects (define name expr)")
	}
	v, err := Eval(list[2], env)
	if err != nil {
		return Value{}, err
	}
	env.Define(name, v)
	return None, nil
}

// (set! NAME EXPR) — overwrite the nearest enclosing binding of NAME.
// Like define, the right-hand side is evaluated before the binding is
// located, so a failing EXPR leaves every frame untouched.
func evalSet(x Expr, list []Expr, env *Env) (Value, error) {
	name, ok := bindingName(list)
	if !ok {
		return Value{}, errAt(ErrSyntax, x.Line, x.Col, "set! expects (set! name expr)")
	}
	v, err := Eval(list[2], env)
	if err != nil {
		return Value{}, err
	}
	if err := env.Set(name, v); err != nil {
		return Value{}, anchor(err, list[1])
	}
	return None, nil
}

// (lambda (PARAM...) BODY) — capture parameters, one body expression, and
// the current environment by reference.
func evalLambda(x Expr, list []Expr, env *Env) (Value, error) {
	if len(list) != 3 {
		return Value{}, errAt(ErrSyntax, x.Line, x.Col, "lambda expects (lambda (params) body)")
	}
	params, ok := paramNames(list[1])
	if !ok {
		return Value{}, errAt(ErrSyntax, list[1].Line, list[1].Col, "lambda parameters must be a list of symbols")
	}
	return ProcVal(&Procedure{Params: params, Body: list[2], Env: env}), nil
}

/* ---------- application ---------- */

func evalApply(x Expr, list []Expr, env *Env) (Value, error) {
	fn, err := Eval(list[0], env)
	if err != nil {
		return Value{}, err
	}
	// Every operand evaluates, left to right, before fn is vetted.
	args := make([]Value, 0, len(list)-1)
	for _, ax := range list[1:] {
		v, err := Eval(ax, env)
		if err != nil {
			return Value{}, err
		}
		args = append(args, v)
	}
	if !callable(fn) {
		return Value{}, errAt(ErrType, list[0].Line, list[0].Col, "not callable: %s", Render(fn))
	}
	v, err := Apply(fn, args)
	if err != nil {
		return Value{}, anchor(err, x)
	}
	return v, nil
}

/* ---------- helpers ---------- */

// quoted structurally copies an expression into the value domain.
func quoted(x Expr) Value {
	switch x.Tag {
	case EInt:
		return Int(x.Data.(int64))
	case ENum:
		return Num(x.Data.(float64))
	case ESym:
		return Sym(x.Data.(string))
	}
	elems := x.Data.([]Expr)
	xs := make([]Value, len(elems))
	for i, el := range elems {
		xs[i] = quoted(el)
	}
	return List(xs)
}

func headSymbol(x Expr) (string, bool) {
	if x.Tag != ESym {
		return "", false
	}
	return x.Data.(string), true
}

// bindingName extracts NAME from a well-formed (define NAME EXPR) or
// (set! NAME EXPR) list.
func bindingName(list []Expr) (string, bool) {
	if len(list) != 3 || list[1].Tag != ESym {
		return "", false
	}
	return list[1].Data.(string), true
}

func paramNames(x Expr) ([]string, bool) {
	if x.Tag != EList {
		return nil, false
	}
	elems := x.Data.([]Expr)
	names := make([]string, len(elems))
	for i, el := range elems {
		if el.Tag != ESym {
			return nil, false
		}
		names[i] = el.Data.(string)
	}
	return names, true
}

// anchor fills in the source position of a location-less *Error from the
// expression being evaluated, leaving located errors untouched.
func anchor(err error, x Expr) error {
	var e *Error
	if errors.As(err, &e) && e.Line == 0 {
		ne := *e
		ne.Line, ne.Col = x.Line, x.Col
		return &ne
	}
	return err
}
