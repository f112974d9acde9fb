// builtins.go — the standard environment.
//
// StandardEnv returns a fresh root environment populated with the fixed
// registration table of built-in procedures: arithmetic, comparisons, list
// primitives, predicates, the higher-order procedures apply/map/begin, and
// the host math library under natural names. Builtins receive evaluated
// arguments and return (Value, error); they never touch environments, so
// every one of them is safe to share between interpreters.
//
// Numeric model: exactly two kinds, int64 and float64. Arithmetic on
// integers stays integral (host wraparound); mixing kinds promotes to
// float; `/` always divides in floating point. Division by zero is an
// arithmetic error for both kinds, it never yields an infinity.
package lispy

import "math"

// StandardEnv returns a freshly populated root environment. Callers own it
// and pass it to Eval explicitly; two environments share no state.
func StandardEnv() *Env {
	env := NewEnv(nil)
	registerArithBuiltins(env)
	registerCompareBuiltins(env)
	registerListBuiltins(env)
	registerPredicateBuiltins(env)
	registerControlBuiltins(env)
	registerMathBuiltins(env)

	// true and false read as symbols; they resolve as ordinary bindings.
	env.Define("true", Bool(true))
	env.Define("false", Bool(false))
	return env
}

func builtin(env *Env, name string, fn func(args []Value) (Value, error)) {
	env.Define(name, BuiltinVal(&Builtin{Name: name, Fn: fn}))
}

/* ---------- numeric helpers ---------- */

// numericValue returns the float64 view of a number and whether v is one.
func numericValue(v Value) (float64, bool) {
	switch v.Tag {
	case VTInt:
		return float64(v.Data.(int64)), true
	case VTNum:
		return v.Data.(float64), true
	}
	return 0, false
}

// numArgs converts every argument to its float64 view and reports whether
// all of them were integers (so callers can keep integer semantics).
func numArgs(name string, args []Value) ([]float64, bool, error) {
	fs := make([]float64, len(args))
	allInt := true
	for i, a := range args {
		f, ok := numericValue(a)
		if !ok {
			return nil, false, errf(ErrType, "%s expects numbers, got %s", name, Render(a))
		}
		if a.Tag == VTNum {
			allInt = false
		}
		fs[i] = f
	}
	return fs, allInt, nil
}

func wantArgs(name string, args []Value, n int) error {
	if len(args) != n {
		return errf(ErrArity, "%s expects %d arguments, got %d", name, n, len(args))
	}
	return nil
}

func listArg(name string, v Value) ([]Value, error) {
	if v.Tag != VTList {
		return nil, errf(ErrType, "%s expects a list, got %s", name, Render(v))
	}
	return v.Data.([]Value), nil
}

/* ---------- equality ---------- */

// valueEqual is the structural equality behind `=` and `equal?`: numbers
// compare across kinds (5 equals 5.0), lists compare element-wise, and
// procedures compare by identity.
func valueEqual(a, b Value) bool {
	if fa, ok := numericValue(a); ok {
		fb, ok := numericValue(b)
		return ok && fa == fb
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNone:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTSym:
		return a.Data.(string) == b.Data.(string)
	case VTList:
		xs, ys := a.Data.([]Value), b.Data.([]Value)
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !valueEqual(xs[i], ys[i]) {
				return false
			}
		}
		return true
	case VTProc:
		return a.Data.(*Procedure) == b.Data.(*Procedure)
	case VTBuiltin:
		return a.Data.(*Builtin) == b.Data.(*Builtin)
	}
	return false
}

// identical is the shallower identity test behind `eq?`: scalars of the
// same kind compare by value, procedures by pointer, and lists only when
// both are empty (the value model keeps no list identity).
func identical(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNone:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTInt:
		return a.Data.(int64) == b.Data.(int64)
	case VTNum:
		return a.Data.(float64) == b.Data.(float64)
	case VTSym:
		return a.Data.(string) == b.Data.(string)
	case VTList:
		return len(a.Data.([]Value)) == 0 && len(b.Data.([]Value)) == 0
	case VTProc:
		return a.Data.(*Procedure) == b.Data.(*Procedure)
	case VTBuiltin:
		return a.Data.(*Builtin) == b.Data.(*Builtin)
	}
	return false
}

/* ---------- arithmetic ---------- */

func registerArithBuiltins(env *Env) {
	builtin(env, "+", func(args []Value) (Value, error) {
		fs, allInt, err := numArgs("+", args)
		if err != nil {
			return Value{}, err
		}
		if allInt {
			var n int64
			for _, a := range args {
				n += a.Data.(int64)
			}
			return Int(n), nil
		}
		var f float64
		for _, x := range fs {
			f += x
		}
		return Num(f), nil
	})

	builtin(env, "*", func(args []Value) (Value, error) {
		fs, allInt, err := numArgs("*", args)
		if err != nil {
			return Value{}, err
		}
		if allInt {
			var n int64 = 1
			for _, a := range args {
				n *= a.Data.(int64)
			}
			return Int(n), nil
		}
		f := 1.0
		for _, x := range fs {
			f *= x
		}
		return Num(f), nil
	})

	builtin(env, "-", func(args []Value) (Value, error) {
		if err := wantArgs("-", args, 2); err != nil {
			return Value{}, err
		}
		fs, allInt, err := numArgs("-", args)
		if err != nil {
			return Value{}, err
		}
		if allInt {
			return Int(args[0].Data.(int64) - args[1].Data.(int64)), nil
		}
		return Num(fs[0] - fs[1]), nil
	})

	// `/` is true division: the result is always floating point, and a zero
	// divisor of either kind fails instead of producing an infinity.
	builtin(env, "/", func(args []Value) (Value, error) {
		if err := wantArgs("/", args, 2); err != nil {
			return Value{}, err
		}
		fs, _, err := numArgs("/", args)
		if err != nil {
			return Value{}, err
		}
		if fs[1] == 0 {
			return Value{}, errf(ErrArithmetic, "division by zero")
		}
		return Num(fs[0] / fs[1]), nil
	})

	builtin(env, "abs", func(args []Value) (Value, error) {
		if err := wantArgs("abs", args, 1); err != nil {
			return Value{}, err
		}
		switch args[0].Tag {
		case VTInt:
			n := args[0].Data.(int64)
			if n < 0 {
				n = -n
			}
			return Int(n), nil
		case VTNum:
			return Num(math.Abs(args[0].Data.(float64))), nil
		}
		return Value{}, errf(ErrType, "abs expects a number, got %s", Render(args[0]))
	})

	builtin(env, "max", func(args []Value) (Value, error) { return pickExtreme("max", args, func(a, b float64) bool { return a > b }) })
	builtin(env, "min", func(args []Value) (Value, error) { return pickExtreme("min", args, func(a, b float64) bool { return a < b }) })

	// round halves to even, like the host's banker's rounding, and always
	// yields an integer.
	builtin(env, "round", func(args []Value) (Value, error) {
		if err := wantArgs("round", args, 1); err != nil {
			return Value{}, err
		}
		switch args[0].Tag {
		case VTInt:
			return args[0], nil
		case VTNum:
			f := args[0].Data.(float64)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return Value{}, errf(ErrArithmetic, "cannot round %s to an integer", Render(args[0]))
			}
			r := math.RoundToEven(f)
			const lim = 1 << 63 // integers cover [-2^63, 2^63)
			if r < -lim || r >= lim {
				return Value{}, errf(ErrArithmetic, "cannot round %s to an integer", Render(args[0]))
			}
			return Int(int64(r)), nil
		}
		return Value{}, errf(ErrType, "round expects a number, got %s", Render(args[0]))
	})
}

// pickExtreme returns the first argument that wins every comparison,
// preserving its numeric kind. Ties keep the earlier argument.
func pickExtreme(name string, args []Value, better func(a, b float64) bool) (Value, error) {
	if len(args) == 0 {
		return Value{}, errf(ErrArity, "%s expects at least 1 argument, got 0", name)
	}
	fs, _, err := numArgs(name, args)
	if err != nil {
		return Value{}, err
	}
	best := 0
	for i := 1; i < len(fs); i++ {
		if better(fs[i], fs[best]) {
			best = i
		}
	}
	return args[best], nil
}

/* ---------- comparisons ---------- */

func registerCompareBuiltins(env *Env) {
	compare := func(name string, holds func(a, b float64) bool) {
		builtin(env, name, func(args []Value) (Value, error) {
			if err := wantArgs(name, args, 2); err != nil {
				return Value{}, err
			}
			fs, _, err := numArgs(name, args)
			if err != nil {
				return Value{}, err
			}
			return Bool(holds(fs[0], fs[1])), nil
		})
	}
	compare(">", func(a, b float64) bool { return a > b })
	compare("<", func(a, b float64) bool { return a < b })
	compare(">=", func(a, b float64) bool { return a >= b })
	compare("<=", func(a, b float64) bool { return a <= b })

	builtin(env, "=", func(args []Value) (Value, error) {
		if err := wantArgs("=", args, 2); err != nil {
			return Value{}, err
		}
		return Bool(valueEqual(args[0], args[1])), nil
	})

	builtin(env, "equal?", func(args []Value) (Value, error) {
		if err := wantArgs("equal?", args, 2); err != nil {
			return Value{}, err
		}
		return Bool(valueEqual(args[0], args[1])), nil
	})

	builtin(env, "eq?", func(args []Value) (Value, error) {
		if err := wantArgs("eq?", args, 2); err != nil {
			return Value{}, err
		}
		return Bool(identical(args[0], args[1])), nil
	})

	builtin(env, "not", func(args []Value) (Value, error) {
		if err := wantArgs("not", args, 1); err != nil {
			return Value{}, err
		}
		return Bool(!Truthy(args[0])), nil
	})
}

/* ---------- list primitives ---------- */

func registerListBuiltins(env *Env) {
	builtin(env, "car", func(args []Value) (Value, error) {
		if err := wantArgs("car", args, 1); err != nil {
			return Value{}, err
		}
		xs, err := listArg("car", args[0])
		if err != nil {
			return Value{}, err
		}
		if len(xs) == 0 {
			return Value{}, errf(ErrType, "car expects a non-empty list")
		}
		return xs[0], nil
	})

	// cdr of the empty list is the empty list.
	builtin(env, "cdr", func(args []Value) (Value, error) {
		if err := wantArgs("cdr", args, 1); err != nil {
			return Value{}, err
		}
		xs, err := listArg("cdr", args[0])
		if err != nil {
			return Value{}, err
		}
		if len(xs) == 0 {
			return List(nil), nil
		}
		return List(xs[1:]), nil
	})

	builtin(env, "cons", func(args []Value) (Value, error) {
		if err := wantArgs("cons", args, 2); err != nil {
			return Value{}, err
		}
		ys, err := listArg("cons", args[1])
		if err != nil {
			return Value{}, err
		}
		out := make([]Value, 0, len(ys)+1)
		out = append(out, args[0])
		out = append(out, ys...)
		return List(out), nil
	})

	builtin(env, "list", func(args []Value) (Value, error) {
		out := make([]Value, len(args))
		copy(out, args)
		return List(out), nil
	})

	builtin(env, "length", func(args []Value) (Value, error) {
		if err := wantArgs("length", args, 1); err != nil {
			return Value{}, err
		}
		xs, err := listArg("length", args[0])
		if err != nil {
			return Value{}, err
		}
		return Int(int64(len(xs))), nil
	})

	builtin(env, "append", func(args []Value) (Value, error) {
		var out []Value
		for _, a := range args {
			xs, err := listArg("append", a)
			if err != nil {
				return Value{}, err
			}
			out = append(out, xs...)
		}
		return List(out), nil
	})
}

/* ---------- predicates ---------- */

func registerPredicateBuiltins(env *Env) {
	predicate := func(name string, holds func(v Value) bool) {
		builtin(env, name, func(args []Value) (Value, error) {
			if err := wantArgs(name, args, 1); err != nil {
				return Value{}, err
			}
			return Bool(holds(args[0])), nil
		})
	}
	predicate("null?", func(v Value) bool { return v.Tag == VTList && len(v.Data.([]Value)) == 0 })
	predicate("number?", func(v Value) bool { return v.Tag == VTInt || v.Tag == VTNum })
	predicate("symbol?", func(v Value) bool { return v.Tag == VTSym })
	predicate("list?", func(v Value) bool { return v.Tag == VTList })
	predicate("procedure?", callable)
}

/* ---------- apply, map, begin ---------- */

func registerControlBuiltins(env *Env) {
	builtin(env, "apply", func(args []Value) (Value, error) {
		if err := wantArgs("apply", args, 2); err != nil {
			return Value{}, err
		}
		if !callable(args[0]) {
			return Value{}, errf(ErrType, "apply expects a procedure, got %s", Render(args[0]))
		}
		xs, err := listArg("apply", args[1])
		if err != nil {
			return Value{}, err
		}
		return Apply(args[0], xs)
	})

	// map is eager and accepts one or more lists; it stops at the shortest.
	builtin(env, "map", func(args []Value) (Value, error) {
		if len(args) < 2 {
			return Value{}, errf(ErrArity, "map expects at least 2 arguments, got %d", len(args))
		}
		if !callable(args[0]) {
			return Value{}, errf(ErrType, "map expects a procedure, got %s", Render(args[0]))
		}
		lists := make([][]Value, len(args)-1)
		shortest := -1
		for i, a := range args[1:] {
			xs, err := listArg("map", a)
			if err != nil {
				return Value{}, err
			}
			lists[i] = xs
			if shortest < 0 || len(xs) < shortest {
				shortest = len(xs)
			}
		}
		out := make([]Value, 0, shortest)
		row := make([]Value, len(lists))
		for i := 0; i < shortest; i++ {
			for j := range lists {
				row[j] = lists[j][i]
			}
			v, err := Apply(args[0], row)
			if err != nil {
				return Value{}, err
			}
			out = append(out, v)
		}
		return List(out), nil
	})

	// begin relies on the generic application rule: its arguments were
	// already evaluated left-to-right before the call, so it only has to
	// return the last one.
	builtin(env, "begin", func(args []Value) (Value, error) {
		if len(args) == 0 {
			return Value{}, errf(ErrArity, "begin expects at least 1 argument, got 0")
		}
		return args[len(args)-1], nil
	})
}

/* ---------- host math library ---------- */

func registerMathBuiltins(env *Env) {
	unary := map[string]func(float64) float64{
		"sin": math.Sin, "cos": math.Cos, "tan": math.Tan,
		"asin": math.Asin, "acos": math.Acos, "atan": math.Atan,
		"sinh": math.Sinh, "cosh": math.Cosh, "tanh": math.Tanh,
		"asinh": math.Asinh, "acosh": math.Acosh, "atanh": math.Atanh,
		"exp": math.Exp, "exp2": math.Exp2, "expm1": math.Expm1,
		"log": math.Log, "log2": math.Log2, "log10": math.Log10, "log1p": math.Log1p,
		"sqrt": math.Sqrt, "cbrt": math.Cbrt,
		"floor": math.Floor, "ceil": math.Ceil, "trunc": math.Trunc,
		"gamma": math.Gamma, "erf": math.Erf, "erfc": math.Erfc,
		"degrees": func(x float64) float64 { return x * 180 / math.Pi },
		"radians": func(x float64) float64 { return x * math.Pi / 180 },
	}
	for name, fn := range unary {
		name, fn := name, fn
		builtin(env, name, func(args []Value) (Value, error) {
			if err := wantArgs(name, args, 1); err != nil {
				return Value{}, err
			}
			fs, _, err := numArgs(name, args)
			if err != nil {
				return Value{}, err
			}
			return Num(fn(fs[0])), nil
		})
	}

	binary := map[string]func(float64, float64) float64{
		"pow": math.Pow, "atan2": math.Atan2, "hypot": math.Hypot,
		"copysign": math.Copysign, "fmod": math.Mod,
	}
	for name, fn := range binary {
		name, fn := name, fn
		builtin(env, name, func(args []Value) (Value, error) {
			if err := wantArgs(name, args, 2); err != nil {
				return Value{}, err
			}
			fs, _, err := numArgs(name, args)
			if err != nil {
				return Value{}, err
			}
			return Num(fn(fs[0], fs[1])), nil
		})
	}

	env.Define("pi", Num(math.Pi))
	env.Define("e", Num(math.E))
	env.Define("tau", Num(2*math.Pi))
	env.Define("inf", Num(math.Inf(1)))
	env.Define("nan", Num(math.NaN()))
}
