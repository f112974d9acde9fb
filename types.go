// types.go: the expression and value models.
//
// Both domains are closed tagged unions in the style of a Value{Tag, Data}
// carrier: the tag determines which Go type Data holds, and every consumer
// switches exhaustively on it. Expressions are what the reader produces;
// Values are what evaluation produces. The two are kept separate so that
// quote has a precise meaning (a structural copy from the Expr domain into
// the Value domain) and so evaluation can never feed itself unevaluated
// source by accident.
package lispy

// ExprTag enumerates the parsed expression kinds.
type ExprTag int

const (
	EInt  ExprTag = iota // int64
	ENum                 // float64
	ESym                 // string
	EList                // []Expr
)

// Expr is a parsed, not-yet-evaluated expression. Line/Col anchor the
// expression's first token (1-based) for diagnostics.
//
// Invariants:
//   - When Tag==EList, Data is []Expr (possibly empty: the empty list).
//   - Atoms carry exactly the Go value their tag names.
type Expr struct {
	Tag  ExprTag
	Data interface{}
	Line int
	Col  int
}

// ValueTag enumerates all runtime kinds a Value may hold.
type ValueTag int

const (
	VTNone    ValueTag = iota // statement result (define/set!); no payload
	VTBool                    // bool
	VTInt                     // int64
	VTNum                     // float64
	VTSym                     // string
	VTList                    // []Value
	VTProc                    // *Procedure
	VTBuiltin                 // *Builtin
)

// Value is the universal runtime carrier produced by evaluation.
//
// Invariants:
//   - When Tag==VTNone, Data is nil.
//   - When Tag==VTList, Data is []Value (nil and empty both mean the
//     empty list).
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// None is the result of statement forms (define, set!). REPLs and the demo
// harness do not print it.
var None = Value{Tag: VTNone}

// Primitive constructors.
func Bool(b bool) Value     { return Value{Tag: VTBool, Data: b} }
func Int(n int64) Value     { return Value{Tag: VTInt, Data: n} }
func Num(f float64) Value   { return Value{Tag: VTNum, Data: f} }
func Sym(s string) Value    { return Value{Tag: VTSym, Data: s} }
func List(xs []Value) Value { return Value{Tag: VTList, Data: xs} }

// ProcVal wraps *Procedure into a Value (Tag=VTProc).
func ProcVal(p *Procedure) Value { return Value{Tag: VTProc, Data: p} }

// BuiltinVal wraps *Builtin into a Value (Tag=VTBuiltin).
func BuiltinVal(b *Builtin) Value { return Value{Tag: VTBuiltin, Data: b} }

// Procedure is a user-defined closure: parameter names, a single body
// expression, and the environment captured at the lambda site. The
// environment is held by reference, so later define/set! mutations in it
// remain visible to the closure.
type Procedure struct {
	Params []string
	Body   Expr
	Env    *Env
}

// Builtin is a host-implemented procedure. Fn receives already-evaluated
// arguments and returns a Value or an *Error.
type Builtin struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

// Truthy implements the language's truthiness rule: only the boolean false
// value is falsy. Zero and the empty list are truthy.
func Truthy(v Value) bool {
	return !(v.Tag == VTBool && !v.Data.(bool))
}

// callable reports whether v can sit in operator position.
func callable(v Value) bool {
	return v.Tag == VTProc || v.Tag == VTBuiltin
}
