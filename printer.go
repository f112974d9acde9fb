package lispy

import (
	"math"
	"strconv"
	"strings"
)

/* ===== PUBLIC API ===== */

// Render turns a value back into source-shaped text: atoms as they would be
// read, lists as parenthesized space-joined elements. Procedures have no
// source form and render as opaque tags.
func Render(v Value) string {
	switch v.Tag {
	case VTNone:
		return "<none>"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return renderFloat(v.Data.(float64))
	case VTSym:
		return v.Data.(string)
	case VTList:
		xs := v.Data.([]Value)
		parts := make([]string, len(xs))
		for i, x := range xs {
			parts[i] = Render(x)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case VTProc:
		return "<procedure>"
	case VTBuiltin:
		return "<builtin " + v.Data.(*Builtin).Name + ">"
	}
	return "<unknown>"
}

// RenderExpr prints unevaluated syntax, mainly for diagnostics and tests.
func RenderExpr(x Expr) string {
	switch x.Tag {
	case EInt:
		return strconv.FormatInt(x.Data.(int64), 10)
	case ENum:
		return renderFloat(x.Data.(float64))
	case ESym:
		return x.Data.(string)
	case EList:
		xs := x.Data.([]Expr)
		parts := make([]string, len(xs))
		for i, el := range xs {
			parts[i] = RenderExpr(el)
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	return "<unknown>"
}

func (v Value) String() string { return Render(v) }

func (x Expr) String() string { return RenderExpr(x) }

//// END_OF_PUBLIC ///////////////////////////////////////////////////////////

// renderFloat keeps floats distinguishable from ints: a float that prints
// like an integer gets a ".0" suffix so it reads back as the same kind.
func renderFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "+inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
