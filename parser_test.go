// parser_test.go
package lispy

import "testing"

func parseOne(t *testing.T, src string) Expr {
	t.Helper()
	x, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error for %q: %v", src, err)
	}
	return x
}

func wantIntExpr(t *testing.T, x Expr, n int64) {
	t.Helper()
	if x.Tag != EInt || x.Data.(int64) != n {
		t.Fatalf("want int expr %d, got %#v", n, x)
	}
}

func wantNumExpr(t *testing.T, x Expr, f float64) {
	t.Helper()
	if x.Tag != ENum || x.Data.(float64) != f {
		t.Fatalf("want num expr %g, got %#v", f, x)
	}
}

func wantSymExpr(t *testing.T, x Expr, s string) {
	t.Helper()
	if x.Tag != ESym || x.Data.(string) != s {
		t.Fatalf("want symbol expr %q, got %#v", s, x)
	}
}

func Test_Parser_Atom_Classification(t *testing.T) {
	wantIntExpr(t, parseOne(t, "5"), 5)
	wantIntExpr(t, parseOne(t, "-3"), -3)
	wantIntExpr(t, parseOne(t, "0"), 0)
	wantNumExpr(t, parseOne(t, "3.14"), 3.14)
	wantNumExpr(t, parseOne(t, "-3.14e159"), -3.14e159)
	wantNumExpr(t, parseOne(t, "1e3"), 1000.0)
	wantSymExpr(t, parseOne(t, "fib"), "fib")
	wantSymExpr(t, parseOne(t, "+"), "+")
	wantSymExpr(t, parseOne(t, "set!"), "set!")
	wantSymExpr(t, parseOne(t, "null?"), "null?")
	// Not quite numbers, so they read as symbols.
	wantSymExpr(t, parseOne(t, "1.2.3"), "1.2.3")
	wantSymExpr(t, parseOne(t, "-"), "-")
}

func Test_Parser_IntegerBeforeFloat(t *testing.T) {
	// "5" must come back as an integer even though it also parses as a float.
	x := parseOne(t, "5")
	if x.Tag != EInt {
		t.Fatalf("want EInt for %q, got %#v", "5", x)
	}
}

func Test_Parser_Nesting_RoundTrips(t *testing.T) {
	for _, src := range []string{
		"(+ 1 2)",
		"(define circle-area (lambda (r) (* pi (* r r))))",
		"(if (< 1 2) (quote yes) (quote no))",
		"()",
		"(() (()) x)",
	} {
		x := parseOne(t, src)
		if got := RenderExpr(x); got != src {
			t.Fatalf("round trip mismatch:\nwant %q\ngot  %q", src, got)
		}
	}
}

func Test_Parser_Positions(t *testing.T) {
	x := parseOne(t, "(f\n  bar)")
	if x.Line != 1 || x.Col != 1 {
		t.Fatalf("list should carry the opening paren position, got %d:%d", x.Line, x.Col)
	}
	elems := x.Data.([]Expr)
	if elems[1].Line != 2 || elems[1].Col != 3 {
		t.Fatalf("bar should sit at 2:3, got %d:%d", elems[1].Line, elems[1].Col)
	}
}

func Test_Parser_TrailingTokens_Ignored(t *testing.T) {
	// Parse reads a single form; the rest of the input stays unread.
	wantIntExpr(t, parseOne(t, "1 2 3"), 1)
	x := parseOne(t, "(a b) trailing")
	if x.Tag != EList || len(x.Data.([]Expr)) != 2 {
		t.Fatalf("want 2-element list, got %#v", x)
	}
}

func Test_Parser_ParseAll_MultipleForms(t *testing.T) {
	forms, err := ParseAll("(define x 1)\n(+ x 2)\nx")
	if err != nil {
		t.Fatalf("ParseAll error: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("want 3 forms, got %d", len(forms))
	}
	wantSymExpr(t, forms[2], "x")
}

func Test_Parser_ParseAll_EmptySource(t *testing.T) {
	forms, err := ParseAll("   \n ")
	if err != nil {
		t.Fatalf("blank source should parse, got %v", err)
	}
	if len(forms) != 0 {
		t.Fatalf("want no forms, got %d", len(forms))
	}
}

func Test_Parser_UnexpectedEOF_IsIncompleteSyntaxError(t *testing.T) {
	for _, src := range []string{"", "   ", "(", "(define x", "(a (b c)"} {
		_, err := Parse(src)
		if err == nil {
			t.Fatalf("expected error for %q, got nil", src)
		}
		if !IsSyntaxError(err) {
			t.Fatalf("expected syntax error for %q, got %v", src, err)
		}
		if !IsIncomplete(err) {
			t.Fatalf("expected incomplete error for %q, got %v", src, err)
		}
	}
}

func Test_Parser_UnexpectedCloseParen_IsHardError(t *testing.T) {
	// More input cannot fix a stray ')', so it must not look continuable.
	probe := func(src string) error {
		if src == ")" {
			_, err := Parse(src)
			return err
		}
		// The first form closes cleanly; only reading the rest trips.
		_, err := ParseAll(src)
		return err
	}
	for _, src := range []string{")", "(a))"} {
		err := probe(src)
		if err == nil || !IsSyntaxError(err) {
			t.Fatalf("expected syntax error for %q, got %v", src, err)
		}
		if IsIncomplete(err) {
			t.Fatalf("stray ')' must not be incomplete: %v", err)
		}
	}
}

func Test_Parser_ErrorCarriesPosition(t *testing.T) {
	_, err := Parse("\n  )")
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("want *Error, got %T (%v)", err, err)
	}
	if e.Line != 2 || e.Col != 3 {
		t.Fatalf("want position 2:3, got %d:%d", e.Line, e.Col)
	}
}
