// parser.go — the reader: token sequence → expression tree.
//
// OVERVIEW
// --------
// The reader consumes the token stream produced by lexer.go front to back
// with a cursor and builds one Expr per top-level form:
//
//   - `(` opens a list; sub-expressions are read recursively until the
//     matching `)`.
//   - `)` with no open list is a syntax error.
//   - any other token is an atom, classified integer-first: a token that
//     parses as a base-10 integer is an EInt, else a float parse is tried
//     (ENum), else the token is a symbol verbatim (ESym). The ordering
//     matters: "5" must stay integral so arithmetic can pick integer
//     semantics from operand kinds.
//
// Running out of tokens mid-form produces a syntax error marked incomplete
// (see IsIncomplete in errors.go); REPLs use that to keep reading lines
// instead of reporting a hard failure.
package lispy

import "strconv"

////////////////////////////////////////////////////////////////////////////////
//                                  PUBLIC API
////////////////////////////////////////////////////////////////////////////////

// Parse reads exactly one expression from src. Trailing tokens after the
// first complete form are ignored, mirroring a single read from a stream.
func Parse(src string) (Expr, error) {
	r := &reader{toks: Tokenize(src)}
	return r.form()
}

// ParseAll reads successive top-level forms until src is exhausted.
// An empty source yields an empty program, not an error.
func ParseAll(src string) ([]Expr, error) {
	r := &reader{toks: Tokenize(src)}
	var forms []Expr
	for !r.atEnd() {
		x, err := r.form()
		if err != nil {
			return nil, err
		}
		forms = append(forms, x)
	}
	return forms, nil
}

//// END_OF_PUBLIC

type reader struct {
	toks []Token
	i    int
}

func (r *reader) atEnd() bool { return r.i >= len(r.toks) }
func (r *reader) peek() Token { return r.toks[r.i] }
func (r *reader) next() Token {
	t := r.toks[r.i]
	r.i++
	return t
}

// endPos is the position just past the final token, where an unexpected
// end of input is reported.
func (r *reader) endPos() (line, col int) {
	if len(r.toks) == 0 {
		return 1, 1
	}
	last := r.toks[len(r.toks)-1]
	return last.Line, last.Col + len(last.Lexeme)
}

func (r *reader) form() (Expr, error) {
	if r.atEnd() {
		line, col := r.endPos()
		return Expr{}, &Error{Kind: ErrSyntax, Msg: "unexpected end of input", Line: line, Col: col, incomplete: true}
	}
	tok := r.next()
	switch tok.Type {
	case LPAREN:
		elems := []Expr{}
		for {
			if r.atEnd() {
				line, col := r.endPos()
				return Expr{}, &Error{Kind: ErrSyntax, Msg: "expected ')' before end of input", Line: line, Col: col, incomplete: true}
			}
			if r.peek().Type == RPAREN {
				r.next()
				return Expr{Tag: EList, Data: elems, Line: tok.Line, Col: tok.Col}, nil
			}
			sub, err := r.form()
			if err != nil {
				return Expr{}, err
			}
			elems = append(elems, sub)
		}
	case RPAREN:
		return Expr{}, &Error{Kind: ErrSyntax, Msg: "unexpected ')'", Line: tok.Line, Col: tok.Col}
	default:
		return atomExpr(tok), nil
	}
}

/// atomExpr classifies an atom token: integer, then float, then symbol.
func atomExpr(t Token) Expr {
	if n, err := strconv.ParseInt(t.Lexeme, 10, 64); err == nil {
		return Expr{Tag: EInt, Data: n, Line: t.Line, Col: t.Col}
	}
	if f, err := strconv.ParseFloat(t.Lexeme, 64); err == nil {
		return Expr{Tag: ENum, Data: f, Line: t.Line, Col: t.Col}
	}
	return Expr{Tag: ESym, Data: t.Lexeme, Line: t.Line, Col: t.Col}
}
