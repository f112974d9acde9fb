// lexer.go: source text → flat token sequence.
//
// The language's lexical grammar is deliberately tiny: `(` and `)` are
// single-character tokens and every other maximal run of non-whitespace,
// non-parenthesis bytes is an atom token, classified later by the reader.
// The token stream is exactly what padding parentheses with spaces and
// splitting on whitespace would produce; this scanner only adds 1-based
// line/column positions so diagnostics can point at source. There is no
// comment syntax, no string literals, and no quote shorthand.
package lispy

// TokenType represents the kind of token.
type TokenType int

const (
	LPAREN TokenType = iota // "("
	RPAREN                  // ")"
	ATOM                    // number or symbol text, classified by the reader
)

// Token is a lexical token with its 1-based source position.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

// Tokenize scans src into tokens. It never fails: any text is a valid token
// sequence (balance is checked by the reader, not here).
func Tokenize(src string) []Token {
	var toks []Token
	line, col := 1, 1
	i := 0
	for i < len(src) {
		ch := src[i]
		switch {
		case ch == '\n':
			line++
			col = 1
			i++
		case isSpace(ch):
			col++
			i++
		case ch == '(':
			toks = append(toks, Token{Type: LPAREN, Lexeme: "(", Line: line, Col: col})
			col++
			i++
		case ch == ')':
			toks = append(toks, Token{Type: RPAREN, Lexeme: ")", Line: line, Col: col})
			col++
			i++
		default:
			start, startCol := i, col
			for i < len(src) && !isDelim(src[i]) {
				i++
				col++
			}
			toks = append(toks, Token{Type: ATOM, Lexeme: src[start:i], Line: line, Col: startCol})
		}
	}
	return toks
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

func isDelim(b byte) bool { return isSpace(b) || b == '(' || b == ')' }
