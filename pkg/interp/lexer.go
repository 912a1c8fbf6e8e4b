package interp

import "unicode"

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"int":   INT,
	"print": PRINT,
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
	col  int // current 1-based column
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1, col: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// isLetter reports whether r can begin or continue an identifier.
// The class is ASCII only: [A-Za-z_].
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// isDigit reports whether r is an ASCII decimal digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanIdent collects a full identifier or keyword token.
// The first character (letter or '_') must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if !isLetter(r) && !isDigit(r) {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line, Col: col}
}

// scanNumber collects a decimal integer literal.
// The first digit must still be at l.peek().
func (l *Lexer) scanNumber() Token {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	return Token{Type: NUMBER, Lexeme: string(l.src[start:l.pos]), Line: line, Col: col}
}

// nextToken skips whitespace and returns the next Token.
func (l *Lexer) nextToken() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Lexeme: "", Line: l.line, Col: l.col}, nil
	}

	ch := l.peek()
	line, col := l.line, l.col

	if isLetter(ch) {
		return l.scanIdent(), nil
	}
	if isDigit(ch) {
		return l.scanNumber(), nil
	}

	l.advance() // consume the character before the switch
	switch ch {
	case '{':
		return Token{LBRACE, "{", line, col}, nil
	case '}':
		return Token{RBRACE, "}", line, col}, nil
	case '(':
		return Token{LPAREN, "(", line, col}, nil
	case ')':
		return Token{RPAREN, ")", line, col}, nil
	case ';':
		return Token{SEMICOLON, ";", line, col}, nil
	case ',':
		return Token{COMMA, ",", line, col}, nil

	case '+':
		return Token{PLUS, "+", line, col}, nil
	case '-':
		return Token{MINUS, "-", line, col}, nil
	case '*':
		return Token{STAR, "*", line, col}, nil
	case '/':
		return Token{SLASH, "/", line, col}, nil

	case '=':
		if l.peek() == '=' { // lookahead: distinguish = vs ==
			l.advance()
			return Token{EQUALS, "==", line, col}, nil
		}
		return Token{ASSIGN, "=", line, col}, nil
	case '!':
		if l.peek() == '=' {
			l.advance()
			return Token{NOT_EQ, "!=", line, col}, nil
		}
		return Token{}, &LexError{Line: line, Col: col, Char: ch}
	case '<':
		return Token{LESS, "<", line, col}, nil
	case '>':
		return Token{GREATER, ">", line, col}, nil
	default:
		return Token{}, &LexError{Line: line, Col: col, Char: ch}
	}
}

// Lex tokenises src and returns all tokens including the final EOF token.
// It returns a non-nil *LexError on the first character outside the token set.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
