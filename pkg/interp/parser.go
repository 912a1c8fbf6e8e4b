package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program     = (declaration | statement)* EOF
//	declaration = "int" IDENTIFIER ("," IDENTIFIER)* ";"
//	statement   = assignment | ifStmt | whileStmt | printStmt
//	assignment  = IDENTIFIER "=" expression ";"
//	ifStmt      = "if" "(" condition ")" block ("else" block)?
//	whileStmt   = "while" "(" condition ")" block
//	printStmt   = "print" "(" expression ")" ";" | "print" IDENTIFIER ";"
//	block       = "{" statement* "}"
//	condition   = expression ("==" | "!=" | "<" | ">") expression
//	expression  = term (("+" | "-") term)*
//	term        = factor (("*" | "/") factor)*
//	factor      = NUMBER | IDENTIFIER | "(" expression ")"
//
// Declarations appear only at the top level; a condition carries exactly one
// comparison operator and exists only inside if/while parentheses.
type Parser struct {
	tokens      []Token
	pos         int
	sourceLines []string
}

func NewParser(tokens []Token, rawSource string) *Parser {
	return &Parser{tokens: tokens, sourceLines: strings.Split(rawSource, "\n")}
}

// Token sets reported in ParseError.Expected for multi-choice failures.
var (
	comparisonOps  = []TokenType{EQUALS, NOT_EQ, LESS, GREATER}
	statementStart = []TokenType{IDENTIFIER, IF, WHILE, PRINT}
	factorStart    = []TokenType{NUMBER, IDENTIFIER, LPAREN}
)

// errorAt builds a ParseError for tok, attaching the source line it appears
// on as a snippet.
func (p *Parser) errorAt(tok Token, expected []TokenType, format string, args ...any) *ParseError {
	msg := fmt.Sprintf(format, args...)
	snippet := ""
	if idx := tok.Line - 1; idx >= 0 && idx < len(p.sourceLines) {
		snippet = strings.TrimSpace(p.sourceLines[idx])
	}
	return &ParseError{Found: tok, Expected: expected, Msg: msg, Snippet: snippet}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns an error.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, p.errorAt(tok, []TokenType{tt}, "expected %s, got %s (%q)", tt, tok.Type, tok.Lexeme)
	}
	return tok, nil
}

// parseDeclaration parses  int a, b, c;
// The leading INT token is still at p.peek().
func (p *Parser) parseDeclaration() (Stmt, error) {
	p.advance() // int
	tok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	names := []string{tok.Lexeme}
	for p.peek().Type == COMMA {
		p.advance()
		tok, err := p.expect(IDENTIFIER)
		if err != nil {
			return nil, err
		}
		names = append(names, tok.Lexeme)
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &Declaration{Names: names}, nil
}

// parseAssignment parses  name = expression ;
// The IDENTIFIER is still at p.peek().
func (p *Parser) parseAssignment() (Stmt, error) {
	nameTok := p.advance()
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &Assignment{Name: nameTok.Lexeme, Value: value}, nil
}

// parsePrint parses  print ( expression ) ;  and the bare form  print name ;
// The leading PRINT token has already been consumed by parseStatement.
func (p *Parser) parsePrint() (Stmt, error) {
	if p.peek().Type == LPAREN {
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		if _, err := p.expect(SEMICOLON); err != nil {
			return nil, err
		}
		return &PrintStmt{Value: value}, nil
	}

	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &PrintStmt{Value: &VarRef{Name: nameTok.Lexeme}}, nil
}

// parseIf parses  if ( cond ) { then } [ else { else } ]
// The leading IF token has already been consumed by parseStatement.
func (p *Parser) parseIf() (Stmt, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseStmts []Stmt
	if p.peek().Type == ELSE {
		p.advance()
		elseStmts, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &IfStmt{Cond: cond, Then: then, Else: elseStmts}, nil
}

// parseWhile parses  while ( cond ) { body }
// The leading WHILE token has already been consumed by parseStatement.
func (p *Parser) parseWhile() (Stmt, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

// parseBlock parses  { statement* }
func (p *Parser) parseBlock() ([]Stmt, error) {
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}
	var stmts []Stmt
	for p.peek().Type != RBRACE && p.peek().Type != EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}
	return stmts, nil
}

// parseCondition parses  expression cmp expression  with exactly one
// comparison operator. Comparisons never nest inside arithmetic, so both
// operands are plain expressions.
func (p *Parser) parseCondition() (*Comparison, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	opTok := p.peek()
	switch opTok.Type {
	case EQUALS, NOT_EQ, LESS, GREATER:
		p.advance()
	default:
		return nil, p.errorAt(opTok, comparisonOps, "expected %s, got %s (%q)",
			expectedList(comparisonOps), opTok.Type, opTok.Lexeme)
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Comparison{Op: opTok.Type, Left: left, Right: right}, nil
}

// parseExpression handles + and -
func (p *Parser) parseExpression() (Expr, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		tt := p.peek().Type
		if tt != PLUS && tt != MINUS {
			break
		}
		op := p.advance().Type
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}

	return expr, nil
}

// parseTerm handles * and /
func (p *Parser) parseTerm() (Expr, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		tt := p.peek().Type
		if tt != STAR && tt != SLASH {
			break
		}
		op := p.advance().Type
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}

	return expr, nil
}

// parseFactor handles literals, variables, and parenthesised expressions.
func (p *Parser) parseFactor() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case NUMBER:
		p.advance()
		val, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errorAt(tok, nil, "integer %q out of 64-bit range", tok.Lexeme)
		}
		return &Literal{Value: val}, nil

	case IDENTIFIER:
		p.advance()
		return &VarRef{Name: tok.Lexeme}, nil

	case LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.errorAt(tok, factorStart, "expected expression, got %s (%q)", tok.Type, tok.Lexeme)
	}
}

// parseStatement dispatches on the current token.
func (p *Parser) parseStatement() (Stmt, error) {
	tok := p.peek()
	switch tok.Type {

	case IDENTIFIER:
		return p.parseAssignment()

	case IF:
		p.advance()
		return p.parseIf()

	case WHILE:
		p.advance()
		return p.parseWhile()

	case PRINT:
		p.advance()
		return p.parsePrint()

	case INT:
		return nil, p.errorAt(tok, nil, "declarations are only allowed at the top level")

	default:
		return nil, p.errorAt(tok, statementStart, "unexpected token %s (%q), expected a statement",
			tok.Type, tok.Lexeme)
	}
}

// Parse builds a Program from tokens. rawSource must be the text the tokens
// were lexed from; it is used only for error snippets.
func Parse(tokens []Token, rawSource string) (*Program, error) {
	p := NewParser(tokens, rawSource)
	var stmts []Stmt
	for p.peek().Type != EOF {
		var (
			stmt Stmt
			err  error
		)
		if p.peek().Type == INT {
			stmt, err = p.parseDeclaration()
		} else {
			stmt, err = p.parseStatement()
		}
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &Program{Stmts: stmts}, nil
}
