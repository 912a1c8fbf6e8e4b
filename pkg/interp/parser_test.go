package interp

import (
	"reflect"
	"testing"
)

// parseSource lexes and parses, failing the test on either error.
func parseSource(t *testing.T, src string) *Program {
	t.Helper()
	tokens, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	prog, err := Parse(tokens, src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return prog
}

// TestParse verifies that Parse produces the correct AST for valid inputs.
func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *Program
	}{
		{
			name:  "Declaration",
			input: "int x;",
			expected: &Program{Stmts: []Stmt{
				&Declaration{Names: []string{"x"}},
			}},
		},
		{
			name:  "Declaration With Multiple Names",
			input: "int a, b, c;",
			expected: &Program{Stmts: []Stmt{
				&Declaration{Names: []string{"a", "b", "c"}},
			}},
		},
		{
			name:  "Assignment",
			input: "x = 5;",
			expected: &Program{Stmts: []Stmt{
				&Assignment{Name: "x", Value: &Literal{Value: 5}},
			}},
		},
		{
			name:  "Print Expression",
			input: "print(y + 2);",
			expected: &Program{Stmts: []Stmt{
				&PrintStmt{Value: &BinaryExpr{
					Op:    PLUS,
					Left:  &VarRef{Name: "y"},
					Right: &Literal{Value: 2},
				}},
			}},
		},
		{
			name:  "Print Bare Name",
			input: "print y;",
			expected: &Program{Stmts: []Stmt{
				&PrintStmt{Value: &VarRef{Name: "y"}},
			}},
		},
		{
			name:  "If Statement",
			input: "if (x == 1) { x = 2; }",
			expected: &Program{Stmts: []Stmt{
				&IfStmt{
					Cond: &Comparison{
						Op:    EQUALS,
						Left:  &VarRef{Name: "x"},
						Right: &Literal{Value: 1},
					},
					Then: []Stmt{
						&Assignment{Name: "x", Value: &Literal{Value: 2}},
					},
				},
			}},
		},
		{
			name:  "If-Else Statement",
			input: "if (x != 0) { y = 1; } else { y = 2; }",
			expected: &Program{Stmts: []Stmt{
				&IfStmt{
					Cond: &Comparison{
						Op:    NOT_EQ,
						Left:  &VarRef{Name: "x"},
						Right: &Literal{Value: 0},
					},
					Then: []Stmt{
						&Assignment{Name: "y", Value: &Literal{Value: 1}},
					},
					Else: []Stmt{
						&Assignment{Name: "y", Value: &Literal{Value: 2}},
					},
				},
			}},
		},
		{
			name:  "Empty Blocks",
			input: "if (x > 0) { } else { }",
			expected: &Program{Stmts: []Stmt{
				&IfStmt{
					Cond: &Comparison{
						Op:    GREATER,
						Left:  &VarRef{Name: "x"},
						Right: &Literal{Value: 0},
					},
					Then: nil,
					Else: nil,
				},
			}},
		},
		{
			name:  "While Loop",
			input: "while (i < 3) { print(i); i = i + 1; }",
			expected: &Program{Stmts: []Stmt{
				&WhileStmt{
					Cond: &Comparison{
						Op:    LESS,
						Left:  &VarRef{Name: "i"},
						Right: &Literal{Value: 3},
					},
					Body: []Stmt{
						&PrintStmt{Value: &VarRef{Name: "i"}},
						&Assignment{Name: "i", Value: &BinaryExpr{
							Op:    PLUS,
							Left:  &VarRef{Name: "i"},
							Right: &Literal{Value: 1},
						}},
					},
				},
			}},
		},
		{
			name:  "Operator Precedence: Mul vs Add",
			input: "x = 1 + 2 * 3;",
			expected: &Program{Stmts: []Stmt{
				&Assignment{
					Name: "x",
					Value: &BinaryExpr{
						Op:   PLUS,
						Left: &Literal{Value: 1},
						Right: &BinaryExpr{
							Op:    STAR,
							Left:  &Literal{Value: 2},
							Right: &Literal{Value: 3},
						},
					},
				},
			}},
		},
		{
			name:  "Parentheses Override Precedence",
			input: "x = (1 + 2) * 3;",
			expected: &Program{Stmts: []Stmt{
				&Assignment{
					Name: "x",
					Value: &BinaryExpr{
						Op: STAR,
						Left: &BinaryExpr{
							Op:    PLUS,
							Left:  &Literal{Value: 1},
							Right: &Literal{Value: 2},
						},
						Right: &Literal{Value: 3},
					},
				},
			}},
		},
		{
			name:  "Left Associativity",
			input: "x = 1 - 2 - 3;",
			expected: &Program{Stmts: []Stmt{
				&Assignment{
					Name: "x",
					Value: &BinaryExpr{
						Op: MINUS,
						Left: &BinaryExpr{
							Op:    MINUS,
							Left:  &Literal{Value: 1},
							Right: &Literal{Value: 2},
						},
						Right: &Literal{Value: 3},
					},
				},
			}},
		},
		{
			name:  "Deeply Nested Parentheses",
			input: "x = (((1 + 2)));",
			expected: &Program{Stmts: []Stmt{
				&Assignment{
					Name: "x",
					Value: &BinaryExpr{
						Op:    PLUS,
						Left:  &Literal{Value: 1},
						Right: &Literal{Value: 2},
					},
				},
			}},
		},
		{
			name:  "Nested If Inside While",
			input: "while (n > 0) { if (n == 1) { print(n); } n = n - 1; }",
			expected: &Program{Stmts: []Stmt{
				&WhileStmt{
					Cond: &Comparison{
						Op:    GREATER,
						Left:  &VarRef{Name: "n"},
						Right: &Literal{Value: 0},
					},
					Body: []Stmt{
						&IfStmt{
							Cond: &Comparison{
								Op:    EQUALS,
								Left:  &VarRef{Name: "n"},
								Right: &Literal{Value: 1},
							},
							Then: []Stmt{
								&PrintStmt{Value: &VarRef{Name: "n"}},
							},
						},
						&Assignment{Name: "n", Value: &BinaryExpr{
							Op:    MINUS,
							Left:  &VarRef{Name: "n"},
							Right: &Literal{Value: 1},
						}},
					},
				},
			}},
		},
		{
			name:  "Full Program",
			input: "int x, y;\nx = 5;\ny = x + 2;\nprint(y);\n",
			expected: &Program{Stmts: []Stmt{
				&Declaration{Names: []string{"x", "y"}},
				&Assignment{Name: "x", Value: &Literal{Value: 5}},
				&Assignment{Name: "y", Value: &BinaryExpr{
					Op:    PLUS,
					Left:  &VarRef{Name: "x"},
					Right: &Literal{Value: 2},
				}},
				&PrintStmt{Value: &VarRef{Name: "y"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parseSource(t, tt.input)
			if !reflect.DeepEqual(prog, tt.expected) {
				t.Errorf("Parse mismatch:\nGot:      %v\nExpected: %v", prog.Stmts, tt.expected.Stmts)
			}
		})
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Missing Semicolon", "x = 10"},
		{"Missing Close Paren", "print(x;"},
		{"Bare Expression As Condition", "if (x) { }"},
		{"Arithmetic As Condition", "if (x + 1) { }"},
		{"Chained Comparison", "if (a < b < c) { }"},
		{"Declaration Inside Block", "if (x == 1) { int y; }"},
		{"Declaration Inside Loop", "while (x < 1) { int y; }"},
		{"Missing Assign", "x 5;"},
		{"Missing Value", "x = ;"},
		{"Dangling Operator", "x = 1 +;"},
		{"Declaration Without Name", "int ;"},
		{"Trailing Comma In Declaration", "int a, ;"},
		{"Unclosed Brace", "while (x < 1) { x = 1;"},
		{"Else Without If", "else { x = 1; }"},
		{"If Missing Parens", "if x == 1 { }"},
		{"Comparison Outside Condition", "x = a < b;"},
		{"Literal Out Of Range", "x = 99999999999999999999;"},
		{"Bare Print Without Name", "print;"},
		{"Slash Slash Is Not A Comment", "x = 1; // not a comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("Lex failed unexpectedly: %v", err)
			}

			_, err = Parse(tokens, tt.input)
			if err == nil {
				t.Errorf("Expected parse error for input: %q, but got none", tt.input)
			}
		})
	}
}

// TestParseErrorFields pins the structured contents of a ParseError.
func TestParseErrorFields(t *testing.T) {
	src := "x = 10"
	tokens, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	_, err = Parse(tokens, src)
	if err == nil {
		t.Fatal("expected a parse error, got none")
	}
	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Found.Type != EOF {
		t.Errorf("Found.Type = %s, want EOF", parseErr.Found.Type)
	}
	if !reflect.DeepEqual(parseErr.Expected, []TokenType{SEMICOLON}) {
		t.Errorf("Expected = %v, want [SEMICOLON]", parseErr.Expected)
	}
}
