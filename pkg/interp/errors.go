package interp

import (
	"fmt"
	"strings"
)

// Each pipeline phase fails with its own error type so that callers can
// branch on the kind of failure without matching message text. The pipeline
// is fail-fast: the first error aborts the phase and nothing downstream runs.

// LexError reports a character outside the token set.
type LexError struct {
	Line int
	Col  int
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d, col %d: unexpected character %q", e.Line, e.Col, e.Char)
}

// ParseError reports a token sequence outside the grammar. Expected lists the
// token types the parser would have accepted at that point; it is empty when
// the failure is not a single-token mismatch (e.g. an out-of-range literal).
type ParseError struct {
	Found    Token
	Expected []TokenType
	Msg      string
	Snippet  string // trimmed source line containing Found
}

func (e *ParseError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("line %d: %s", e.Found.Line, e.Msg)
	}
	return fmt.Sprintf("line %d: %s\n  |> %s", e.Found.Line, e.Msg, e.Snippet)
}

// SemanticKind tags the declaration rule an analyzed program broke.
type SemanticKind int

const (
	Redeclared         SemanticKind = iota // name declared more than once
	UndeclaredVariable                     // name assigned or read without a declaration
)

var semanticKindNames = [...]string{
	Redeclared:         "Redeclared",
	UndeclaredVariable: "UndeclaredVariable",
}

func (k SemanticKind) String() string {
	if int(k) >= 0 && int(k) < len(semanticKindNames) {
		return semanticKindNames[k]
	}
	return fmt.Sprintf("SemanticKind(%d)", int(k))
}

// SemanticError reports a declaration-rule violation found by Analyze.
type SemanticError struct {
	Kind SemanticKind
	Name string
}

func (e *SemanticError) Error() string {
	switch e.Kind {
	case Redeclared:
		return fmt.Sprintf("variable %q redeclared", e.Name)
	case UndeclaredVariable:
		return fmt.Sprintf("variable %q used before declaration", e.Name)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Name)
}

// RuntimeKind tags an evaluation failure.
type RuntimeKind int

// InvariantViolation means the evaluator met a name the analyzer never
// declared. A validated program cannot trigger it; seeing one means Execute
// was handed a symbol table that does not belong to the program.
const InvariantViolation RuntimeKind = iota

func (k RuntimeKind) String() string {
	if k == InvariantViolation {
		return "InvariantViolation"
	}
	return fmt.Sprintf("RuntimeKind(%d)", int(k))
}

// RuntimeError reports a failure during evaluation.
type RuntimeError struct {
	Kind RuntimeKind
	Name string // the variable involved
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("invariant violation: variable %q has no environment entry", e.Name)
}

// expectedList renders a ParseError's Expected set for messages.
func expectedList(tts []TokenType) string {
	names := make([]string, len(tts))
	for i, tt := range tts {
		names[i] = tt.String()
	}
	return strings.Join(names, " or ")
}
