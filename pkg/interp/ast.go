package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is implemented by every AST node. Label and Children form the
// read-only contract that tree renderers and exporters consume; neither
// the analyzer nor the evaluator uses them.
type Node interface {
	// Label is the short display name of the node ("=", "print", "while", ...).
	Label() string
	// Children returns the ordered child nodes.
	Children() []Node
	String() string
}

// Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Literal is an integer constant.
//
//	x = 10;
//	    ^^  Literal{Value: 10}
type Literal struct {
	Value int64
}

func (*Literal) exprNode()          {}
func (l *Literal) Label() string    { return strconv.FormatInt(l.Value, 10) }
func (l *Literal) Children() []Node { return nil }
func (l *Literal) String() string   { return strconv.FormatInt(l.Value, 10) }

// VarRef is a read of a named variable.
//
//	print(x);
//	      ^  VarRef{Name: "x"}
type VarRef struct {
	Name string
}

func (*VarRef) exprNode()          {}
func (v *VarRef) Label() string    { return v.Name }
func (v *VarRef) Children() []Node { return nil }
func (v *VarRef) String() string   { return v.Name }

// BinaryExpr represents an arithmetic operation: Left Op Right.
// Op is one of PLUS, MINUS, STAR, SLASH.
//
//	x + 1
//	^ ^ ^
//	| | |
//	| | Right
//	| Op
//	Left
type BinaryExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode()          {}
func (b *BinaryExpr) Label() string    { return opText(b.Op) }
func (b *BinaryExpr) Children() []Node { return []Node{b.Left, b.Right} }
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, opText(b.Op), b.Right)
}

// Comparison represents Left Op Right with Op one of EQUALS, NOT_EQ, LESS,
// GREATER. It is separate from BinaryExpr because it never nests inside
// arithmetic: a comparison appears only as the condition of an if or while.
type Comparison struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (*Comparison) exprNode()          {}
func (c *Comparison) Label() string    { return opText(c.Op) }
func (c *Comparison) Children() []Node { return []Node{c.Left, c.Right} }
func (c *Comparison) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Left, opText(c.Op), c.Right)
}

// opText returns the source spelling of an operator token.
func opText(tt TokenType) string {
	switch tt {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case EQUALS:
		return "=="
	case NOT_EQ:
		return "!="
	case LESS:
		return "<"
	case GREATER:
		return ">"
	}
	return tt.String()
}

// Statement nodes

// Stmt is implemented by every node that does not produce a value.
type Stmt interface {
	Node
	stmtNode()
}

// Declaration represents  int a, b, c;
// Declarations are only valid at the top level of a program.
type Declaration struct {
	Names []string
}

func (*Declaration) stmtNode()       {}
func (d *Declaration) Label() string { return "int" }
func (d *Declaration) Children() []Node {
	kids := make([]Node, len(d.Names))
	for i, n := range d.Names {
		kids[i] = &VarRef{Name: n}
	}
	return kids
}
func (d *Declaration) String() string {
	return fmt.Sprintf("Declaration(int %s)", strings.Join(d.Names, ", "))
}

// Assignment represents  Name = Value;
type Assignment struct {
	Name  string
	Value Expr
}

func (*Assignment) stmtNode()       {}
func (a *Assignment) Label() string { return "=" }
func (a *Assignment) Children() []Node {
	return []Node{&VarRef{Name: a.Name}, a.Value}
}
func (a *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s = %s)", a.Name, a.Value)
}

// PrintStmt represents  print(expr);  or the bare form  print name;
type PrintStmt struct {
	Value Expr
}

func (*PrintStmt) stmtNode()          {}
func (p *PrintStmt) Label() string    { return "print" }
func (p *PrintStmt) Children() []Node { return []Node{p.Value} }
func (p *PrintStmt) String() string {
	return fmt.Sprintf("PrintStmt(%s)", p.Value)
}

// IfStmt represents  if (cond) { then } [else { else }]
// Children are ordered condition, then branch, else branch.
type IfStmt struct {
	Cond *Comparison
	Then []Stmt
	Else []Stmt // nil when no else clause
}

func (*IfStmt) stmtNode()       {}
func (i *IfStmt) Label() string { return "if" }
func (i *IfStmt) Children() []Node {
	kids := []Node{i.Cond}
	for _, s := range i.Then {
		kids = append(kids, s)
	}
	for _, s := range i.Else {
		kids = append(kids, s)
	}
	return kids
}
func (i *IfStmt) String() string {
	if i.Else != nil {
		return fmt.Sprintf("IfStmt(if %s then %v else %v)", i.Cond, i.Then, i.Else)
	}
	return fmt.Sprintf("IfStmt(if %s then %v)", i.Cond, i.Then)
}

// WhileStmt represents  while (cond) { body }
type WhileStmt struct {
	Cond *Comparison
	Body []Stmt
}

func (*WhileStmt) stmtNode()       {}
func (w *WhileStmt) Label() string { return "while" }
func (w *WhileStmt) Children() []Node {
	kids := []Node{w.Cond}
	for _, s := range w.Body {
		kids = append(kids, s)
	}
	return kids
}
func (w *WhileStmt) String() string {
	return fmt.Sprintf("WhileStmt(while %s do %v)", w.Cond, w.Body)
}

// Program is the root node: the ordered top-level declarations and statements.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Label() string { return "program" }
func (p *Program) Children() []Node {
	kids := make([]Node, len(p.Stmts))
	for i, s := range p.Stmts {
		kids[i] = s
	}
	return kids
}
func (p *Program) String() string {
	return fmt.Sprintf("Program(len=%d)", len(p.Stmts))
}
