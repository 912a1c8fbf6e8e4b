package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateTAC walks prog and renders it as a three-address-code listing, one
// instruction per line:
//
//	DECLARE x            per declared name
//	t1 = a + b           expressions flattened into numbered temporaries
//	x = t1               assignment
//	PRINT t1             print
//	t2 = i < n           comparison feeding a branch
//	IFZ t2 GOTO L0       branch when the comparison is false (0)
//	GOTO L1 / L0:        jumps and labels laying out if/else/while
//
// The listing is a diagnostic by-product: nothing consumes it, and Execute
// never looks at it. Output is deterministic for a given AST; temporary and
// label counters start fresh on every call.
func GenerateTAC(prog *Program) string {
	g := &tacGen{}
	for _, s := range prog.Stmts {
		g.genStmt(s)
	}
	return g.out.String()
}

// tacGen carries the listing under construction and the counters.
type tacGen struct {
	out       strings.Builder
	nextTemp  int
	nextLabel int
}

// newTemp returns t1, t2, ...
func (g *tacGen) newTemp() string {
	g.nextTemp++
	return fmt.Sprintf("t%d", g.nextTemp)
}

// newLabel returns L0, L1, ...
func (g *tacGen) newLabel() string {
	l := fmt.Sprintf("L%d", g.nextLabel)
	g.nextLabel++
	return l
}

func (g *tacGen) line(format string, args ...any) {
	fmt.Fprintf(&g.out, format+"\n", args...)
}

func (g *tacGen) genStmts(stmts []Stmt) {
	for _, s := range stmts {
		g.genStmt(s)
	}
}

func (g *tacGen) genStmt(s Stmt) {
	switch n := s.(type) {

	case *Declaration:
		for _, name := range n.Names {
			g.line("DECLARE %s", name)
		}

	case *Assignment:
		operand := g.genExpr(n.Value)
		g.line("%s = %s", n.Name, operand)

	case *PrintStmt:
		operand := g.genExpr(n.Value)
		g.line("PRINT %s", operand)

	case *IfStmt:
		cond := g.genCond(n.Cond)
		falseLabel := g.newLabel()
		g.line("IFZ %s GOTO %s", cond, falseLabel)
		g.genStmts(n.Then)
		if n.Else != nil {
			endLabel := g.newLabel()
			g.line("GOTO %s", endLabel)
			g.line("%s:", falseLabel)
			g.genStmts(n.Else)
			g.line("%s:", endLabel)
		} else {
			g.line("%s:", falseLabel)
		}

	case *WhileStmt:
		startLabel := g.newLabel()
		endLabel := g.newLabel()
		g.line("%s:", startLabel)
		cond := g.genCond(n.Cond)
		g.line("IFZ %s GOTO %s", cond, endLabel)
		g.genStmts(n.Body)
		g.line("GOTO %s", startLabel)
		g.line("%s:", endLabel)
	}
}

// genExpr emits the instructions computing e and returns the operand holding
// its value: a literal, a variable name, or a fresh temporary.
func (g *tacGen) genExpr(e Expr) string {
	switch n := e.(type) {

	case *Literal:
		return strconv.FormatInt(n.Value, 10)

	case *VarRef:
		return n.Name

	case *BinaryExpr:
		left := g.genExpr(n.Left)
		right := g.genExpr(n.Right)
		t := g.newTemp()
		g.line("%s = %s %s %s", t, left, opText(n.Op), right)
		return t
	}
	return "?"
}

// genCond emits the comparison and returns the temporary holding its result
// (1 when true, 0 when false), ready for an IFZ branch.
func (g *tacGen) genCond(c *Comparison) string {
	left := g.genExpr(c.Left)
	right := g.genExpr(c.Right)
	t := g.newTemp()
	g.line("%s = %s %s %s", t, left, opText(c.Op), right)
	return t
}
