package interp

import (
	"fmt"
	"io"
)

// Execute runs a validated program: it builds a zero-initialized environment
// from syms and walks prog, writing one decimal line to out per executed
// print statement. prog and syms must belong together (syms from Analyze on
// prog); a mismatch surfaces as a RuntimeError with Kind InvariantViolation.
func Execute(prog *Program, syms *SymbolTable, out io.Writer) error {
	ev := &evaluator{env: NewEnvironment(syms), out: out}
	return ev.execStmts(prog.Stmts)
}

// evaluator walks the AST directly. There is no iteration cap: a while loop
// whose condition never turns false runs forever, and terminating it is the
// caller's responsibility.
type evaluator struct {
	env *Environment
	out io.Writer
}

func (ev *evaluator) execStmts(stmts []Stmt) error {
	for _, s := range stmts {
		if err := ev.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (ev *evaluator) execStmt(s Stmt) error {
	switch n := s.(type) {

	case *Declaration:
		// Slots were allocated by NewEnvironment; nothing runs here.
		return nil

	case *Assignment:
		v, err := ev.evalExpr(n.Value)
		if err != nil {
			return err
		}
		if !ev.env.Set(n.Name, v) {
			return &RuntimeError{Kind: InvariantViolation, Name: n.Name}
		}

	case *PrintStmt:
		v, err := ev.evalExpr(n.Value)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(ev.out, "%d\n", v); err != nil {
			return err
		}

	case *IfStmt:
		ok, err := ev.evalCond(n.Cond)
		if err != nil {
			return err
		}
		if ok {
			return ev.execStmts(n.Then)
		}
		return ev.execStmts(n.Else)

	case *WhileStmt:
		for {
			ok, err := ev.evalCond(n.Cond)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := ev.execStmts(n.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

func (ev *evaluator) evalExpr(e Expr) (int64, error) {
	switch n := e.(type) {

	case *Literal:
		return n.Value, nil

	case *VarRef:
		v, ok := ev.env.Get(n.Name)
		if !ok {
			return 0, &RuntimeError{Kind: InvariantViolation, Name: n.Name}
		}
		return v, nil

	case *BinaryExpr:
		l, err := ev.evalExpr(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := ev.evalExpr(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case PLUS:
			return l + r, nil
		case MINUS:
			return l - r, nil
		case STAR:
			return l * r, nil
		case SLASH:
			// Division by zero evaluates to 0. This is language semantics,
			// not an error path.
			if r == 0 {
				return 0, nil
			}
			return l / r, nil
		}
	}
	return 0, fmt.Errorf("eval: unsupported expression %T", e)
}

func (ev *evaluator) evalCond(c *Comparison) (bool, error) {
	l, err := ev.evalExpr(c.Left)
	if err != nil {
		return false, err
	}
	r, err := ev.evalExpr(c.Right)
	if err != nil {
		return false, err
	}
	switch c.Op {
	case EQUALS:
		return l == r, nil
	case NOT_EQ:
		return l != r, nil
	case LESS:
		return l < r, nil
	case GREATER:
		return l > r, nil
	}
	return false, fmt.Errorf("eval: unsupported comparison operator %s", c.Op)
}
