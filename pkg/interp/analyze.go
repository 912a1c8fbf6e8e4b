package interp

// Analyze checks the declaration rules over a parsed program and builds its
// symbol table: every name is declared exactly once, and every assignment
// target and variable read refers to a declared name. The walk is a single
// forward pass in source order, so a use on line 3 of a name declared on
// line 5 fails even though the declaration exists.
//
// Analyze never mutates prog; calling it twice yields equal tables.
func Analyze(prog *Program) (*SymbolTable, error) {
	syms := NewSymbolTable()
	if err := analyzeStmts(prog.Stmts, syms); err != nil {
		return nil, err
	}
	return syms, nil
}

func analyzeStmts(stmts []Stmt, syms *SymbolTable) error {
	for _, s := range stmts {
		if err := analyzeStmt(s, syms); err != nil {
			return err
		}
	}
	return nil
}

func analyzeStmt(s Stmt, syms *SymbolTable) error {
	switch n := s.(type) {

	case *Declaration:
		// A name duplicated within one declaration ("int x, x;") fails on
		// the second insert, same as two separate declarations.
		for _, name := range n.Names {
			if !syms.Declare(name, TypeInt) {
				return &SemanticError{Kind: Redeclared, Name: name}
			}
		}

	case *Assignment:
		if !syms.IsDeclared(n.Name) {
			return &SemanticError{Kind: UndeclaredVariable, Name: n.Name}
		}
		return analyzeExpr(n.Value, syms)

	case *PrintStmt:
		return analyzeExpr(n.Value, syms)

	case *IfStmt:
		if err := analyzeCond(n.Cond, syms); err != nil {
			return err
		}
		if err := analyzeStmts(n.Then, syms); err != nil {
			return err
		}
		return analyzeStmts(n.Else, syms)

	case *WhileStmt:
		if err := analyzeCond(n.Cond, syms); err != nil {
			return err
		}
		return analyzeStmts(n.Body, syms)
	}
	return nil
}

func analyzeCond(c *Comparison, syms *SymbolTable) error {
	if err := analyzeExpr(c.Left, syms); err != nil {
		return err
	}
	return analyzeExpr(c.Right, syms)
}

func analyzeExpr(e Expr, syms *SymbolTable) error {
	switch n := e.(type) {

	case *Literal:
		return nil

	case *VarRef:
		if !syms.IsDeclared(n.Name) {
			return &SemanticError{Kind: UndeclaredVariable, Name: n.Name}
		}

	case *BinaryExpr:
		if err := analyzeExpr(n.Left, syms); err != nil {
			return err
		}
		return analyzeExpr(n.Right, syms)
	}
	return nil
}
