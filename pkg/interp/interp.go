// Package interp implements the MiniPython front end and its tree-walking
// interpreter.
//
// Pipeline: source -> Lex -> Parse -> Analyze -> Execute
//
// Each phase returns its own error type (LexError, ParseError, SemanticError,
// RuntimeError) and the pipeline stops at the first failure. The package
// never writes diagnostics itself; front ends decide how to report errors.
package interp

import "io"

// Compile runs the front half of the pipeline: lex, parse, analyze. On
// success the returned program is valid, and the symbol table holds every
// declared name.
func Compile(src string) (*Program, *SymbolTable, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, nil, err
	}

	prog, err := Parse(tokens, src)
	if err != nil {
		return nil, nil, err
	}

	syms, err := Analyze(prog)
	if err != nil {
		return nil, nil, err
	}

	return prog, syms, nil
}

// Run compiles src and executes it, streaming print output to out.
func Run(src string, out io.Writer) error {
	prog, syms, err := Compile(src)
	if err != nil {
		return err
	}
	return Execute(prog, syms, out)
}
