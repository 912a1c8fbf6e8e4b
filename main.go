package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"minipython/pkg/interp"
	"minipython/pkg/treeview"
)

// options selects the per-phase dumps requested on the command line.
type options struct {
	tokens  bool
	ast     bool
	tree    bool
	symbols bool
	tac     bool
	noRun   bool
	dotPath string
}

func main() {
	var opts options
	flag.BoolVar(&opts.tokens, "tokens", false, "print the token stream")
	flag.BoolVar(&opts.ast, "ast", false, "print the parsed statements")
	flag.BoolVar(&opts.tree, "tree", false, "print the AST as an indented tree")
	flag.BoolVar(&opts.symbols, "symbols", false, "print the symbol table")
	flag.BoolVar(&opts.tac, "tac", false, "print the three-address-code listing")
	flag.StringVar(&opts.dotPath, "dot", "", "write a Graphviz DOT export of the AST to `file`")
	flag.BoolVar(&opts.noRun, "norun", false, "stop after semantic analysis without executing")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "at most one source file; pass none to read from stdin")
		flag.Usage()
		os.Exit(2)
	}

	src, err := readSource(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read source: %v\n", err)
		os.Exit(1)
	}

	if err := pipeline(src, opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// pipeline runs src through lex, parse, analyze and execute, writing the
// requested dumps and the program's print output to out. The returned error
// carries the prefix of the phase that produced it. The tree and DOT views
// are emitted only for programs that pass semantic analysis.
func pipeline(src string, opts options, out io.Writer) error {
	// Lex
	tokens, err := interp.Lex(src)
	if err != nil {
		return fmt.Errorf("lex error: %v", err)
	}
	if opts.tokens {
		fmt.Fprintf(out, "Tokens (%d)\n", len(tokens))
		for _, tok := range tokens {
			fmt.Fprintln(out, " ", tok)
		}
		fmt.Fprintln(out)
	}

	// Parse
	prog, err := interp.Parse(tokens, src)
	if err != nil {
		return fmt.Errorf("parse error: %v", err)
	}
	if opts.ast {
		fmt.Fprintln(out, "AST")
		for _, s := range prog.Stmts {
			fmt.Fprintln(out, " ", s)
		}
		fmt.Fprintln(out)
	}

	// Analyze
	syms, err := interp.Analyze(prog)
	if err != nil {
		return fmt.Errorf("semantic error: %v", err)
	}
	if opts.tree {
		treeview.Render(out, prog)
		fmt.Fprintln(out)
	}
	if opts.dotPath != "" {
		if err := writeDotFile(opts.dotPath, prog); err != nil {
			return fmt.Errorf("failed to write DOT file %q: %v", opts.dotPath, err)
		}
	}
	if opts.symbols {
		fmt.Fprint(out, syms)
		fmt.Fprintln(out)
	}
	if opts.tac {
		fmt.Fprintln(out, "TAC")
		fmt.Fprint(out, interp.GenerateTAC(prog))
		fmt.Fprintln(out)
	}

	if opts.noRun {
		return nil
	}

	// Execute
	if err := interp.Execute(prog, syms, out); err != nil {
		return fmt.Errorf("runtime error: %v", err)
	}
	return nil
}

// readSource loads the program: from path when given, otherwise from stdin.
func readSource(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func writeDotFile(path string, prog *interp.Program) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	treeview.WriteDot(f, prog)
	return f.Close()
}
