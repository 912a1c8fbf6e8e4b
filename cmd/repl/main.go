package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"minipython/pkg/interp"
)

const prompt = ">> "

func main() {
	fmt.Println("MiniPython. Finish a program with an empty line; Ctrl-D exits.")
	start(os.Stdin, os.Stdout)
}

// start reads one program per blank-line-terminated block and runs each
// through the full pipeline. Every block compiles fresh: no variables, no
// state of any kind carries over between submissions.
func start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var buf strings.Builder

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			buf.WriteString(line)
			buf.WriteByte('\n')
			fmt.Fprint(out, prompt)
			continue
		}
		if buf.Len() > 0 {
			runBuffer(buf.String(), out)
			buf.Reset()
		}
		fmt.Fprint(out, prompt)
	}

	// EOF with lines pending still runs them.
	if buf.Len() > 0 {
		runBuffer(buf.String(), out)
	}
}

func runBuffer(src string, out io.Writer) {
	if err := interp.Run(src, out); err != nil {
		fmt.Fprintln(out, report(err))
	}
}

// report prefixes an error with the pipeline phase that produced it.
func report(err error) string {
	switch err.(type) {
	case *interp.LexError:
		return "lex error: " + err.Error()
	case *interp.ParseError:
		return "parse error: " + err.Error()
	case *interp.SemanticError:
		return "semantic error: " + err.Error()
	case *interp.RuntimeError:
		return "runtime error: " + err.Error()
	}
	return err.Error()
}
