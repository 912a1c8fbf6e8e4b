// Package treeview renders ASTs for humans: an indented console tree and a
// Graphviz DOT export. It consumes only the Label/Children contract, so it
// works on any node without knowing the node set.
package treeview

import (
	"fmt"
	"io"

	"minipython/pkg/interp"
)

// Render writes one label per line, children indented beneath their parent
// with box-drawing connectors, in declaration order.
func Render(w io.Writer, n interp.Node) {
	fmt.Fprintln(w, n.Label())
	children := n.Children()
	for i, c := range children {
		renderChild(w, c, "", i == len(children)-1)
	}
}

func renderChild(w io.Writer, n interp.Node, prefix string, last bool) {
	connector, childPrefix := "├── ", prefix+"│   "
	if last {
		connector, childPrefix = "└── ", prefix+"    "
	}
	fmt.Fprintf(w, "%s%s%s\n", prefix, connector, n.Label())
	children := n.Children()
	for i, c := range children {
		renderChild(w, c, childPrefix, i == len(children)-1)
	}
}

// WriteDot writes the tree as a digraph: one node statement per AST node with
// IDs assigned in preorder, then one edge statement per parent/child pair.
// The output feeds Graphviz directly (dot -Tpng).
func WriteDot(w io.Writer, n interp.Node) {
	var (
		labels []string
		edges  [][2]int
	)
	var walk func(n interp.Node)
	walk = func(n interp.Node) {
		id := len(labels)
		labels = append(labels, n.Label())
		for _, c := range n.Children() {
			// The child takes the next preorder ID.
			edges = append(edges, [2]int{id, len(labels)})
			walk(c)
		}
	}
	walk(n)

	fmt.Fprintln(w, "digraph ast {")
	for i, label := range labels {
		fmt.Fprintf(w, "\tn%d [label=%q];\n", i, label)
	}
	for _, e := range edges {
		fmt.Fprintf(w, "\tn%d -> n%d;\n", e[0], e[1])
	}
	fmt.Fprintln(w, "}")
}
