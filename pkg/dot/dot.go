// Package dot renders a BDD as a Graphviz .dot graph.
package dot

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/biodivine/bnscc/pkg/bdd"
)

// Print writes b to w as a .dot graph. Nodes are emitted in strictly
// decreasing index order (root first); non-terminal node i is labelled
// names[b[i].Var], with a solid edge to its high child and a dotted edge
// to its low child. When zeroPruned is true, the "0" terminal line and any
// edge targeting node 0 are omitted.
func Print(w io.Writer, b bdd.BDD, names []string, zeroPruned bool) error {
	if _, err := io.WriteString(w, "digraph G {\n"); err != nil {
		return wrapWriteErr(err)
	}
	if _, err := io.WriteString(w, "init__ [label=\"\", style=invis, height=0, width=0];\n"); err != nil {
		return wrapWriteErr(err)
	}
	if _, err := fmt.Fprintf(w, "init__ -> %d;\n", b.LastIndex()); err != nil {
		return wrapWriteErr(err)
	}

	for i := b.Size() - 1; i >= 2; i-- {
		node := b[i]
		if _, err := fmt.Fprintf(w, "%d[label=\"%s\"];\n", i, names[node.Var]); err != nil {
			return wrapWriteErr(err)
		}
		if !zeroPruned || node.High != 0 {
			if _, err := fmt.Fprintf(w, "%d -> %d [style=filled];\n", i, node.High); err != nil {
				return wrapWriteErr(err)
			}
		}
		if !zeroPruned || node.Low != 0 {
			if _, err := fmt.Fprintf(w, "%d -> %d [style=dotted];\n", i, node.Low); err != nil {
				return wrapWriteErr(err)
			}
		}
	}

	if !zeroPruned {
		if _, err := io.WriteString(w, "0 [shape=box, label=\"0\", style=filled, shape=box, height=0.3, width=0.3];\n"); err != nil {
			return wrapWriteErr(err)
		}
	}
	if _, err := io.WriteString(w, "1 [shape=box, label=\"1\", style=filled, shape=box, height=0.3, width=0.3];\n"); err != nil {
		return wrapWriteErr(err)
	}
	if _, err := io.WriteString(w, "}\n"); err != nil {
		return wrapWriteErr(err)
	}
	return nil
}

func wrapWriteErr(err error) error {
	return errors.Wrap(err, "bnscc/dot: write failed")
}
