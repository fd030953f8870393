package weft

import (
	"fmt"
	"io"
)

// Dot outputs the arena's relation web in Graphviz DOT format (for
// debugging purposes). Tree edges are drawn solid, chain edges dashed.
func (a *Arena[T]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		ref := Ref{index: uint32(i) + 1, gen: s.gen}
		label := fmt.Sprintf("%v\\n%v", ref, s.node.payload)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", ref.index, label,
			nodeDotStyles(len(s.node.children) == 0))
		for _, c := range s.node.children {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ref.index, c.index)
		}
		if !s.node.next.IsAbsent() {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed,constraint=false];\n",
				ref.index, s.node.next.index)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}
