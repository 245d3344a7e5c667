package ast

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Print displays a human-readable representation of a forest
func Print(a *Arena, roots ...Ref) {
	Fprint(os.Stdout, a, roots...)
}

// Fprint writes a human-readable representation of a forest to w, one node
// per line.
func Fprint(w io.Writer, a *Arena, roots ...Ref) {
	for _, ref := range roots {
		printLevel(w, a, ref, 0)
	}
}

func printLevel(w io.Writer, a *Arena, ref Ref, level int) {
	n := a.Node(ref)
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())

	switch n.Type() {
	case NodeTypeList, NodeTypeQuote:
		fmt.Fprintf(w, "[%d %d:%d]\n", n.Line(), n.span.Start, n.span.End)
		for _, child := range a.Children(ref) {
			printLevel(w, a, child, level+1)
		}

	case NodeTypeNumber, NodeTypeString, NodeTypeIdent:
		fmt.Fprintf(w, "%#v [%d %d:%d]\n", n.Value(), n.Line(), n.span.Start, n.span.End)

	default:
		panic("unknown node type")
	}
}

// Encode transforms a forest into its canonical text representation, roots
// separated by a space.
func Encode(a *Arena, roots ...Ref) []byte {
	nodes := make([]string, 0, len(roots))
	for _, ref := range roots {
		nodes = append(nodes, encodeNode(a, ref))
	}
	return []byte(strings.Join(nodes, " "))
}

func encodeNode(a *Arena, ref Ref) string {
	n := a.Node(ref)

	switch n.Type() {
	case NodeTypeList:
		children := a.Children(ref)
		nodes := make([]string, 0, len(children))
		for _, child := range children {
			nodes = append(nodes, encodeNode(a, child))
		}
		return "(" + strings.Join(nodes, " ") + ")"

	case NodeTypeQuote:
		return "'" + encodeNode(a, a.Child(ref, 0))

	case NodeTypeNumber:
		return strconv.FormatFloat(n.num, 'g', -1, 64)

	case NodeTypeString:
		return strconv.Quote(n.text)

	case NodeTypeIdent:
		return n.text

	default:
		panic("unknown node type")
	}
}
