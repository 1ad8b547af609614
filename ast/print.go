package ast

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	printLevel(n, 0)
}

func printLevel(n *Node, level int) {
	if n == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Printf("%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeBinary:
		fmt.Printf("%c (%v)\n", n.Op(), n.Token())
		printLevel(n.Left(), level+1)
		printLevel(n.Right(), level+1)

	case NodeTypeInt:
		fmt.Printf("%d (%v)\n", n.Int(), n.Token())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its text representation
func Encode(n *Node) []byte {
	var buf bytes.Buffer
	encodeNode(&buf, n)
	return buf.Bytes()
}

func encodeNode(buf *bytes.Buffer, n *Node) {
	switch n.Type() {

	case NodeTypeBinary:
		buf.WriteByte('(')
		buf.WriteByte(n.Op())
		buf.WriteByte(' ')
		encodeNode(buf, n.Left())
		buf.WriteByte(' ')
		encodeNode(buf, n.Right())
		buf.WriteByte(')')

	case NodeTypeInt:
		buf.WriteString(strconv.FormatInt(n.Int(), 10))

	default:
		panic("unknown node type")
	}
}
