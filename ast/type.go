package ast

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeInt    NodeType = iota + 1 // Integer literal leaf
	NodeTypeBinary                     // Operator applied to two subtrees
)

var nodeTypeName = map[NodeType]string{
	NodeTypeInt:    "int",
	NodeTypeBinary: "binary",
}

func (nt NodeType) String() string {
	if s, ok := nodeTypeName[nt]; ok {
		return s
	}
	return ""
}
