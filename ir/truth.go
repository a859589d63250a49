package ir

// Truth reports whether node is truthy: a non-empty container or string, a
// non-zero number, or true. Null and nil nodes are false.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.typ {
	case ObjectType, ArrayType:
		return len(node.values) != 0
	case StringType:
		return node.str != ""
	case NumberType:
		return node.number != 0
	case BoolType:
		return node.boolean
	default:
		return false
	}
}
