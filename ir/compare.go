package ir

import "slices"

// Equal reports whether a and b are the same tree. Tags count, numbers must
// have the same representation, and objects must list their keys in the same
// order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type || a.Tag != b.Tag {
		return false
	}
	switch a.Type {
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return numberKind(a) == numberKind(b) && a.NumberText() == b.NumberText()
	case StringType:
		return a.String == b.String
	case ArrayType:
		return slices.EqualFunc(a.Values, b.Values, Equal)
	case ObjectType:
		return slices.EqualFunc(a.Fields, b.Fields, Equal) &&
			slices.EqualFunc(a.Values, b.Values, Equal)
	}
	return true
}
