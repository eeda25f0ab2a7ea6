package ir

import (
	"strconv"
	"strings"
)

// KeyID returns the identity of y as an object key. Two keys are the same key
// exactly when their KeyIDs are equal: the string "1" and the number 1 are
// different keys, as are the integer 1 and the float 1.0, and a tagged and an
// untagged "a".
func (y *Node) KeyID() string {
	b := &strings.Builder{}
	writeKeyID(b, y)
	return b.String()
}

func writeKeyID(b *strings.Builder, y *Node) {
	if y.Tag != "" {
		b.WriteString(y.Tag)
		b.WriteByte(' ')
	}
	switch y.Type {
	case NullType:
		b.WriteByte('~')
	case BoolType:
		b.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		b.WriteByte('#')
		b.WriteByte(numberKind(y))
		b.WriteString(y.NumberText())
	case StringType:
		b.WriteString(strconv.Quote(y.String))
	case ArrayType:
		b.WriteByte('[')
		for i, v := range y.Values {
			if i != 0 {
				b.WriteByte(',')
			}
			writeKeyID(b, v)
		}
		b.WriteByte(']')
	case ObjectType:
		b.WriteByte('{')
		for i := range y.Fields {
			if i != 0 {
				b.WriteByte(',')
			}
			writeKeyID(b, y.Fields[i])
			b.WriteByte(':')
			writeKeyID(b, y.Values[i])
		}
		b.WriteByte('}')
	}
}

// numberKind tells apart the representations of a number node.
func numberKind(y *Node) byte {
	switch {
	case y.Int64 != nil:
		return 'i'
	case y.Float64 != nil:
		return 'f'
	}
	return 'n'
}
