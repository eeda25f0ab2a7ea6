package ir

import (
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	Tag string

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) WithTag(tag string) *Node {
	y.Tag = tag
	return y
}

// IsMapping reports whether y is an untagged object.
func (y *Node) IsMapping() bool {
	return y != nil && y.Type == ObjectType && y.Tag == ""
}

// IsNull reports whether y is an untagged null.
func (y *Node) IsNull() bool {
	return y == nil || (y.Type == NullType && y.Tag == "")
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Tag = y.Tag
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	dst.String = y.String
	dst.Number = y.Number
	dst.Float64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Int64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber makes a number node holding text that fits neither int64 nor
// float64.
func FromNumber(v string) *Node {
	return &Node{
		Type:   NumberType,
		Number: v,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Object returns an empty object.
func Object() *Node {
	return &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
}

// FromMap builds an object with string keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := Object()
	keys := slices.Sorted(maps.Keys(yMap))
	for _, key := range keys {
		res.Fields = append(res.Fields, FromString(key))
		res.Values = append(res.Values, yMap[key])
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an object in the order of kvs. A repeated key
// overwrites the earlier value and keeps the earlier position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	index := make(map[string]int, len(kvs))
	for _, kv := range kvs {
		id := kv.Key.KeyID()
		if i, ok := index[id]; ok {
			res.Values[i] = kv.Val
			continue
		}
		index[id] = len(res.Fields)
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

// Get returns the value under the string key field, or nil.
func Get(y *Node, field string) *Node {
	i := y.Index(FromString(field))
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// Index returns the position of key in the object y, or -1.
func (y *Node) Index(key *Node) int {
	id := key.KeyID()
	for i, f := range y.Fields {
		if f.KeyID() == id {
			return i
		}
	}
	return -1
}

// Set puts val under key. Keys are unique: an existing key keeps its position
// and has its value replaced.
func (y *Node) Set(key, val *Node) {
	if i := y.Index(key); i != -1 {
		y.Values[i] = val
		return
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
}

// KeyIndex maps the KeyID of each key of the object y to its position.
// Building it once replaces repeated Index calls over large objects.
func (y *Node) KeyIndex() map[string]int {
	res := make(map[string]int, len(y.Fields))
	for i, f := range y.Fields {
		res[f.KeyID()] = i
	}
	return res
}

// NumberText returns the canonical text of a number node.
func (y *Node) NumberText() string {
	switch {
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	default:
		return y.Number
	}
}
