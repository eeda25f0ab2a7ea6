// Package ir provides the in-memory representation of parsed documents.
//
// # Overview
//
// Every document yexp reads, merges or writes is an ir.Node tree. The tree is
// a closed tagged union: the Type field selects which of the value fields is
// meaningful.
//
//   - NullType: null
//   - BoolType: Bool
//   - NumberType: Int64, Float64, or Number (text fallback)
//   - StringType: String
//   - ArrayType: Values, an ordered list
//   - ObjectType: Fields[i] is the key for Values[i]
//
// Any node may additionally carry a Tag such as "!include". A node with a
// non-empty Tag is a tagged value; its inner value is the same node with the
// tag removed. Standard YAML core tags (!!str, !!map, ...) are
// resolved by the parser and never appear in Tag.
//
// # Objects
//
// Object keys are nodes, since YAML allows non-string keys, and are unique by
// KeyID. Fields keep insertion order. Set overwrites the value of an existing
// key in place and appends new keys at the end. Set and Index scan the keys,
// so code building or joining large objects works from FromKeyVals and
// KeyIndex instead.
//
// # Ownership
//
// Nodes have no parent pointers. Operations that combine trees (see package
// resolve) build new nodes and clone what they take from their inputs, so a
// tree can be shared read-only between goroutines.
//
// # Paths
//
// Node locations are written in a JSONPath-like notation, "$.foo.bar[0]".
// ParsePath parses that notation; FieldPath and IndexPath extend a path
// string while walking a tree.
package ir
