package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Root is the path of a document's root node.
const Root = "$"

// FieldPath extends the path string prefix with an object field.
func FieldPath(prefix, field string) string {
	return prefix + "." + pathString(field)
}

// IndexPath extends the path string prefix with an array index.
func IndexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

// KeyPath extends prefix with an object key of any type. Non-string keys are
// written by KeyID.
func KeyPath(prefix string, key *Node) string {
	if key.Type == StringType && key.Tag == "" {
		return FieldPath(prefix, key.String)
	}
	return FieldPath(prefix, key.KeyID())
}

type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

// ParsePath parses a path such as "$.a.b[2]" or "$.'a.b'.c". The leading '$'
// may be omitted when the path starts with a field name.
func ParsePath(p string) (*Path, error) {
	if p == "" {
		return nil, fmt.Errorf("empty path")
	}
	switch p[0] {
	case '$':
		p = p[1:]
	case '.', '[':
	default:
		p = "." + p
	}
	root := &Path{}
	if len(p) == 0 {
		return root, nil
	}
	err := parseFrag(p, root)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		err = parseFrag(rest, next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.Index = &index
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		err = parseFrag(frag[i+2:], next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (int, error) {
	u64, err := strconv.ParseUint(is, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(u64), nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field name")
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// FromPath builds the object tree that holds leaf at p, e.g. "$.a.b" and 1
// give {a: {b: 1}}. Only field steps are allowed.
func FromPath(p *Path, leaf *Node) (*Node, error) {
	if p == nil || (p.Field == nil && p.Index == nil) {
		return leaf, nil
	}
	if p.Index != nil {
		return nil, fmt.Errorf("cannot build index step in %s", p)
	}
	child, err := FromPath(p.Next, leaf)
	if err != nil {
		return nil, err
	}
	res := Object()
	res.Set(FromString(*p.Field), child)
	return res, nil
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}
