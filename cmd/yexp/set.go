package main

import (
	"fmt"
	"strings"

	"github.com/fixcik/yexp/gomap"
	"github.com/fixcik/yexp/ir"
	"github.com/fixcik/yexp/resolve"
)

// setting is one -s path=val option.
type setting struct {
	text  string
	path  *ir.Path
	value *ir.Node
}

func parseSetting(a string) (*setting, error) {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return nil, fmt.Errorf("argument %q expected path=val", a)
	}
	p, err := ir.ParsePath(key)
	if err != nil {
		return nil, fmt.Errorf("bad path in %q: %w", a, err)
	}
	node, err := gomap.Unmarshal([]byte(val))
	if err != nil {
		return nil, fmt.Errorf("bad value in %q: %w", a, err)
	}
	return &setting{text: a, path: p, value: node}, nil
}

// applySettings returns doc with each setting applied in turn. A mapping
// value is deep merged over the mapping it replaces.
func applySettings(doc *ir.Node, sets []*setting) (*ir.Node, error) {
	var err error
	for _, s := range sets {
		doc, err = setPath(doc, s.path, s.value)
		if err != nil {
			return nil, fmt.Errorf("cannot set %s: %w", s.text, err)
		}
	}
	return doc, nil
}

func setPath(doc *ir.Node, p *ir.Path, val *ir.Node) (*ir.Node, error) {
	if p == nil || (p.Field == nil && p.Index == nil) {
		if doc.IsMapping() && val.IsMapping() {
			return resolve.Merge(val, doc), nil
		}
		return val.Clone(), nil
	}
	if p.Index != nil {
		if doc == nil || doc.Tag != "" || doc.Type != ir.ArrayType {
			return nil, fmt.Errorf("%s is not a sequence", describe(doc))
		}
		i := *p.Index
		if i >= len(doc.Values) {
			return nil, fmt.Errorf("index %d out of bounds (len %d)", i, len(doc.Values))
		}
		child, err := setPath(doc.Values[i], p.Next, val)
		if err != nil {
			return nil, err
		}
		res := doc.Clone()
		res.Values[i] = child
		return res, nil
	}
	if doc.IsNull() {
		return ir.FromPath(p, val.Clone())
	}
	if !doc.IsMapping() {
		return nil, fmt.Errorf("field %s of %s", *p.Field, describe(doc))
	}
	key := ir.FromString(*p.Field)
	child, err := setPath(ir.Get(doc, *p.Field), p.Next, val)
	if err != nil {
		return nil, err
	}
	res := doc.Clone()
	res.Set(key, child)
	return res, nil
}

func describe(y *ir.Node) string {
	if y == nil {
		return "nothing"
	}
	if y.Tag != "" {
		return y.Tag + " " + y.Type.String()
	}
	return y.Type.String()
}
