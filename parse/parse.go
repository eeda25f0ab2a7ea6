// Package parse turns document bytes into ir trees.
//
// YAML is read through the gopkg.in/yaml.v3 node API so that key order and
// custom tags survive. Core schema tags are resolved into node types, aliases
// are expanded, and "<<" merge keys are kept as ordinary keys. JSON input may
// carry comments and trailing commas.
package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fixcik/yexp/format"
	"github.com/fixcik/yexp/ir"

	"gopkg.in/yaml.v3"
)

const defaultMaxNodes = 1 << 22

// Parse parses a single document. Empty input is null.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxNodes <= 0 {
		pOpts.maxNodes = defaultMaxNodes
	}
	if pOpts.format.IsJSON() {
		return parseJSON(d)
	}
	return parseYAML(d, pOpts)
}

func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(d))
	doc := &yaml.Node{}
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return ir.Null(), nil
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return nil, ErrMultiDoc
	}
	c := &converter{budget: opts.maxNodes}
	return c.node(doc)
}

type converter struct {
	budget int
}

func (c *converter) node(n *yaml.Node) (*ir.Node, error) {
	c.budget--
	if c.budget < 0 {
		return nil, ErrAliasExpand
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return ir.Null(), nil
		}
		return c.node(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("%w: unknown alias %q at line %d", ErrParse, n.Value, n.Line)
		}
		return c.node(n.Alias)
	case yaml.MappingNode:
		kvs := make([]ir.KeyVal, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := c.node(n.Content[i])
			if err != nil {
				return nil, err
			}
			v, err := c.node(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: k, Val: v})
		}
		return ir.FromKeyVals(kvs).WithTag(customTag(n)), nil
	case yaml.SequenceNode:
		vals := make([]*ir.Node, 0, len(n.Content))
		for _, elt := range n.Content {
			v, err := c.node(elt)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
		return ir.FromSlice(vals).WithTag(customTag(n)), nil
	case yaml.ScalarNode:
		return scalar(n)
	default:
		return nil, fmt.Errorf("%w: unexpected node kind %d at line %d", ErrParse, n.Kind, n.Line)
	}
}

func scalar(n *yaml.Node) (*ir.Node, error) {
	tag := customTag(n)
	sn := n
	if tag != "" {
		// the payload of a custom tag is typed as if untagged
		cp := *n
		cp.Tag = ""
		sn = &cp
	}
	var res *ir.Node
	switch sn.ShortTag() {
	case "!!null":
		res = ir.Null()
	case "!!bool":
		var b bool
		if err := sn.Decode(&b); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		res = ir.FromBool(b)
	case "!!int":
		var i int64
		if err := sn.Decode(&i); err != nil {
			res = ir.FromNumber(sn.Value)
			break
		}
		res = ir.FromInt(i)
	case "!!float":
		var f float64
		if err := sn.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		res = ir.FromFloat(f)
	default:
		res = ir.FromString(sn.Value)
	}
	res.Tag = tag
	return res, nil
}

// customTag returns the tag of n unless it is absent, non-specific or a core
// schema tag.
func customTag(n *yaml.Node) string {
	if n.Tag == "" || n.Tag == "!" {
		return ""
	}
	// quoting styles make ShortTag report !!str, only the tag matters here
	cp := *n
	cp.Style = 0
	if strings.HasPrefix(cp.ShortTag(), "!!") {
		return ""
	}
	return n.Tag
}
