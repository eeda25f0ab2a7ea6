package resolve

import (
	"context"
	"fmt"

	"github.com/fixcik/yexp/debug"
	"github.com/fixcik/yexp/ir"
)

// inclusion is one IncludeTag node found in a document.
type inclusion struct {
	at     string
	target string
	value  *ir.Node
}

// include replaces every IncludeTag node of v, a value from the file of f,
// with the resolved file it names.
func (r *Resolver) include(ctx context.Context, v *ir.Node, f *frame) (*ir.Node, error) {
	var incs []*inclusion
	if err := findInclusions(v, ir.Root, &incs); err != nil {
		return nil, fmt.Errorf("%w in %s", err, f.path)
	}
	if len(incs) == 0 {
		return v, nil
	}
	err := r.each(ctx, len(incs), func(ctx context.Context, i int) error {
		inc := incs[i]
		if debug.Include() {
			debug.Logf("include %s at %s in %s\n", inc.target, inc.at, f.path)
		}
		value, err := r.loadRef(ctx, inc.target, f, r.load)
		if err != nil {
			return fmt.Errorf("error including %s at %s in %s: %w", inc.target, inc.at, f.path, err)
		}
		inc.value = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	next := 0
	return splice(v, incs, &next), nil
}

// findInclusions appends the IncludeTag nodes of v in document order.
// Nodes under other tags are not searched.
func findInclusions(v *ir.Node, at string, incs *[]*inclusion) error {
	if v.Tag == IncludeTag {
		if v.Type != ir.StringType {
			return fmt.Errorf("%w: got %s at %s, want a path", ErrInvalidInclusionTarget, v.Type, at)
		}
		*incs = append(*incs, &inclusion{at: at, target: v.String})
		return nil
	}
	if v.Tag != "" {
		return nil
	}
	switch v.Type {
	case ir.ObjectType:
		for i, val := range v.Values {
			if err := findInclusions(val, ir.KeyPath(at, v.Fields[i]), incs); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		for i, val := range v.Values {
			if err := findInclusions(val, ir.IndexPath(at, i), incs); err != nil {
				return err
			}
		}
	}
	return nil
}

// splice rebuilds v with its IncludeTag nodes replaced, in the order
// findInclusions produced them.
func splice(v *ir.Node, incs []*inclusion, next *int) *ir.Node {
	if v.Tag == IncludeTag {
		res := incs[*next].value
		*next++
		return res
	}
	if v.Tag != "" {
		return v
	}
	switch v.Type {
	case ir.ObjectType, ir.ArrayType:
		res := &ir.Node{Type: v.Type, Fields: v.Fields, Values: make([]*ir.Node, len(v.Values))}
		for i, val := range v.Values {
			res.Values[i] = splice(val, incs, next)
		}
		return res
	}
	return v
}
