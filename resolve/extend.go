package resolve

import (
	"context"
	"fmt"

	"github.com/fixcik/yexp/ir"
)

// extend merges the root mapping m of the file of f over the bases it names.
func (r *Resolver) extend(ctx context.Context, m *ir.Node, f *frame) (*ir.Node, error) {
	directive := ir.Get(m, ExtendKey)
	if directive == nil {
		return m, nil
	}
	refs, err := extendRefs(directive)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrInvalidDirective, f.path, err)
	}
	bases := make([]*ir.Node, len(refs))
	err = r.each(ctx, len(refs), func(ctx context.Context, i int) error {
		base, err := r.loadRef(ctx, refs[i], f, r.loadMapping)
		if err != nil {
			return fmt.Errorf("error extending %s from %s: %w", f.path, refs[i], err)
		}
		bases[i] = base
		return nil
	})
	if err != nil {
		return nil, err
	}
	acc := ir.Object()
	for _, base := range bases {
		acc = Merge(base, acc)
	}
	return Merge(m, acc), nil
}

func extendRefs(directive *ir.Node) ([]string, error) {
	if directive.Tag != "" {
		return nil, fmt.Errorf("unexpected tag %s", directive.Tag)
	}
	switch directive.Type {
	case ir.StringType:
		return []string{directive.String}, nil
	case ir.ArrayType:
		refs := make([]string, len(directive.Values))
		for i, v := range directive.Values {
			if v.Type != ir.StringType || v.Tag != "" {
				return nil, fmt.Errorf("entry %d is %s, want a path", i, describe(v))
			}
			refs[i] = v.String
		}
		return refs, nil
	}
	return nil, fmt.Errorf("got %s, want a path or a list of paths", describe(directive))
}

func describe(v *ir.Node) string {
	if v.Tag != "" {
		return v.Tag + " " + v.Type.String()
	}
	return v.Type.String()
}

type loadFunc func(ctx context.Context, path string, from *frame) (*ir.Node, error)

func (r *Resolver) loadRef(ctx context.Context, ref string, f *frame, load loadFunc) (*ir.Node, error) {
	path, err := ResolvePath(ref, f.dir())
	if err != nil {
		return nil, err
	}
	return load(ctx, path, f)
}
