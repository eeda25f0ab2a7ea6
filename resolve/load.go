package resolve

import (
	"context"
	"fmt"
	"os"

	"github.com/fixcik/yexp/debug"
	"github.com/fixcik/yexp/format"
	"github.com/fixcik/yexp/ir"
	"github.com/fixcik/yexp/parse"
)

// Resolver loads documents and resolves their references. A Resolver holds
// no state between calls and may be used concurrently.
type Resolver struct {
	maxDepth int
	parallel int
	onFile   func(string)
}

func New(opts ...Option) *Resolver {
	r := &Resolver{
		maxDepth: DefaultMaxDepth,
		parallel: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load resolves the document at path with a Resolver built from opts.
func Load(ctx context.Context, path string, opts ...Option) (*ir.Node, error) {
	return New(opts...).Load(ctx, path)
}

// LoadMapping is Load requiring the result to be a mapping.
func LoadMapping(ctx context.Context, path string, opts ...Option) (*ir.Node, error) {
	return New(opts...).LoadMapping(ctx, path)
}

// Load reads and parses the document at path, merges it over the bases its
// root names under ExtendKey and replaces each IncludeTag node in the result
// with the resolved file it names.
func (r *Resolver) Load(ctx context.Context, path string) (*ir.Node, error) {
	return r.load(ctx, path, nil)
}

// LoadMapping is Load failing with ErrNotAMapping when the resolved document
// is not an untagged mapping.
func (r *Resolver) LoadMapping(ctx context.Context, path string) (*ir.Node, error) {
	return r.loadMapping(ctx, path, nil)
}

func (r *Resolver) loadMapping(ctx context.Context, path string, from *frame) (*ir.Node, error) {
	node, err := r.load(ctx, path, from)
	if err != nil {
		return nil, err
	}
	if !node.IsMapping() {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotAMapping, path, describe(node))
	}
	return node, nil
}

func (r *Resolver) load(ctx context.Context, path string, from *frame) (*ir.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	canon, err := Canonical(path)
	if err != nil {
		return nil, err
	}
	f, err := from.push(canon)
	if err != nil {
		return nil, err
	}
	if f.depth > r.maxDepth {
		return nil, fmt.Errorf("%w: %s is %d references deep", ErrMaxDepth, canon, f.depth)
	}
	if debug.Load() {
		debug.Logf("load %s depth %d\n", canon, f.depth)
	}
	if r.onFile != nil {
		r.onFile(canon)
	}
	d, err := os.ReadFile(canon)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	node, err := parse.Parse(d, parse.ParseFormat(format.FromPath(canon)))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", canon, err)
	}
	if node.IsMapping() {
		node, err = r.extend(ctx, node, f)
		if err != nil {
			return nil, err
		}
	}
	return r.include(ctx, node, f)
}
