package resolve

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// each calls fn for 0 <= i < n, concurrently when the Resolver is parallel.
func (r *Resolver) each(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if r.parallel <= 1 || n < 2 {
		for i := range n {
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for i := range n {
		g.Go(func() error {
			return fn(gctx, i)
		})
	}
	return g.Wait()
}
