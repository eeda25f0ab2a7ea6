package resolve

// DefaultMaxDepth bounds the length of a reference chain.
const DefaultMaxDepth = 64

type Option func(*Resolver)

// MaxDepth limits how many references deep a chain from the entry document
// may go.
func MaxDepth(n int) Option {
	return func(r *Resolver) { r.maxDepth = n }
}

// Parallel lets up to n sibling references of one document load
// concurrently. Results are combined in document order regardless.
func Parallel(n int) Option {
	return func(r *Resolver) { r.parallel = n }
}

// OnFile registers f to be called with the canonical path of every file read.
// With Parallel, f is called from several goroutines.
func OnFile(f func(path string)) Option {
	return func(r *Resolver) { r.onFile = f }
}
