package resolve

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// frame is the resolution context of one file: its canonical path and the
// frame of the file that referenced it.
type frame struct {
	path   string
	parent *frame
	depth  int
}

func (f *frame) dir() string {
	return filepath.Dir(f.path)
}

// push returns the frame for path referenced from f, failing if path is
// already being resolved further up the chain.
func (f *frame) push(path string) (*frame, error) {
	for p := f; p != nil; p = p.parent {
		if p.path == path {
			return nil, fmt.Errorf("%w: %s", ErrCyclicReference, f.cycle(path))
		}
	}
	if f == nil {
		return &frame{path: path}, nil
	}
	return &frame{path: path, parent: f, depth: f.depth + 1}, nil
}

func (f *frame) cycle(path string) string {
	paths := []string{path}
	for p := f; p != nil; p = p.parent {
		paths = append(paths, p.path)
		if p.path == path {
			break
		}
	}
	slices.Reverse(paths)
	return strings.Join(paths, " -> ")
}
