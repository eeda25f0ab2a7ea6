package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// ResolvePath resolves the file reference ref found in a document whose
// directory is baseDir.
//
// An absolute ref is returned cleaned and is not required to exist yet. A
// relative ref is joined to baseDir and canonicalized, so it must exist.
func ResolvePath(ref, baseDir string) (string, error) {
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref), nil
	}
	return Canonical(filepath.Join(baseDir, ref))
}

// Canonical returns the absolute path of path with symlinks, "." and ".."
// resolved.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	res, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return res, nil
}
