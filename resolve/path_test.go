package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolvePath(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a/b.yaml": "x: 1",
		"c/d.yaml": "y: 2",
	})
	got, err := ResolvePath("../c/./d.yaml", filepath.Join(dir, "a"))
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "c", "d.yaml"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestResolvePathAbsolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "nope", "..", "missing.yaml")
	got, err := ResolvePath(abs, "/elsewhere")
	if err != nil {
		t.Fatalf("absolute reference must not be checked: %v", err)
	}
	if want := filepath.Clean(abs); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestResolvePathNotFound(t *testing.T) {
	dir := writeTree(t, nil)
	_, err := ResolvePath("missing.yaml", dir)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), filepath.Join(dir, "missing.yaml")) {
		t.Errorf("error %q does not name the attempted path", err)
	}
}

func TestCanonicalSymlink(t *testing.T) {
	dir := writeTree(t, map[string]string{"real/doc.yaml": "a: 1"})
	link := filepath.Join(dir, "link")
	if err := os.Symlink(filepath.Join(dir, "real"), link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	got, err := Canonical(filepath.Join(link, "doc.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "real", "doc.yaml"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
