package debug

import (
	"bytes"
	"os"
	"testing"

	"github.com/fixcik/yexp/ir"
)

func TestLogfRendersNodes(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	out = buf
	defer func() { out = os.Stderr }()
	node := ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromString("a"), Val: ir.FromInt(1)}})
	Logf("merged %s", Doc{node})
	if got, want := buf.String(), "merged a: 1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDocNonMappings(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	out = buf
	defer func() { out = os.Stderr }()
	Logf("%s|%s", Doc{ir.Null()}, Doc{ir.FromSlice([]*ir.Node{ir.FromString("x")})})
	if got, want := buf.String(), "null\n|- x\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("YEXP_TEST_FLAG", "true")
	if !boolEnv("YEXP_TEST_FLAG") {
		t.Error("expected true")
	}
	t.Setenv("YEXP_TEST_FLAG", "nope")
	if boolEnv("YEXP_TEST_FLAG") {
		t.Error("expected false for unparsable value")
	}
	if boolEnv("YEXP_TEST_UNSET_FLAG") {
		t.Error("expected false for unset")
	}
}
