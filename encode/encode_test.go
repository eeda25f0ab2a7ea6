package encode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/fixcik/yexp/format"
	"github.com/fixcik/yexp/ir"
	"github.com/fixcik/yexp/parse"

	"github.com/google/go-cmp/cmp"
)

func sample() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("b"), Val: ir.FromInt(1)},
		{Key: ir.FromString("a"), Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("x")})},
		{Key: ir.FromString("e"), Val: ir.Object()},
	})
}

func TestEncodeYAMLKeepsOrder(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("zeta"), Val: ir.FromInt(1)},
		{Key: ir.FromString("alpha"), Val: ir.FromString("x")},
		{Key: ir.FromString("mid"), Val: ir.FromBool(false)},
	})
	got := MustString(node)
	want := "zeta: 1\nalpha: x\nmid: false\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	nodes := []*ir.Node{
		sample(),
		ir.FromString("true"),
		ir.FromString("12"),
		ir.FromString("null"),
		ir.FromString(""),
		ir.FromString("line1\nline2\n"),
		ir.FromFloat(1),
		ir.FromFloat(2.5e300),
		ir.FromFloat(math.Inf(-1)),
		ir.FromNumber("18446744073709551615"),
		ir.FromString("5").WithTag("!custom"),
		ir.FromString("plain").WithTag("!custom"),
		ir.FromInt(5).WithTag("!custom"),
		ir.Null().WithTag("!nothing"),
		ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("inner"), Val: ir.FromString("frag.yaml").WithTag("!ref")},
		}).WithTag("!wrapped"),
		ir.FromSlice([]*ir.Node{ir.FromSlice([]*ir.Node{}), ir.Object(), ir.Null()}).WithTag("!seq"),
		ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromInt(1), Val: ir.FromString("int key")},
			{Key: ir.FromBool(true), Val: ir.FromString("bool key")},
		}),
	}
	for _, node := range nodes {
		text := MustString(node)
		back, err := parse.Parse([]byte(text))
		if err != nil {
			t.Errorf("parse %q: %v", text, err)
			continue
		}
		if !ir.Equal(node, back) {
			t.Errorf("round trip through %q: got %s, want %s", text, back.KeyID(), node.KeyID())
		}
	}
}

func TestEncodeFloatText(t *testing.T) {
	tests := map[float64]string{
		1:      "1.0\n",
		2.5:    "2.5\n",
		-0.125: "-0.125\n",
	}
	for f, want := range tests {
		if got := MustString(ir.FromFloat(f)); got != want {
			t.Errorf("%v: got %q, want %q", f, got, want)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	got := MustString(sample(), EncodeFormat(format.JSONFormat))
	want := `{
  "b": 1,
  "a": [
    1,
    "x"
  ],
  "e": {}
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	got = MustString(sample(), EncodeFormat(format.JSONFormat), EncodeWire(true))
	want = `{"b":1,"a":[1,"x"],"e":{}}` + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wire mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeJSONStrings(t *testing.T) {
	got := MustString(ir.FromString("<a & \"b\">\n"), EncodeFormat(format.JSONFormat))
	want := `"<a & \"b\">\n"` + "\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeJSONErrors(t *testing.T) {
	nodes := []*ir.Node{
		ir.FromString("x").WithTag("!include"),
		ir.FromSlice([]*ir.Node{ir.FromInt(1).WithTag("!t")}),
		ir.FromFloat(math.NaN()),
		ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromSlice(nil), Val: ir.Null()}}),
	}
	for _, node := range nodes {
		err := Encode(node, &strings.Builder{}, EncodeFormat(format.JSONFormat))
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%s: got %v, want ErrEncoding", node.KeyID(), err)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	got := MustString(sample(), EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[96m") {
		t.Errorf("no field color in %q", got)
	}
	if !strings.Contains(got, "b") || !strings.HasSuffix(got, "\n") {
		t.Errorf("unexpected colored output %q", got)
	}
}
