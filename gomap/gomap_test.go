package gomap

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/fixcik/yexp/encode"
	"github.com/fixcik/yexp/format"
	"github.com/fixcik/yexp/ir"
	"github.com/fixcik/yexp/parse"

	"github.com/google/go-cmp/cmp"
)

func wire(t *testing.T, node *ir.Node) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return strings.TrimSpace(buf.String())
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{in: nil, want: `null`},
		{in: 3, want: `3`},
		{in: int64(-3), want: `-3`},
		{in: uint64(7), want: `7`},
		{in: 0.5, want: `0.5`},
		{in: "s", want: `"s"`},
		{in: []any{true, nil}, want: `[true,null]`},
		{in: map[string]any{"b": 1, "a": 2}, want: `{"a":2,"b":1}`},
	}
	for _, tt := range tests {
		got, err := FromAny(tt.in)
		if err != nil {
			t.Fatalf("%v: %v", tt.in, err)
		}
		if w := wire(t, got); w != tt.want {
			t.Errorf("%v: got %s, want %s", tt.in, w, tt.want)
		}
	}
	big, err := FromAny(uint64(math.MaxUint64))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(big, ir.FromNumber("18446744073709551615")) {
		t.Errorf("got %s", big.KeyID())
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("expected error for struct")
	}
}

func TestUnmarshal(t *testing.T) {
	got, err := Unmarshal([]byte(`{z: 1, a: [x, {k: v}], m: ~}`))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":["x",{"k":"v"}],"m":null}`
	if w := wire(t, got); w != want {
		t.Errorf("got %s, want %s", w, want)
	}
}

type server struct {
	Host    string   `yaml:"host"`
	Port    int      `yaml:"port"`
	Debug   bool     `yaml:"debug"`
	Ratio   float64  `yaml:"ratio"`
	Tags    []string `yaml:"tags"`
	Limits  map[string]int
	Missing *string `yaml:"missing"`
}

func TestDecode(t *testing.T) {
	node, err := parse.Parse([]byte(`
host: example.org
port: 8080
debug: true
ratio: 1.0
tags: [a, b]
limits: {cpu: 2}
missing: null
`))
	if err != nil {
		t.Fatal(err)
	}
	var got server
	if err := Decode(node, &got); err != nil {
		t.Fatal(err)
	}
	want := server{
		Host:   "example.org",
		Port:   8080,
		Debug:  true,
		Ratio:  1,
		Tags:   []string{"a", "b"},
		Limits: map[string]int{"cpu": 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeError(t *testing.T) {
	var got server
	err := Decode(ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromString("port"), Val: ir.FromString("http")}}), &got)
	if err == nil {
		t.Error("expected error")
	}
}
