package ir

import "testing"

func TestParsePath(t *testing.T) {
	tests := []struct {
		in, want string
		err      bool
	}{
		{in: "$", want: "$"},
		{in: "a", want: "$.a"},
		{in: "a.b", want: "$.a.b"},
		{in: "$.a[2].b", want: "$.a[2].b"},
		{in: "$.'a.b'.c", want: "$.'a.b'.c"},
		{in: "[0]", want: "$[0]"},
		{in: "a..b", err: true},
		{in: "a[x]", err: true},
		{in: "", err: true},
	}
	for _, tt := range tests {
		p, err := ParsePath(tt.in)
		if tt.err {
			if err == nil {
				t.Errorf("ParsePath(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePath(%q): %v", tt.in, err)
			continue
		}
		if got := p.String(); got != tt.want {
			t.Errorf("ParsePath(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPathBuilders(t *testing.T) {
	p := IndexPath(FieldPath(FieldPath(Root, "outer"), "a.b"), 3)
	if want := "$.outer.'a.b'[3]"; p != want {
		t.Errorf("got %q, want %q", p, want)
	}
	if got := KeyPath(Root, FromInt(5)); got != "$.#i5" {
		t.Errorf("KeyPath int: got %q", got)
	}
}

func TestFromPath(t *testing.T) {
	p, err := ParsePath("a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	y, err := FromPath(p, FromInt(3))
	if err != nil {
		t.Fatal(err)
	}
	want := FromKeyVals([]KeyVal{{FromString("a"), FromKeyVals([]KeyVal{
		{FromString("b"), FromKeyVals([]KeyVal{{FromString("c"), FromInt(3)}})},
	})}})
	if !Equal(y, want) {
		t.Fatalf("FromPath: got %s", y.KeyID())
	}
	ip, _ := ParsePath("a[0]")
	if _, err := FromPath(ip, Null()); err == nil {
		t.Error("FromPath with an index step: expected error")
	}
}
