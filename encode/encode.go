package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fixcik/yexp/format"
	"github.com/fixcik/yexp/ir"

	"gopkg.in/yaml.v3"
)

type EncState struct {
	indent int
	wire   bool
	format format.Format
	colors *Colors
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	var err error
	switch es.format {
	case format.JSONFormat:
		err = encodeJSON(node, buf, es, 0)
		if err == nil {
			err = buf.WriteByte('\n')
		}
	default:
		err = encodeYAML(node, buf, es)
	}
	if err != nil {
		return err
	}
	out := buf.String()
	if es.colors != nil {
		out = es.colors.Colorize(out)
	}
	return writeString(w, out)
}

// MustString renders node with opts, panicking on failure.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(es.indent)
	if err := enc.Encode(ToYAML(node)); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

// ToYAML converts node to a yaml.v3 node tree.
func ToYAML(node *ir.Node) *yaml.Node {
	res := &yaml.Node{Tag: node.Tag}
	switch node.Type {
	case ir.ObjectType:
		res.Kind = yaml.MappingNode
		res.Content = make([]*yaml.Node, 0, 2*len(node.Fields))
		for i := range node.Fields {
			res.Content = append(res.Content, ToYAML(node.Fields[i]), ToYAML(node.Values[i]))
		}
		return res
	case ir.ArrayType:
		res.Kind = yaml.SequenceNode
		res.Content = make([]*yaml.Node, 0, len(node.Values))
		for _, v := range node.Values {
			res.Content = append(res.Content, ToYAML(v))
		}
		return res
	}
	res.Kind = yaml.ScalarNode
	var coreTag string
	switch node.Type {
	case ir.NullType:
		coreTag, res.Value = "!!null", "null"
	case ir.BoolType:
		coreTag, res.Value = "!!bool", strconv.FormatBool(node.Bool)
	case ir.NumberType:
		coreTag, res.Value = "!!int", numberText(node)
		if node.Float64 != nil {
			coreTag = "!!float"
		}
	case ir.StringType:
		coreTag, res.Value = "!!str", node.String
		if strings.Contains(node.String, "\n") {
			res.Style = yaml.LiteralStyle
		}
		if node.Tag != "" && (&yaml.Node{Kind: yaml.ScalarNode, Value: node.String}).ShortTag() != "!!str" {
			// keep the payload of a custom tag a string when read back
			res.Style = yaml.DoubleQuotedStyle
		}
	}
	if res.Tag == "" {
		res.Tag = coreTag
	}
	return res
}

func numberText(node *ir.Node) string {
	if node.Float64 == nil {
		return node.NumberText()
	}
	f := *node.Float64
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
