package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fixcik/yexp/format"
	"github.com/fixcik/yexp/ir"
)

func encodeJSON(node *ir.Node, buf *bytes.Buffer, es *EncState, depth int) error {
	if node.Tag != "" {
		return fmt.Errorf("%w: cannot encode tag %s in %s", ErrEncoding, node.Tag, format.JSONFormat)
	}
	switch node.Type {
	case ir.NullType:
		buf.WriteString("null")
	case ir.BoolType:
		buf.WriteString(strconv.FormatBool(node.Bool))
	case ir.NumberType:
		if node.Float64 != nil && (math.IsInf(*node.Float64, 0) || math.IsNaN(*node.Float64)) {
			return fmt.Errorf("%w: cannot encode %v in %s", ErrEncoding, *node.Float64, format.JSONFormat)
		}
		buf.WriteString(numberText(node))
	case ir.StringType:
		writeJSONString(buf, node.String)
	case ir.ArrayType:
		if len(node.Values) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i != 0 {
				buf.WriteByte(',')
			}
			writeJSONNL(buf, es, depth+1)
			if err := encodeJSON(v, buf, es, depth+1); err != nil {
				return err
			}
		}
		writeJSONNL(buf, es, depth)
		buf.WriteByte(']')
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		for i := range node.Fields {
			if i != 0 {
				buf.WriteByte(',')
			}
			writeJSONNL(buf, es, depth+1)
			key, err := jsonKey(node.Fields[i])
			if err != nil {
				return err
			}
			writeJSONString(buf, key)
			buf.WriteByte(':')
			if !es.wire {
				buf.WriteByte(' ')
			}
			if err := encodeJSON(node.Values[i], buf, es, depth+1); err != nil {
				return err
			}
		}
		writeJSONNL(buf, es, depth)
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
	}
	return nil
}

// jsonKey renders a scalar key as a JSON object key.
func jsonKey(key *ir.Node) (string, error) {
	if key.Tag != "" {
		return "", fmt.Errorf("%w: cannot encode tagged key in %s", ErrEncoding, format.JSONFormat)
	}
	switch key.Type {
	case ir.StringType:
		return key.String, nil
	case ir.NumberType:
		return numberText(key), nil
	case ir.BoolType:
		return strconv.FormatBool(key.Bool), nil
	case ir.NullType:
		return "null", nil
	}
	return "", fmt.Errorf("%w: cannot encode %s key in %s", ErrEncoding, key.Type, format.JSONFormat)
}

func writeJSONNL(buf *bytes.Buffer, es *EncState, depth int) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.indent*depth))
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// strings always encode
	_ = enc.Encode(s)
	// drop the newline Encode appends
	buf.Truncate(buf.Len() - 1)
}
