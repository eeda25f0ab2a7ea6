package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fixcik/yexp/ir"

	"github.com/tidwall/jsonc"
)

// parseJSON reads one JSON value, allowing comments and trailing commas.
// Objects keep their key order.
func parseJSON(d []byte) (*ir.Node, error) {
	d = jsonc.ToJSON(d)
	if len(bytes.TrimSpace(d)) == 0 {
		return ir.Null(), nil
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingJSON
	}
	return res, nil
}

func jsonValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			var kvs []ir.KeyVal
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrParse, err)
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("%w: expected object key, got %v", ErrParse, kt)
				}
				val, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrParse, err)
			}
			return ir.FromKeyVals(kvs), nil
		case '[':
			vals := []*ir.Node{}
			for dec.More() {
				val, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				vals = append(vals, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrParse, err)
			}
			return ir.FromSlice(vals), nil
		}
		return nil, fmt.Errorf("%w: unexpected %v", ErrParse, v)
	case string:
		return ir.FromString(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		if f, err := v.Float64(); err == nil {
			return ir.FromFloat(f), nil
		}
		return ir.FromNumber(v.String()), nil
	case bool:
		return ir.FromBool(v), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}
