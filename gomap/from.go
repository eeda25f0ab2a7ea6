package gomap

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fixcik/yexp/ir"

	"github.com/goccy/go-yaml"
)

// FromAny converts a value decoded by go-yaml, with or without
// yaml.UseOrderedMap, into a node. Maps other than yaml.MapSlice get sorted
// keys.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromNumber(strconv.FormatUint(x, 10)), nil
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i := range x {
			val, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			key, err := FromAny(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, xv := range x {
			val, err := FromAny(xv)
			if err != nil {
				return nil, err
			}
			m[k] = val
		}
		return ir.FromMap(m), nil
	}
	return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
}

// Unmarshal parses d with go-yaml, keeping mapping order.
func Unmarshal(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}
