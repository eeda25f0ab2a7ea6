package resolve

import (
	"github.com/fixcik/yexp/debug"
	"github.com/fixcik/yexp/ir"
)

const (
	// ExtendKey is the root mapping key naming base documents.
	ExtendKey = "extend"
	// IncludeTag marks a node to be replaced by the contents of a file.
	IncludeTag = "!include"
)

// Merge deep merges the mapping override over the mapping fallback.
//
// The result has the keys of override in order followed by the keys only
// fallback has. Where both values are mappings they are merged the same way.
// Otherwise the override value is taken unless it is null, in which case the
// fallback value is. Sequences are never merged element-wise. ExtendKey is
// left out of the result. Neither input is modified and the result shares no
// nodes with them.
func Merge(override, fallback *ir.Node) *ir.Node {
	oIndex := override.KeyIndex()
	fIndex := fallback.KeyIndex()
	kvs := make([]ir.KeyVal, 0, len(override.Fields)+len(fallback.Fields))
	for i, k := range override.Fields {
		if isExtendKey(k) {
			continue
		}
		var fv *ir.Node
		if j, ok := fIndex[k.KeyID()]; ok {
			fv = fallback.Values[j]
		}
		kvs = append(kvs, ir.KeyVal{Key: k.Clone(), Val: mergeValue(override.Values[i], fv)})
	}
	for i, k := range fallback.Fields {
		if _, ok := oIndex[k.KeyID()]; ok || isExtendKey(k) {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: k.Clone(), Val: fallback.Values[i].Clone()})
	}
	res := ir.FromKeyVals(kvs)
	if debug.Merge() {
		debug.Logf("merge override\n%s  over fallback\n%s  gives\n%s",
			debug.Doc{Node: override}, debug.Doc{Node: fallback}, debug.Doc{Node: res})
	}
	return res
}

func mergeValue(ov, fv *ir.Node) *ir.Node {
	switch {
	case ov.IsMapping() && fv.IsMapping():
		return Merge(ov, fv)
	case ov.IsNull() && fv == nil:
		return ir.Null()
	case ov.IsNull():
		return fv.Clone()
	}
	return ov.Clone()
}

func isExtendKey(k *ir.Node) bool {
	return k.Type == ir.StringType && k.Tag == "" && k.String == ExtendKey
}
