package jsonschema

import "sort"

// validatePropertyNames implements "propertyNames" (Draft 6+): each instance
// object key is validated, as a synthetic string value, against the schema.
func validatePropertyNames(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	obj, ok := instance.(map[string]any)
	if !ok {
		return emptySeq()
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var seqs []errSeq
	for _, key := range keys {
		seqs = append(seqs, d.descendChild(key, s, ictx.push(key), sctx, scope, refStack))
	}
	return concatSeq(seqs...)
}
