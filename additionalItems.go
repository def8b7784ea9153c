package jsonschema

import "fmt"

// validateAdditionalItems implements "additionalItems", active only when a
// sibling "items" is an array (tuple validation). Elements beyond the tuple
// length are validated against this schema; false with excess elements is
// one error.
func validateAdditionalItems(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	tuple, ok := parent["items"].([]any)
	if !ok {
		return emptySeq()
	}
	arr, ok := instance.([]any)
	if !ok || len(arr) <= len(tuple) {
		return emptySeq()
	}
	extra := arr[len(tuple):]

	if asBool, ok := s.(bool); ok {
		if asBool {
			return emptySeq()
		}
		return oneErr(&ValidationError{
			Message:      fmt.Sprintf("array has %d additional items beyond the %d defined by items", len(extra), len(tuple)),
			Instance:     instance,
			Schema:       s,
			InstancePath: ictx.flatten(),
			SchemaPath:   sctx.flatten(),
		})
	}

	var seqs []errSeq
	for i, elem := range extra {
		idx := fmt.Sprint(len(tuple) + i)
		seqs = append(seqs, d.descendChild(elem, s, ictx.push(idx), sctx, scope, refStack))
	}
	return concatSeq(seqs...)
}
