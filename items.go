package jsonschema

import "fmt"

// validateItems implements "items". A single (object or, Draft 6+, boolean)
// schema applies to every array element. An array of schemas applies
// pairwise to the first N elements ("tuple validation"); additionalItems
// governs the rest.
func validateItems(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	arr, ok := instance.([]any)
	if !ok {
		return emptySeq()
	}

	if tuple, ok := s.([]any); ok {
		n := len(tuple)
		if n > len(arr) {
			n = len(arr)
		}
		var seqs []errSeq
		for i := 0; i < n; i++ {
			idx := fmt.Sprint(i)
			seqs = append(seqs, d.descendChild(arr[i], tuple[i], ictx.push(idx), sctx.push(idx), scope, refStack))
		}
		return concatSeq(seqs...)
	}

	if !d.draft.allowsBooleanSchema() {
		if _, isBool := s.(bool); isBool {
			return emptySeq()
		}
	}
	var seqs []errSeq
	for i, elem := range arr {
		idx := fmt.Sprint(i)
		seqs = append(seqs, d.descendChild(elem, s, ictx.push(idx), sctx, scope, refStack))
	}
	return concatSeq(seqs...)
}
