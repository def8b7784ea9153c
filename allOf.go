package jsonschema

import "fmt"

// validateAllOf implements "allOf": every subschema must succeed; their
// errors are concatenated with the subschema's index in the schema path.
func validateAllOf(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	subs, ok := s.([]any)
	if !ok {
		return emptySeq()
	}
	var seqs []errSeq
	for i, sub := range subs {
		idx := fmt.Sprint(i)
		seqs = append(seqs, d.descendChild(instance, sub, ictx, sctx.push(idx), scope, refStack))
	}
	return concatSeq(seqs...)
}
