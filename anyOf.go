package jsonschema

import "fmt"

// validateAnyOf implements "anyOf": succeeds iff any subschema succeeds;
// otherwise one summary error. Partial-match errors are never forwarded.
func validateAnyOf(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	subs, ok := s.([]any)
	if !ok {
		return emptySeq()
	}
	for i, sub := range subs {
		idx := fmt.Sprint(i)
		if succeeds(d.descendChild(instance, sub, ictx, sctx.push(idx), scope, refStack)) {
			return emptySeq()
		}
	}
	return oneErr(&ValidationError{
		Message:      "value matches none of the anyOf schemas",
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
