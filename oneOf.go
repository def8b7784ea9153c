package jsonschema

import "fmt"

// validateOneOf implements "oneOf": succeeds iff exactly one subschema
// succeeds. The scan stops once a second match is found, since neither the
// exact count nor which matched beyond "more than one" is reported.
func validateOneOf(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	subs, ok := s.([]any)
	if !ok {
		return emptySeq()
	}
	matches := 0
	for i, sub := range subs {
		idx := fmt.Sprint(i)
		if succeeds(d.descendChild(instance, sub, ictx, sctx.push(idx), scope, refStack)) {
			matches++
			if matches > 1 {
				break
			}
		}
	}
	switch matches {
	case 1:
		return emptySeq()
	case 0:
		return oneErr(&ValidationError{
			Message:      "value matches none of the oneOf schemas",
			Instance:     instance,
			Schema:       s,
			InstancePath: ictx.flatten(),
			SchemaPath:   sctx.flatten(),
		})
	default:
		return oneErr(&ValidationError{
			Message:      "value matches more than one of the oneOf schemas",
			Instance:     instance,
			Schema:       s,
			InstancePath: ictx.flatten(),
			SchemaPath:   sctx.flatten(),
		})
	}
}
