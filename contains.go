package jsonschema

import "fmt"

// validateContains implements "contains" (Draft 6+): at least one array
// element must validate against the schema. Speculative — per-candidate
// errors are never forwarded, only the summary failure.
func validateContains(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	arr, ok := instance.([]any)
	if !ok {
		return emptySeq()
	}
	for i, elem := range arr {
		idx := fmt.Sprint(i)
		if succeeds(d.descendChild(elem, s, ictx.push(idx), sctx, scope, refStack)) {
			return emptySeq()
		}
	}
	return oneErr(&ValidationError{
		Message:      "no array element matches the contains schema",
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
