package jsonschema

import "fmt"

// validateMaxItems implements "maxItems". The message names the overrun
// ("longer than the maximum"), not the underflow condition minItems reports.
func validateMaxItems(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	bound, ok := asFloat64(s)
	if !ok {
		return emptySeq()
	}
	arr, ok := instance.([]any)
	if !ok {
		return emptySeq()
	}
	if float64(len(arr)) <= bound {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("array of length %d is longer than the maximum of %v", len(arr), s),
		Code:         "maxItems",
		Params:       map[string]any{"bound": s, "length": len(arr)},
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
