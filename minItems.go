package jsonschema

import "fmt"

// validateMinItems implements "minItems".
func validateMinItems(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	bound, ok := asFloat64(s)
	if !ok {
		return emptySeq()
	}
	arr, ok := instance.([]any)
	if !ok {
		return emptySeq()
	}
	if float64(len(arr)) >= bound {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("array of length %d is shorter than the minimum of %v", len(arr), s),
		Code:         "minItems",
		Params:       map[string]any{"bound": s, "length": len(arr)},
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
