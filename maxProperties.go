package jsonschema

import "fmt"

// validateMaxProperties implements "maxProperties".
func validateMaxProperties(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	bound, ok := asFloat64(s)
	if !ok {
		return emptySeq()
	}
	obj, ok := instance.(map[string]any)
	if !ok {
		return emptySeq()
	}
	if float64(len(obj)) <= bound {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("object has %d properties, more than the maximum of %v", len(obj), s),
		Code:         "maxProperties",
		Params:       map[string]any{"bound": s, "count": len(obj)},
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
