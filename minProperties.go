package jsonschema

import "fmt"

// validateMinProperties implements "minProperties".
func validateMinProperties(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	bound, ok := asFloat64(s)
	if !ok {
		return emptySeq()
	}
	obj, ok := instance.(map[string]any)
	if !ok {
		return emptySeq()
	}
	if float64(len(obj)) >= bound {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("object has %d properties, fewer than the minimum of %v", len(obj), s),
		Code:         "minProperties",
		Params:       map[string]any{"bound": s, "count": len(obj)},
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
