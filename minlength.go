package jsonschema

import (
	"fmt"
	"unicode/utf8"
)

// validateMinLength implements "minLength", counting Unicode scalar values.
func validateMinLength(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	bound, ok := asFloat64(s)
	if !ok {
		return emptySeq()
	}
	str, ok := instance.(string)
	if !ok {
		return emptySeq()
	}
	n := utf8.RuneCountInString(str)
	if float64(n) >= bound {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("length %d is less than the minimum length of %v", n, s),
		Code:         "minLength",
		Params:       map[string]any{"bound": s, "length": n},
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
