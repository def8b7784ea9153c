package jsonschema

import (
	"fmt"
	"strings"
)

// validateRequired implements "required": every listed name must be present
// as an object key; missing names are reported together in one error.
func validateRequired(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	names, ok := s.([]any)
	if !ok {
		return emptySeq()
	}
	obj, ok := instance.(map[string]any)
	if !ok {
		return emptySeq()
	}
	var missing []string
	for _, n := range names {
		name, ok := n.(string)
		if !ok {
			continue
		}
		if _, present := obj[name]; !present {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("missing required properties: %s", strings.Join(missing, ", ")),
		Code:         "required",
		Params:       map[string]any{"missing": strings.Join(missing, ", ")},
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
