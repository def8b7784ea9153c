package jsonschema

import "fmt"

// validateFormat implements "format": look up the name in the active
// draft's table; an unknown format is silently accepted per spec. A
// non-string instance is always accepted (format only constrains strings).
func validateFormat(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	name, ok := s.(string)
	if !ok {
		return emptySeq()
	}
	str, ok := instance.(string)
	if !ok {
		return emptySeq()
	}
	check, ok := d.formats[name]
	if !ok {
		return emptySeq()
	}
	if check(str) {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("%q is not a valid %s", str, name),
		Code:         "format",
		Params:       map[string]any{"format": name, "value": str},
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
