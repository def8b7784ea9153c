package jsonschema

// validateUniqueItems implements "uniqueItems", using numeric-aware
// structural equality so [1, 1.0] is rejected but [1, "1"] is accepted.
func validateUniqueItems(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	want, ok := s.(bool)
	if !ok || !want {
		return emptySeq()
	}
	arr, ok := instance.([]any)
	if !ok {
		return emptySeq()
	}
	if uniqueElements(arr) {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      "array elements must be unique",
		Code:         "uniqueItems",
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
