package jsonschema

// validateNot implements "not": succeeds iff the subschema fails.
func validateNot(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	if !succeeds(d.descendChild(instance, s, ictx, sctx, scope, refStack)) {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      "value matches the not schema",
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
