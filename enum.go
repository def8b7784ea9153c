package jsonschema

// validateEnum implements "enum": instance must structurally equal some
// element of the schema array, using numeric-aware equality.
func validateEnum(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	values, ok := s.([]any)
	if !ok {
		return emptySeq()
	}
	for _, v := range values {
		if deepEqual(instance, v) {
			return emptySeq()
		}
	}
	return oneErr(&ValidationError{
		Message:      "value does not match any enum value",
		Code:         "enum",
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}

// validateConst implements "const" (Draft 6+): instance must numeric-aware
// equal the schema value.
func validateConst(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	if deepEqual(instance, s) {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      "value does not match const",
		Code:         "const",
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
