package jsonschema

// validateIf implements "if"/"then"/"else" (Draft 6+). The "if" subschema is
// evaluated speculatively (its errors are always discarded). If it succeeds
// and a sibling "then" is present, descend into "then" with the schema-path
// frame replacing "if" (so errors report "then", not "if"); symmetrically
// for "else" when "if" fails.
func validateIf(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	ifSucceeds := succeeds(d.descendChild(instance, s, ictx, sctx, scope, refStack))

	if ifSucceeds {
		then, ok := parent["then"]
		if !ok {
			return emptySeq()
		}
		return d.descendChild(instance, then, ictx, sctx.replace("then"), scope, refStack)
	}

	elseSchema, ok := parent["else"]
	if !ok {
		return emptySeq()
	}
	return d.descendChild(instance, elseSchema, ictx, sctx.replace("else"), scope, refStack)
}

// validateNoop is registered for a lone "then"/"else" encountered without a
// sibling "if" (validateIf consumes them via the parent schema, not through
// normal dispatch) so they are recognized keywords that simply do nothing,
// rather than falling through to the unknown-keyword skip path by accident
// of table construction.
func validateNoop(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	return emptySeq()
}
