package jsonschema

import (
	"fmt"
	"math/big"
)

// validateMinimum implements "minimum". In Draft 4 a sibling
// exclusiveMinimum: true flips the comparison to strict; Draft 6+ minimum is
// always inclusive (exclusiveMinimum is its own independent keyword there).
func validateMinimum(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	bound, ok := toRat(s)
	if !ok {
		return emptySeq()
	}
	val, ok := toRat(instance)
	if !ok {
		return emptySeq()
	}
	strict := false
	if d.draft == Draft4 {
		if excl, ok := parent["exclusiveMinimum"].(bool); ok {
			strict = excl
		}
	}
	cmp := val.Cmp(bound)
	if cmp > 0 || (!strict && cmp == 0) {
		return emptySeq()
	}
	op := "less than"
	if strict {
		op = "less than or equal to"
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("%s is %s the minimum of %s", ratString(val), op, ratString(bound)),
		Code:         "minimum",
		Params:       map[string]any{"value": ratString(val), "bound": ratString(bound)},
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}

// validateMaximum implements "maximum", symmetric to validateMinimum.
func validateMaximum(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	bound, ok := toRat(s)
	if !ok {
		return emptySeq()
	}
	val, ok := toRat(instance)
	if !ok {
		return emptySeq()
	}
	strict := false
	if d.draft == Draft4 {
		if excl, ok := parent["exclusiveMaximum"].(bool); ok {
			strict = excl
		}
	}
	cmp := val.Cmp(bound)
	if cmp < 0 || (!strict && cmp == 0) {
		return emptySeq()
	}
	op := "greater than"
	if strict {
		op = "greater than or equal to"
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("%s is %s the maximum of %s", ratString(val), op, ratString(bound)),
		Code:         "maximum",
		Params:       map[string]any{"value": ratString(val), "bound": ratString(bound)},
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}

// validateExclusiveMinimumDraft4 implements the Draft 4 sibling-boolean form:
// the keyword itself is not a standalone numeric constraint, it only flips
// the behavior of a sibling "minimum". With no sibling minimum, it is a
// no-op.
func validateExclusiveMinimumDraft4(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	return emptySeq()
}

func validateExclusiveMaximumDraft4(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	return emptySeq()
}

// validateExclusiveMinimumIndependent implements Draft 6+ "exclusiveMinimum"
// as its own numeric, strict-inequality keyword.
func validateExclusiveMinimumIndependent(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	bound, ok := toRat(s)
	if !ok {
		return emptySeq()
	}
	val, ok := toRat(instance)
	if !ok {
		return emptySeq()
	}
	if val.Cmp(bound) > 0 {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("%s is less than or equal to the exclusive minimum of %s", ratString(val), ratString(bound)),
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}

// validateExclusiveMaximumIndependent implements Draft 6+ "exclusiveMaximum".
func validateExclusiveMaximumIndependent(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	bound, ok := toRat(s)
	if !ok {
		return emptySeq()
	}
	val, ok := toRat(instance)
	if !ok {
		return emptySeq()
	}
	if val.Cmp(bound) < 0 {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("%s is greater than or equal to the exclusive maximum of %s", ratString(val), ratString(bound)),
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}

// validateMultipleOf implements "multipleOf" using exact big.Rat division so
// decimal literals like 0.1 don't accumulate float rounding error.
func validateMultipleOf(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	divisor, ok := toRat(s)
	if !ok || divisor.Sign() == 0 {
		return emptySeq()
	}
	val, ok := toRat(instance)
	if !ok {
		return emptySeq()
	}
	quotient := new(big.Rat).Quo(val, divisor)
	if quotient.IsInt() {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("%s is not a multiple of %s", ratString(val), ratString(divisor)),
		Code:         "multipleOf",
		Params:       map[string]any{"value": ratString(val), "divisor": ratString(divisor)},
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}

func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.FloatString(10)
}
