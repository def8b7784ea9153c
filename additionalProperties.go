package jsonschema

import (
	"fmt"
	"sort"
	"strings"
)

// validateAdditionalProperties implements "additionalProperties". Extras are
// instance keys not matched by a sibling "properties" name or a sibling
// "patternProperties" pattern. If the schema is an object, each extra value
// is validated against it; if false, any non-empty extras list is one error
// naming the extras.
func validateAdditionalProperties(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	obj, ok := instance.(map[string]any)
	if !ok {
		return emptySeq()
	}

	matched := matchedByProperties(parent["properties"], obj)
	for k := range propertiesMatchedByPatterns(parent["patternProperties"], obj) {
		matched[k] = true
	}

	var extras []string
	for k := range obj {
		if !matched[k] {
			extras = append(extras, k)
		}
	}
	if len(extras) == 0 {
		return emptySeq()
	}
	sort.Strings(extras)

	if asBool, ok := s.(bool); ok {
		if asBool {
			return emptySeq()
		}
		return oneErr(&ValidationError{
			Message:      fmt.Sprintf("additional properties not allowed: %s", strings.Join(extras, ", ")),
			Code:         "additionalProperties",
			Params:       map[string]any{"extras": strings.Join(extras, ", ")},
			Instance:     instance,
			Schema:       s,
			InstancePath: ictx.flatten(),
			SchemaPath:   sctx.flatten(),
		})
	}

	var seqs []errSeq
	for _, k := range extras {
		seqs = append(seqs, d.descendChild(obj[k], s, ictx.push(k), sctx, scope, refStack))
	}
	return concatSeq(seqs...)
}
