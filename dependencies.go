package jsonschema

import (
	"fmt"
	"sort"
	"strings"
)

// validateDependencies implements "dependencies": each key names a property
// that, if present in the instance, triggers either an array of required
// property names or a subschema the instance must satisfy.
func validateDependencies(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	deps, ok := s.(map[string]any)
	if !ok {
		return emptySeq()
	}
	obj, ok := instance.(map[string]any)
	if !ok {
		return emptySeq()
	}

	keys := make([]string, 0, len(deps))
	for k := range deps {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var seqs []errSeq
	for _, trigger := range keys {
		if _, present := obj[trigger]; !present {
			continue
		}
		switch dep := deps[trigger].(type) {
		case []any:
			var missing []string
			for _, n := range dep {
				name, ok := n.(string)
				if !ok {
					continue
				}
				if _, ok := obj[name]; !ok {
					missing = append(missing, name)
				}
			}
			if len(missing) > 0 {
				seqs = append(seqs, oneErr(&ValidationError{
					Message:      fmt.Sprintf("property %q requires missing properties: %s", trigger, strings.Join(missing, ", ")),
					Instance:     instance,
					Schema:       s,
					InstancePath: ictx.flatten(),
					SchemaPath:   sctx.push(trigger).flatten(),
				}))
			}
		default:
			seqs = append(seqs, d.descendChild(instance, dep, ictx, sctx.push(trigger), scope, refStack))
		}
	}
	return concatSeq(seqs...)
}
