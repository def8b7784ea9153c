package jsonschema

import (
	"fmt"
	"sort"
)

// validatePatternProperties implements "patternProperties": for each
// (pattern, subschema), every instance key matching the compiled pattern is
// validated against it. An invalid pattern yields one error per pattern.
func validatePatternProperties(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	schemas, ok := s.(map[string]any)
	if !ok {
		return emptySeq()
	}
	obj, ok := instance.(map[string]any)
	if !ok {
		return emptySeq()
	}
	patterns := make([]string, 0, len(schemas))
	for p := range schemas {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var seqs []errSeq
	for _, pattern := range patterns {
		re, err := compileRegex(pattern)
		if err != nil {
			seqs = append(seqs, oneErr(&ValidationError{
				Message:      fmt.Sprintf("invalid regex pattern %q: %v", pattern, err),
				Instance:     instance,
				Schema:       s,
				InstancePath: ictx.flatten(),
				SchemaPath:   sctx.push(pattern).flatten(),
			}))
			continue
		}
		for _, key := range keys {
			if !re.MatchString(key) {
				continue
			}
			sub := schemas[pattern]
			seqs = append(seqs, d.descendChild(obj[key], sub, ictx.push(key), sctx.push(pattern), scope, refStack))
		}
	}
	return concatSeq(seqs...)
}

// propertiesMatchedByPatterns returns the set of obj keys matched by any
// pattern in a patternProperties schema object, used by additionalProperties
// to compute extras.
func propertiesMatchedByPatterns(patternPropsSchema any, obj map[string]any) map[string]bool {
	matched := make(map[string]bool)
	schemas, ok := patternPropsSchema.(map[string]any)
	if !ok {
		return matched
	}
	for pattern := range schemas {
		re, err := compileRegex(pattern)
		if err != nil {
			continue
		}
		for key := range obj {
			if re.MatchString(key) {
				matched[key] = true
			}
		}
	}
	return matched
}
