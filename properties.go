package jsonschema

import "sort"

// validateProperties implements "properties": for each (name, subschema) in
// the schema whose name the instance object also has, descend with both
// paths extended by the name.
func validateProperties(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	schemas, ok := s.(map[string]any)
	if !ok {
		return emptySeq()
	}
	obj, ok := instance.(map[string]any)
	if !ok {
		return emptySeq()
	}
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var seqs []errSeq
	for _, name := range names {
		value, present := obj[name]
		if !present {
			continue
		}
		sub := schemas[name]
		seqs = append(seqs, d.descendChild(value, sub, ictx.push(name), sctx.push(name), scope, refStack))
	}
	return concatSeq(seqs...)
}

// matchedByProperties reports which keys of obj are named directly under a
// "properties" schema object; used by additionalProperties to compute
// extras.
func matchedByProperties(propsSchema any, obj map[string]any) map[string]bool {
	matched := make(map[string]bool)
	schemas, ok := propsSchema.(map[string]any)
	if !ok {
		return matched
	}
	for name := range obj {
		if _, ok := schemas[name]; ok {
			matched[name] = true
		}
	}
	return matched
}
