package jsonschema

import "fmt"

// validateType implements the "type" keyword: schema is a string or array of
// strings, instance must match at least one named type.
func validateType(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	var names []string
	switch v := s.(type) {
	case string:
		names = []string{v}
	case []any:
		for _, n := range v {
			if str, ok := n.(string); ok {
				names = append(names, str)
			}
		}
	default:
		return emptySeq()
	}

	for _, name := range names {
		if matchesType(instance, name) {
			return emptySeq()
		}
	}
	actual := describeType(instance)
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("value must be of type %v, got %s", names, actual),
		Code:         "type",
		Params:       map[string]any{"types": names, "actual": actual},
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}

func matchesType(instance any, name string) bool {
	switch name {
	case "null":
		return instance == nil
	case "boolean":
		_, ok := instance.(bool)
		return ok
	case "object":
		_, ok := instance.(map[string]any)
		return ok
	case "array":
		_, ok := instance.([]any)
		return ok
	case "string":
		_, ok := instance.(string)
		return ok
	case "number":
		return isNumber(instance)
	case "integer":
		return isNumber(instance) && isIntegerValue(instance)
	default:
		return false
	}
}

func describeType(instance any) string {
	switch instance.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	default:
		if isNumber(instance) {
			return "number"
		}
		return "unknown"
	}
}
