package jsonschema

import (
	"fmt"
	"regexp"
	"sync"
)

var regexCache sync.Map // pattern string -> *regexp.Regexp

func compileRegex(pattern string) (*regexp.Regexp, error) {
	if cached, ok := regexCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	regexCache.Store(pattern, re)
	return re, nil
}

// validatePattern implements "pattern": the schema string compiles as a
// regex (RE2 dialect) and must match the instance string.
func validatePattern(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	pattern, ok := s.(string)
	if !ok {
		return emptySeq()
	}
	str, ok := instance.(string)
	if !ok {
		return emptySeq()
	}
	re, err := compileRegex(pattern)
	if err != nil {
		return oneErr(&ValidationError{
			Message:      fmt.Sprintf("invalid regex pattern %q: %v", pattern, err),
			Instance:     instance,
			Schema:       s,
			InstancePath: ictx.flatten(),
			SchemaPath:   sctx.flatten(),
		})
	}
	if re.MatchString(str) {
		return emptySeq()
	}
	return oneErr(&ValidationError{
		Message:      fmt.Sprintf("value does not match pattern %q", pattern),
		Code:         "pattern",
		Params:       map[string]any{"pattern": pattern},
		Instance:     instance,
		Schema:       s,
		InstancePath: ictx.flatten(),
		SchemaPath:   sctx.flatten(),
	})
}
