package jsonschema

import (
	"encoding/base64"
	"fmt"

	"github.com/goccy/go-json"
	goyaml "github.com/goccy/go-yaml"
)

// validateContentEncoding implements the supplemented "contentEncoding"
// keyword: when the value is "base64", the instance string must decode.
func validateContentEncoding(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	encoding, ok := s.(string)
	if !ok {
		return emptySeq()
	}
	str, ok := instance.(string)
	if !ok {
		return emptySeq()
	}
	if encoding != "base64" {
		return emptySeq()
	}
	if _, err := base64.StdEncoding.DecodeString(str); err != nil {
		return oneErr(&ValidationError{
			Message:      fmt.Sprintf("value is not valid base64: %v", err),
			Instance:     instance,
			Schema:       s,
			InstancePath: ictx.flatten(),
			SchemaPath:   sctx.flatten(),
		})
	}
	return emptySeq()
}

// validateContentMediaType implements the supplemented "contentMediaType"
// keyword: the (decoded, if contentEncoding is also present) string must
// parse per the named media type. If a sibling "contentSchema" is present
// and parsing succeeds, the parsed value is further validated against it;
// this descent extends the schema path by "contentSchema" but not the
// instance path, since the parsed content is synthetic, not a structural
// child of the instance.
func validateContentMediaType(d *descender, kw string, s any, parent map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	mediaType, ok := s.(string)
	if !ok {
		return emptySeq()
	}
	str, ok := instance.(string)
	if !ok {
		return emptySeq()
	}

	raw := []byte(str)
	if encoding, ok := parent["contentEncoding"].(string); ok && encoding == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(str)
		if err != nil {
			return emptySeq() // already reported by validateContentEncoding
		}
		raw = decoded
	}

	var parsed any
	var err error
	switch mediaType {
	case "application/json":
		err = json.Unmarshal(raw, &parsed)
	case "application/yaml", "text/yaml":
		err = goyaml.Unmarshal(raw, &parsed)
	default:
		return emptySeq()
	}
	if err != nil {
		return oneErr(&ValidationError{
			Message:      fmt.Sprintf("content is not valid %s: %v", mediaType, err),
			Instance:     instance,
			Schema:       s,
			InstancePath: ictx.flatten(),
			SchemaPath:   sctx.flatten(),
		})
	}

	contentSchema, ok := parent["contentSchema"]
	if !ok {
		return emptySeq()
	}
	return d.descendChild(parsed, contentSchema, ictx, sctx.parent.push("contentSchema"), scope, refStack)
}
