package jsonschema

import (
	"fmt"
	"sort"
)

// refStackNode tracks the $ref targets on the active recursion path, each
// keyed by its resolved URI together with the instance location it is being
// applied to, so a $ref chain that revisits a URI for the same instance node
// is reported as a cycle rather than recursing until the stack overflows.
type refStackNode struct {
	uri    string
	parent *refStackNode
}

func (n *refStackNode) contains(uri string) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.uri == uri {
			return true
		}
	}
	return false
}

func (n *refStackNode) push(uri string) *refStackNode {
	return &refStackNode{uri: uri, parent: n}
}

// descender holds everything the recursive descent needs that does not vary
// call-to-call: the active draft's keyword/format tables, the reference
// index, the known meta-schemas, and ancillary caches. It is built once per
// Config and is safe to share across concurrent Validate calls.
type descender struct {
	draft       Draft
	keywords    map[string]keywordValidator
	formats     map[string]formatChecker
	refIndex    *refIndex
	metaSchemas map[string]any
	translator  *Translator
}

// descend is the engine's single recursive entry point. It dispatches by
// schema shape and, for object schemas, walks keywords in a fixed
// deterministic order (not the map's randomized iteration order) so that
// collect-all error ordering is reproducible.
func (d *descender) descend(instance, schema any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	switch s := schema.(type) {
	case bool:
		if s {
			return emptySeq()
		}
		return oneErr(&ValidationError{
			Message:      "false schema always fails",
			Instance:     instance,
			Schema:       schema,
			InstancePath: ictx.flatten(),
			SchemaPath:   sctx.flatten(),
		})
	case map[string]any:
		if ref, ok := s["$ref"].(string); ok {
			return d.descendRef(ref, s, instance, ictx, sctx, scope, refStack)
		}
		return d.descendObject(s, instance, ictx, sctx, scope, refStack)
	default:
		return oneErr(&ValidationError{
			Message:      "invalid schema",
			Instance:     instance,
			Schema:       schema,
			InstancePath: ictx.flatten(),
			SchemaPath:   sctx.flatten(),
		})
	}
}

// descendObject dispatches every recognized keyword in a schema object
// (without $ref) in a fixed order, flat-mapping each validator's errors with
// the schema path extended by that keyword.
func (d *descender) descendObject(s map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return func(yield func(*ValidationError) bool) {
		for _, k := range keys {
			validator, ok := d.keywords[k]
			if !ok {
				continue
			}
			seq := validator(d, k, s[k], s, instance, ictx, sctx.push(k), scope, refStack)
			stop := false
			seq(func(e *ValidationError) bool {
				if !yield(e) {
					stop = true
					return false
				}
				return true
			})
			if stop {
				return
			}
		}
	}
}

// descendRef resolves ref and descends into the target, per section 4.5:
// the instance path is unchanged, the schema path frame advances to "$ref",
// and the scope chain is extended by the reference's resolved base URI.
func (d *descender) descendRef(ref string, s map[string]any, instance any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	target, base, full, err := d.resolveRef(ref, scope)
	refSctx := sctx.push("$ref")
	if err != nil {
		return oneErr(&ValidationError{
			Message:      err.Error(),
			Instance:     instance,
			Schema:       s,
			InstancePath: ictx.flatten(),
			SchemaPath:   refSctx.flatten(),
			Unwrap:       unwrapSentinel(err),
		})
	}
	// ictx is unchanged by $ref and by the in-place applicators, so the same
	// pointer means the same instance node; a recursive $ref that has moved
	// on to a child instance is not a cycle.
	key := fmt.Sprintf("%p %s", ictx, full)
	if refStack.contains(key) {
		return oneErr(&ValidationError{
			Message:      ErrRefCycle.Error() + ": " + full,
			Code:         "refCycle",
			Params:       map[string]any{"uri": full},
			Instance:     instance,
			Schema:       s,
			InstancePath: ictx.flatten(),
			SchemaPath:   refSctx.flatten(),
			Unwrap:       ErrRefCycle,
		})
	}
	newScope := scope.push(base)
	return d.descend(instance, target, ictx, refSctx, newScope, refStack.push(key))
}

func unwrapSentinel(err error) error {
	if err == nil {
		return nil
	}
	return ErrUnresolvableRef
}

// keywordValidator implementations call this to recurse into a child
// subschema, pushing the instance/schema path steps the keyword owns. If the
// schema object itself carries its own $id/id, a new scope frame is pushed
// too (see SPEC_FULL.md 4.5), in addition to the frame pushed on $ref
// traversal, so identifiers reached by ordinary keyword descent still anchor
// further references correctly.
func (d *descender) descendChild(instance, schema any, ictx, sctx *pathNode, scope *scopeNode, refStack *refStackNode) errSeq {
	if obj, ok := schema.(map[string]any); ok {
		if id, ok := obj[d.draft.idKeyword()].(string); ok && id != "" {
			if joined, err := joinURI(scope.current(d), id); err == nil {
				scope = scope.push(joined)
			}
		}
	}
	return d.descend(instance, schema, ictx, sctx, scope, refStack)
}

// current returns the innermost base URI on the chain, or the document root
// base if the chain is empty.
func (n *scopeNode) current(d *descender) string {
	if n == nil {
		return d.refIndex.rootBase
	}
	return n.baseURI
}
