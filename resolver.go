package jsonschema

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// sentinelBaseURI is used as the schema's base when no root identifier is
// present.
const sentinelBaseURI = "document:///"

// refIndex maps an absolute URI string to the subschema found at that
// location, built once per Config by walking the schema tree.
type refIndex struct {
	byURI    map[string]any
	root     any
	rootBase string
}

// buildRefIndex walks schema depth-first, honoring dr's $id/id spelling as a
// base-URI boundary, and returns the populated index plus the resolved root
// base URI.
func buildRefIndex(schema any, dr Draft) (*refIndex, string, error) {
	idx := &refIndex{byURI: make(map[string]any), root: schema}

	rootBase := sentinelBaseURI
	if obj, ok := schema.(map[string]any); ok {
		if id, ok := obj[dr.idKeyword()].(string); ok && id != "" {
			joined, err := joinURI(rootBase, id)
			if err != nil {
				return nil, "", fmt.Errorf("%w: %s: %v", ErrInvalidID, id, err)
			}
			rootBase = joined
		}
	}
	idx.byURI[rootBase] = schema
	idx.rootBase = rootBase

	if err := indexWalk(idx, schema, rootBase, dr); err != nil {
		return nil, "", err
	}
	return idx, rootBase, nil
}

// indexWalk generically descends any JSON tree (not just recognized
// keywords) looking for $id/id-bearing subschema objects, joining each
// against the running base URI.
func indexWalk(idx *refIndex, node any, base string, dr Draft) error {
	switch v := node.(type) {
	case map[string]any:
		childBase := base
		if id, ok := v[dr.idKeyword()].(string); ok && id != "" {
			joined, err := joinURI(base, id)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidID, id, err)
			}
			childBase = joined
			idx.byURI[childBase] = v
		}
		for _, child := range v {
			if err := indexWalk(idx, child, childBase, dr); err != nil {
				return err
			}
		}
	case []any:
		for _, child := range v {
			if err := indexWalk(idx, child, base, dr); err != nil {
				return err
			}
		}
	}
	return nil
}

// joinURI resolves ref against base per RFC 3986.
func joinURI(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

// splitFragment separates a URI into its resource (fragment cleared) and its
// URL-decoded fragment.
func splitFragment(uri string) (resource, fragment string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", err
	}
	frag := u.Fragment
	u.Fragment = ""
	return u.String(), frag, nil
}

// resolveRef resolves a $ref string against the current scope chain,
// returning the target subschema, the new base URI to push onto scope (the
// resolved resource with its fragment cleared, per section 4.5), and the
// full resolved URI (resource plus fragment) that identifies this specific
// reference target for cycle detection — two different fragments into the
// same resource must not be confused with one another.
func (d *descender) resolveRef(ref string, scope *scopeNode) (target any, base string, full string, err error) {
	chain := append(scope.chain(), ref)
	resolved := d.refIndex.rootBase
	for _, uri := range chain {
		joined, joinErr := joinURI(resolved, uri)
		if joinErr != nil {
			return nil, "", "", joinErr
		}
		resolved = joined
	}

	resource, fragment, err := splitFragment(resolved)
	if err != nil {
		return nil, "", "", err
	}

	// An absolute URI (including fragment) that exactly matches a $id
	// elsewhere in the tree wins outright, before pointer lookup.
	if t, ok := d.refIndex.byURI[resolved]; ok {
		return t, resource, resolved, nil
	}

	switch {
	case resource == sentinelBaseURI:
		target = d.refIndex.root
	case d.metaSchemas[resource] != nil:
		target = d.metaSchemas[resource]
	default:
		t, ok := d.refIndex.byURI[resource]
		if !ok {
			return nil, "", "", fmt.Errorf("%w: %s", ErrUnresolvableRef, resolved)
		}
		target = t
	}

	if fragment == "" || fragment == "/" {
		return target, resource, resolved, nil
	}

	nav, err := navigatePointer(target, fragment)
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: %s: %v", ErrUnresolvableRef, resolved, err)
	}
	return nav, resource, resolved, nil
}

// navigatePointer treats fragment as a JSON Pointer (with or without a
// leading "/", matching the '#/a/b' and '#a/b' conventions seen in the
// wild) and walks target, a generic map[string]any/[]any tree.
func navigatePointer(target any, fragment string) (any, error) {
	raw := fragment
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	tokens, err := jsonpointer.Parse(raw)
	if err != nil {
		return nil, err
	}
	cur := target
	for _, tok := range tokens {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[tok]
			if !ok {
				return nil, fmt.Errorf("segment %q not found", tok)
			}
			cur = v
		case []any:
			idx, err := pointerIndex(tok, len(node))
			if err != nil {
				return nil, err
			}
			cur = node[idx]
		default:
			return nil, fmt.Errorf("segment %q not found", tok)
		}
	}
	return cur, nil
}

func pointerIndex(tok string, length int) (int, error) {
	n := 0
	if tok == "-" {
		return 0, fmt.Errorf("array index '-' not resolvable")
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid array index %q", tok)
		}
		n = n*10 + int(c-'0')
	}
	if n < 0 || n >= length {
		return 0, fmt.Errorf("array index %d out of range", n)
	}
	return n, nil
}
