package jsonschema

import (
	"math/big"
	"sort"
)

// deepEqual reports whether a and b are structurally equal, comparing
// numbers by mathematical value so that an integer-encoded 1 equals a
// float-encoded 1.0, regardless of how either value was decoded.
func deepEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, ok := bv[k]
			if !ok || !deepEqual(v, other) {
				return false
			}
		}
		return true
	default:
		an, aok := toRat(a)
		bn, bok := toRat(b)
		if aok && bok {
			return an.Cmp(bn) == 0
		}
		return false
	}
}

// hashKey produces a value comparable with ==, suitable for use as a map key,
// that is consistent with deepEqual: numerically-equal numbers (whatever
// their integer/float encoding) produce the same key, and structurally equal
// arrays/objects produce the same key.
func hashKey(v any) string {
	var b []byte
	b = appendHashKey(b, v)
	return string(b)
}

func appendHashKey(b []byte, v any) []byte {
	switch x := v.(type) {
	case nil:
		return append(b, 'n')
	case bool:
		if x {
			return append(b, 'T')
		}
		return append(b, 'F')
	case string:
		b = append(b, 's')
		return append(b, x...)
	case []any:
		b = append(b, '[')
		for _, e := range x {
			b = appendHashKey(b, e)
			b = append(b, ',')
		}
		return append(b, ']')
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b = append(b, '{')
		for _, k := range keys {
			b = append(b, 'k')
			b = append(b, k...)
			b = append(b, ':')
			b = appendHashKey(b, x[k])
			b = append(b, ',')
		}
		return append(b, '}')
	default:
		b = append(b, 'd')
		if r, ok := toRat(v); ok {
			return append(b, r.RatString()...)
		}
		return b
	}
}

// toRat converts a decoded JSON number (float64, json.Number, or one of the
// plain Go numeric types) to an exact big.Rat, normalizing away any
// integer-vs-float representation difference.
func toRat(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case float64:
		r := new(big.Rat)
		r.SetFloat64(n)
		return r, true
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int64:
		return new(big.Rat).SetInt64(n), true
	case jsonNumber:
		r := new(big.Rat)
		if _, ok := r.SetString(string(n)); ok {
			return r, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// uniqueElements reports whether every element of items is pairwise distinct
// under deepEqual/hashKey.
func uniqueElements(items []any) bool {
	seen := make(map[string][]any, len(items))
	for _, item := range items {
		k := hashKey(item)
		for _, other := range seen[k] {
			if deepEqual(item, other) {
				return false
			}
		}
		seen[k] = append(seen[k], item)
	}
	return true
}
