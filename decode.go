package jsonschema

import (
	"bytes"

	"github.com/goccy/go-json"
)

// jsonNumber preserves a JSON number's original lexical form (so "1" and
// "1.0" remain distinguishable until a keyword validator asks for their
// mathematical value via toRat/isIntegerValue) instead of collapsing both
// into float64 during decode.
type jsonNumber = json.Number

// decodeJSON unmarshals data into a generic any tree, decoding numbers as
// jsonNumber rather than float64 so integer-vs-float distinctions survive.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// isIntegerValue reports whether v is a JSON number whose mathematical value
// is an integer, regardless of whether it was written with a decimal point
// or exponent (e.g. 1, 1.0, and 1e10 are all integral).
func isIntegerValue(v any) bool {
	r, ok := toRat(v)
	if !ok {
		return false
	}
	return r.IsInt()
}

// asFloat64 converts a decoded JSON number to float64 for magnitude
// comparisons where exactness is not required.
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case jsonNumber:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// isNumber reports whether v decoded from JSON as a number.
func isNumber(v any) bool {
	switch v.(type) {
	case float64, jsonNumber, int, int64:
		return true
	default:
		return false
	}
}
