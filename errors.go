package jsonschema

import "errors"

// === Configuration errors ===
// These surface at schema-compile time, before any instance is validated.
var (
	// ErrInvalidSchemaType is returned when the root schema value is neither
	// an object nor a boolean.
	ErrInvalidSchemaType = errors.New("invalid schema type")

	// ErrInvalidID is returned when a string $id/id value cannot be parsed as a
	// URI reference. An $id/id whose value is not a string is ignored.
	ErrInvalidID = errors.New("invalid $id")

	// ErrInvalidRef names an invalid $ref value. No function in this package
	// returns it: a $ref whose value is not a string is not treated as a
	// reference, and the schema's other keywords are applied instead.
	ErrInvalidRef = errors.New("invalid $ref")

	// ErrUnknownDraft is returned when an explicit draft number is not 4, 6, or 7.
	ErrUnknownDraft = errors.New("unknown draft")

	// ErrSchemaDecode is returned when the raw schema bytes cannot be decoded as JSON.
	ErrSchemaDecode = errors.New("schema decode failed")
)

// === Validation-time, non-keyword errors ===
var (
	// ErrInstanceDecode is returned when the raw instance bytes cannot be decoded as JSON.
	ErrInstanceDecode = errors.New("instance decode failed")

	// ErrUnresolvableRef is the sentinel wrapped into a ValidationError when a
	// $ref cannot be resolved against the reference index or known meta-schemas.
	ErrUnresolvableRef = errors.New("can't resolve url")

	// ErrRefCycle is the sentinel wrapped into a ValidationError when a $ref
	// chain revisits a resource already on the active resolution stack.
	ErrRefCycle = errors.New("cyclic $ref loop detected")
)
