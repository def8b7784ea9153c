// Package jsonschema validates JSON instances against JSON Schema documents
// conforming to Draft 4, Draft 6, or Draft 7.
package jsonschema
