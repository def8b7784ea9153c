package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, schema string) *Config {
	t.Helper()
	cfg, err := CompileSchema([]byte(schema))
	require.NoError(t, err)
	return cfg
}

func isValid(t *testing.T, cfg *Config, instance string) bool {
	t.Helper()
	result, err := cfg.Validate([]byte(instance))
	require.NoError(t, err)
	return result.IsValid()
}

func TestEnumAndConst(t *testing.T) {
	cfg := mustCompile(t, `{"enum": [1, "two", true]}`)
	assert.True(t, isValid(t, cfg, `1`))
	assert.True(t, isValid(t, cfg, `1.0`), "enum uses numeric-aware equality")
	assert.True(t, isValid(t, cfg, `"two"`))
	assert.False(t, isValid(t, cfg, `"three"`))

	cfg = mustCompile(t, `{"const": 1}`)
	assert.True(t, isValid(t, cfg, `1.0`))
	assert.False(t, isValid(t, cfg, `2`))
}

func TestUniqueItemsNumericVsStringDistinction(t *testing.T) {
	cfg := mustCompile(t, `{"uniqueItems": true}`)
	assert.False(t, isValid(t, cfg, `[1, 1.0]`), "testable property 8: numeric equality rejects [1, 1.0]")
	assert.True(t, isValid(t, cfg, `[1, "1"]`), "testable property 8: accepts [1, \"1\"]")
}

func TestMinItemsMaxItemsBoundary(t *testing.T) {
	cfg := mustCompile(t, `{"minItems": 0, "maxItems": 2}`)
	assert.True(t, isValid(t, cfg, `[]`))
	assert.True(t, isValid(t, cfg, `[1, 2]`))
	assert.False(t, isValid(t, cfg, `[1, 2, 3]`))
}

func TestItemsTupleAndAdditionalItems(t *testing.T) {
	cfg := mustCompile(t, `{
		"items": [{"type": "integer"}, {"type": "string"}],
		"additionalItems": false
	}`)
	assert.True(t, isValid(t, cfg, `[1, "a"]`))
	assert.False(t, isValid(t, cfg, `[1, "a", "extra"]`))
	assert.False(t, isValid(t, cfg, `["not-int", "a"]`))
}

func TestContains(t *testing.T) {
	cfg := mustCompile(t, `{"contains": {"type": "integer", "minimum": 5}}`)
	assert.True(t, isValid(t, cfg, `["a", 1, 6]`))
	assert.False(t, isValid(t, cfg, `["a", 1, 2]`))
}

func TestDependenciesArrayForm(t *testing.T) {
	cfg := mustCompile(t, `{
		"dependencies": {"credit_card": ["billing_address"]}
	}`)
	assert.True(t, isValid(t, cfg, `{"name": "a"}`))
	assert.True(t, isValid(t, cfg, `{"credit_card": "1234", "billing_address": "x"}`))
	assert.False(t, isValid(t, cfg, `{"credit_card": "1234"}`))
}

func TestDependenciesSchemaForm(t *testing.T) {
	cfg := mustCompile(t, `{
		"dependencies": {"credit_card": {"required": ["billing_address"]}}
	}`)
	assert.False(t, isValid(t, cfg, `{"credit_card": "1234"}`))
}

func TestPropertyNames(t *testing.T) {
	cfg := mustCompile(t, `{"propertyNames": {"pattern": "^[a-z]+$"}}`)
	assert.True(t, isValid(t, cfg, `{"abc": 1}`))
	assert.False(t, isValid(t, cfg, `{"ABC": 1}`))
}

func TestAnyOfOneOfNot(t *testing.T) {
	cfg := mustCompile(t, `{"anyOf": [{"type": "integer"}, {"type": "string"}]}`)
	assert.True(t, isValid(t, cfg, `1`))
	assert.True(t, isValid(t, cfg, `"a"`))
	assert.False(t, isValid(t, cfg, `true`))

	cfg = mustCompile(t, `{"oneOf": [{"multipleOf": 2}, {"multipleOf": 3}]}`)
	assert.True(t, isValid(t, cfg, `4`))
	assert.True(t, isValid(t, cfg, `9`))
	assert.False(t, isValid(t, cfg, `6`), "6 matches both multipleOf branches")
	assert.False(t, isValid(t, cfg, `5`))

	cfg = mustCompile(t, `{"not": {"type": "integer"}}`)
	assert.True(t, isValid(t, cfg, `"a"`))
	assert.False(t, isValid(t, cfg, `1`))
}

func TestPatternPropertiesAndAdditionalProperties(t *testing.T) {
	cfg := mustCompile(t, `{
		"patternProperties": {"^S_": {"type": "string"}, "^I_": {"type": "integer"}},
		"additionalProperties": false
	}`)
	assert.True(t, isValid(t, cfg, `{"S_name": "a", "I_count": 1}`))
	assert.False(t, isValid(t, cfg, `{"S_name": 1}`))
	assert.False(t, isValid(t, cfg, `{"other": 1}`))
}

func TestRequiredListsAllMissing(t *testing.T) {
	cfg := mustCompile(t, `{"required": ["a", "b", "c"]}`)
	result, err := cfg.Validate([]byte(`{"a": 1}`))
	require.NoError(t, err)
	errs := result.ToSlice()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "b")
	assert.Contains(t, errs[0].Message, "c")
}

func TestMinMaxProperties(t *testing.T) {
	cfg := mustCompile(t, `{"minProperties": 1, "maxProperties": 2}`)
	assert.False(t, isValid(t, cfg, `{}`))
	assert.True(t, isValid(t, cfg, `{"a": 1}`))
	assert.False(t, isValid(t, cfg, `{"a": 1, "b": 2, "c": 3}`))
}

func TestFormatDateTimeAndUnknownFormat(t *testing.T) {
	cfg := mustCompile(t, `{"format": "date-time"}`)
	assert.True(t, isValid(t, cfg, `"2026-07-31T12:00:00Z"`))
	assert.False(t, isValid(t, cfg, `"not-a-date"`))

	cfg = mustCompile(t, `{"format": "some-unregistered-format"}`)
	assert.True(t, isValid(t, cfg, `"anything"`), "unknown formats are silently accepted")
}

func TestSchemaBooleanNormalizationInDraft6Plus(t *testing.T) {
	cfg := mustCompile(t, `{
		"$schema": "http://json-schema.org/draft-06/schema#",
		"items": true
	}`)
	assert.True(t, isValid(t, cfg, `[1, "a", null]`))

	cfg = mustCompile(t, `{
		"$schema": "http://json-schema.org/draft-06/schema#",
		"items": false
	}`)
	assert.True(t, isValid(t, cfg, `[]`))
	assert.False(t, isValid(t, cfg, `[1]`))
}

func TestDraft4IDKeywordSpelling(t *testing.T) {
	cfg := mustCompile(t, `{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"id": "http://example.com/schema4",
		"definitions": {"x": {"type": "integer"}},
		"properties": {"a": {"$ref": "#/definitions/x"}}
	}`)
	assert.True(t, isValid(t, cfg, `{"a": 1}`))
	assert.False(t, isValid(t, cfg, `{"a": "nope"}`))
}

func TestDraft4SkipsPostDraft4Keywords(t *testing.T) {
	cfg := mustCompile(t, `{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"const": "unrelated",
		"contains": {"type": "integer"},
		"propertyNames": {"pattern": "^[A-Z]+$"},
		"if": {"type": "integer"},
		"then": {"minimum": 10}
	}`)
	assert.True(t, isValid(t, cfg, `["a", "b", "c"]`))
	assert.True(t, isValid(t, cfg, `{"lowercase": 1}`))
	assert.True(t, isValid(t, cfg, `3`))
}
