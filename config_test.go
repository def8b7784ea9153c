package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSchemaDraftDetection(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{"$schema": "http://json-schema.org/draft-04/schema#", "type": "integer"}`))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.DraftNumber())

	cfg, err = CompileSchema([]byte(`{"type": "integer"}`))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.DraftNumber(), "Draft 7 is the default when $schema is absent")

	cfg, err = CompileSchema([]byte(`{"type": "integer"}`), WithDraft(Draft6))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.DraftNumber(), "WithDraft overrides the Draft 7 default")
}

func TestCompileSchemaRejectsInvalidType(t *testing.T) {
	_, err := CompileSchema([]byte(`"not a schema"`))
	require.ErrorIs(t, err, ErrInvalidSchemaType)
}

func TestCompileSchemaRejectsInvalidJSON(t *testing.T) {
	_, err := CompileSchema([]byte(`{not json`))
	require.ErrorIs(t, err, ErrSchemaDecode)
}

// S1: {"type": "integer"} against "string" -> one error at / / /type.
func TestScenarioS1TypeMismatch(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{"type": "integer"}`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`"string"`))
	require.NoError(t, err)

	errs := result.ToSlice()
	require.Len(t, errs, 1)
	assert.Equal(t, "/", errs[0].InstancePointer())
	assert.Equal(t, "/type", errs[0].SchemaPointer())
}

// S2: nested properties/type mismatch.
func TestScenarioS2NestedPropertyType(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{"properties": {"foo": {"type": "integer"}}}`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`{"foo": "bar"}`))
	require.NoError(t, err)

	errs := result.ToSlice()
	require.Len(t, errs, 1)
	assert.Equal(t, "/foo", errs[0].InstancePointer())
	assert.Equal(t, "/properties/foo/type", errs[0].SchemaPointer())
}

// S3: additionalProperties: false names the unexpected extras.
func TestScenarioS3AdditionalPropertiesNamesExtras(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{
		"properties": {"foo": {"type": "integer"}},
		"additionalProperties": false
	}`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`{"foo": 42, "bar": 1, "baz": 2}`))
	require.NoError(t, err)

	errs := result.ToSlice()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "bar")
	assert.Contains(t, errs[0].Message, "baz")
	assert.Equal(t, "/additionalProperties", errs[0].SchemaPointer())
}

// S4: $ref resolves within the same document via a JSON Pointer fragment.
func TestScenarioS4RefResolvesLocalPointer(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{
		"$ref": "#/defs/x",
		"defs": {"x": {"type": "boolean"}}
	}`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`true`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}

// S5: allOf reports the failing branch's index in the schema path.
func TestScenarioS5AllOfIndexedPath(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{"allOf": [{"type": "integer"}, {"minimum": 10}]}`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`5`))
	require.NoError(t, err)

	errs := result.ToSlice()
	require.Len(t, errs, 1)
	assert.Equal(t, "/allOf/1/minimum", errs[0].SchemaPointer())
}

// S6: if/then/else frame replacement: a "then" error reports "then", not "if".
func TestScenarioS6IfThenElse(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{
		"if": {"type": "integer"},
		"then": {"minimum": 10},
		"else": {"type": "string"}
	}`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`3`))
	require.NoError(t, err)
	errs := result.ToSlice()
	require.Len(t, errs, 1)
	assert.Equal(t, "/then/minimum", errs[0].SchemaPointer())

	result, err = cfg.Validate([]byte(`"hi"`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())

	result, err = cfg.Validate([]byte(`true`))
	require.NoError(t, err)
	errs = result.ToSlice()
	require.Len(t, errs, 1)
	assert.Equal(t, "/else/type", errs[0].SchemaPointer())
}

func TestValidateSchemaAgainstMetaSchema(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {"name": {"type": "string"}}
	}`))
	require.NoError(t, err)

	result := cfg.ValidateSchema()
	assert.True(t, result.IsValid())
}

func TestValidateSchemaRejectsMalformedSchema(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "not-a-real-type"
	}`))
	require.NoError(t, err)

	result := cfg.ValidateSchema()
	assert.False(t, result.IsValid())
}

func TestFalseSchemaAlwaysFails(t *testing.T) {
	cfg, err := CompileSchema([]byte(`false`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`{"anything": 1}`))
	require.NoError(t, err)
	assert.False(t, result.IsValid())
}

func TestTrueSchemaAlwaysSucceeds(t *testing.T) {
	cfg, err := CompileSchema([]byte(`true`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`{"anything": 1}`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}

func TestUnrecognizedKeywordIsSkipped(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{"unknownKeyword": {"whatever": true}}`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`{"anything": 1}`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}

func TestFastFailStopsAtFirstError(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{
		"properties": {
			"a": {"type": "integer"},
			"b": {"type": "integer"}
		}
	}`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`{"a": "x", "b": "y"}`))
	require.NoError(t, err)

	var seen int
	for range result.Errors() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestLocalizeFallsBackToMessageWithoutCode(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{"not": {}}`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`1`))
	require.NoError(t, err)

	errs := result.ToSlice()
	require.Len(t, errs, 1)
	assert.Equal(t, errs[0].Message, errs[0].Localize(cfg.Translator()))
}
