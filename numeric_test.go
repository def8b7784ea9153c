package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimumMaximumInclusive(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{"minimum": 10, "maximum": 20}`))
	require.NoError(t, err)

	for _, v := range []string{"10", "15", "20"} {
		result, err := cfg.Validate([]byte(v))
		require.NoError(t, err)
		assert.True(t, result.IsValid(), "expected %s to be valid", v)
	}
	for _, v := range []string{"9", "21"} {
		result, err := cfg.Validate([]byte(v))
		require.NoError(t, err)
		assert.False(t, result.IsValid(), "expected %s to be invalid", v)
	}
}

func TestExclusiveMinimumDraft4SiblingForm(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"minimum": 10,
		"exclusiveMinimum": true
	}`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`10`))
	require.NoError(t, err)
	assert.False(t, result.IsValid(), "10 is excluded when exclusiveMinimum is true")

	result, err = cfg.Validate([]byte(`11`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}

func TestExclusiveMinimumDraft6IndependentKeyword(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{
		"$schema": "http://json-schema.org/draft-06/schema#",
		"exclusiveMinimum": 10
	}`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`10`))
	require.NoError(t, err)
	assert.False(t, result.IsValid())

	result, err = cfg.Validate([]byte(`11`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}

func TestMultipleOfExactRational(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{"multipleOf": 0.1}`))
	require.NoError(t, err)

	result, err := cfg.Validate([]byte(`3.0`))
	require.NoError(t, err)
	assert.True(t, result.IsValid(), "3.0 is a clean multiple of 0.1 under exact rational arithmetic")

	result, err = cfg.Validate([]byte(`0.35`))
	require.NoError(t, err)
	assert.False(t, result.IsValid())
}

// Testable property 7: "integer" accepts 1, 1.0, 1e10; rejects 1.5.
func TestIntegerTypeAcceptsMathematicallyIntegralFloats(t *testing.T) {
	cfg, err := CompileSchema([]byte(`{"type": "integer"}`))
	require.NoError(t, err)

	for _, v := range []string{"1", "1.0", "1e10"} {
		result, err := cfg.Validate([]byte(v))
		require.NoError(t, err)
		assert.True(t, result.IsValid(), "expected %s to be a valid integer", v)
	}

	result, err := cfg.Validate([]byte(`1.5`))
	require.NoError(t, err)
	assert.False(t, result.IsValid())
}
