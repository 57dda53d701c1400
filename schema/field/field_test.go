package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modulegen/schema/field"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected field.Type
		ok       bool
	}{
		{"string", field.TypeString, true},
		{"STRING", field.TypeString, true},
		{"String", field.TypeString, true},
		{" string ", field.TypeString, true},
		{"\tnumber\n", field.TypeNumber, true},
		{"Boolean", field.TypeBoolean, true},
		{"date", field.TypeDate, true},
		{"DateTime", field.TypeDateTime, true},
		{"JSON", field.TypeJSON, true},
		{"string[]", field.TypeStringArray, true},
		{"NUMBER[]", field.TypeNumberArray, true},
		{" json[] ", field.TypeJSONArray, true},
		{"uuid", field.TypeInvalid, false},
		{"", field.TypeInvalid, false},
		{"string[][]", field.TypeInvalid, false},
		{"str ing", field.TypeInvalid, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := field.Normalize(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, typ := range field.Types() {
		once, ok := field.Normalize(string(typ))
		require.True(t, ok)
		twice, ok := field.Normalize(string(once))
		require.True(t, ok)
		assert.Equal(t, once, twice)
	}
}

func TestType(t *testing.T) {
	assert.True(t, field.TypeDateArray.IsArray())
	assert.False(t, field.TypeDate.IsArray())
	assert.Equal(t, field.TypeDate, field.TypeDateArray.Base())
	assert.Equal(t, field.TypeJSON, field.TypeJSON.Base())
	assert.True(t, field.TypeBooleanArray.IsBoolean())
	assert.True(t, field.TypeJSONArray.IsJSON())
	assert.False(t, field.TypeInvalid.Valid())
	assert.Len(t, field.Types(), 12)
	assert.Contains(t, field.TypeNames(), "datetime[]")
}

func TestTSType(t *testing.T) {
	tests := []struct {
		typ    field.Type
		dto    string
		entity string
	}{
		{field.TypeString, "string", "string"},
		{field.TypeNumber, "number", "number"},
		{field.TypeBoolean, "boolean", "boolean"},
		{field.TypeDate, "string", "Date"},
		{field.TypeDateTime, "string", "Date"},
		{field.TypeJSON, "any", "any"},
		{field.TypeStringArray, "string[]", "string[]"},
		{field.TypeDateTimeArray, "string[]", "Date[]"},
		{field.TypeJSONArray, "any[]", "any[]"},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.dto, tt.typ.TSType())
			assert.Equal(t, tt.entity, tt.typ.EntityTSType())
		})
	}
}
