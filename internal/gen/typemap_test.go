package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"confgen/internal/schema"
)

func TestGoType(t *testing.T) {
	tests := []struct {
		kind     schema.Kind
		optional bool
		want     string
	}{
		{schema.KindString, false, "string"},
		{schema.KindString, true, "*string"},
		{schema.KindInt, false, "int64"},
		{schema.KindInt, true, "*int64"},
		{schema.KindFloat, false, "float64"},
		{schema.KindFloat, true, "*float64"},
		{schema.KindBool, false, "bool"},
		{schema.KindBool, true, "*bool"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GoType(tt.kind, tt.optional))
	}
}

func TestGoType_UnknownKindPanics(t *testing.T) {
	// Unknown kinds are rejected by the parser; reaching this is a bug.
	assert.Panics(t, func() { GoType(schema.Kind(0), false) })
}

func TestParseFunc(t *testing.T) {
	assert.Equal(t, "", parseFunc(schema.KindString))
	assert.Equal(t, "runtime.ParseInt", parseFunc(schema.KindInt))
	assert.Equal(t, "runtime.ParseFloat", parseFunc(schema.KindFloat))
	assert.Equal(t, "runtime.ParseBool", parseFunc(schema.KindBool))
}
