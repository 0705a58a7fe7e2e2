package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTypeExpr(t *testing.T) {
	tests := []struct {
		raw      string
		kind     Kind
		optional bool
	}{
		{"str", KindString, false},
		{"int", KindInt, false},
		{"float", KindFloat, false},
		{"bool", KindBool, false},
		{"Optional[str]", KindString, true},
		{"Optional[int]", KindInt, true},
		{"Optional[float]", KindFloat, true},
		{"Optional[bool]", KindBool, true},
		{"str | None", KindString, true},
		{"int | None", KindInt, true},
		{" str ", KindString, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			expr, ok := ParseTypeExpr(tt.raw)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, expr.Kind)
			assert.Equal(t, tt.optional, expr.Optional)
		})
	}
}

func TestParseTypeExpr_BothNotationsAgree(t *testing.T) {
	wrapper, ok := ParseTypeExpr("Optional[float]")
	assert.True(t, ok)

	suffix, ok2 := ParseTypeExpr("float | None")
	assert.True(t, ok2)

	assert.Equal(t, wrapper, suffix, "both optionality notations must normalize identically")
}

func TestParseTypeExpr_Unknown(t *testing.T) {
	for _, raw := range []string{"varchar", "string", "Optional[varchar]", "Optional[]", "", "None"} {
		_, ok := ParseTypeExpr(raw)
		assert.False(t, ok, "raw=%q", raw)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "KindString", KindString.String())
	assert.Equal(t, "KindBool", KindBool.String())
}
