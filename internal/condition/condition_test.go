package condition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse("USE_OTL=true")
	require.NoError(t, err)

	assert.Equal(t, "use_otl", p.Field)
	assert.Equal(t, "true", p.Value)
}

func TestParse_TrimsOperands(t *testing.T) {
	p, err := Parse("  ENABLE_RATE_LIMITING = True ")
	require.NoError(t, err)

	assert.Equal(t, "enable_rate_limiting", p.Field)
	assert.Equal(t, "True", p.Value, "expected value keeps its original casing")
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no separator", "USE_OTL"},
		{"empty field", "=true"},
		{"empty value", "USE_OTL="},
		{"whitespace value", "USE_OTL=   "},
		{"two separators", "USE_OTL=a=b"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.Error(t, err)

			var syntaxErr *SyntaxError
			assert.True(t, errors.As(err, &syntaxErr), "expected *SyntaxError, got %T", err)
		})
	}
}

func TestEvaluate(t *testing.T) {
	p := Predicate{Field: "use_otl", Value: "true"}

	assert.True(t, Evaluate(p, map[string]string{"use_otl": "true"}))
	assert.True(t, Evaluate(p, map[string]string{"use_otl": "True"}), "comparison is case-insensitive")
	assert.True(t, Evaluate(p, map[string]string{"use_otl": "TRUE"}))

	assert.False(t, Evaluate(p, map[string]string{"use_otl": "false"}))
	assert.False(t, Evaluate(p, map[string]string{"use_otl": ""}))
	assert.False(t, Evaluate(p, map[string]string{}), "missing controlling field is not an error, just unmet")
	assert.False(t, Evaluate(p, nil))
}

func TestPredicate_String(t *testing.T) {
	p := Predicate{Field: "use_otl", Value: "true"}

	assert.Equal(t, "USE_OTL=true", p.String())
}
