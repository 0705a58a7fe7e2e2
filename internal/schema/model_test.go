package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "DATABASE_URL", Normalize("database_url"))
	assert.Equal(t, "DATABASE_URL", Normalize("DATABASE_URL"))
	assert.Equal(t, "ORDER_SERVICE", Normalize("order-service"))
	assert.Equal(t, "REDIS", Normalize("  redis "))
}

func TestLiteral_String(t *testing.T) {
	assert.Equal(t, "INFO", (&Literal{Kind: KindString, Str: "INFO"}).String())
	assert.Equal(t, "10", (&Literal{Kind: KindInt, Int: 10}).String())
	assert.Equal(t, "0.5", (&Literal{Kind: KindFloat, Float: 0.5}).String())
	assert.Equal(t, "false", (&Literal{Kind: KindBool}).String())
}

func TestVariable_Mandatory(t *testing.T) {
	assert.True(t, (&Variable{Kind: KindString}).Mandatory())
	assert.False(t, (&Variable{Kind: KindString, Optional: true}).Mandatory())
	assert.False(t, (&Variable{Kind: KindString, Default: &Literal{Kind: KindString}}).Mandatory())
}
