package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSource(t *testing.T) {
	src := MapSource{"DATABASE_URL": "postgres://localhost", "EMPTY": ""}

	v, ok := src.Lookup("DATABASE_URL")
	assert.True(t, ok)
	assert.Equal(t, "postgres://localhost", v)

	v, ok = src.Lookup("EMPTY")
	assert.True(t, ok, "an empty string that is present is a value, not an absence")
	assert.Equal(t, "", v)

	_, ok = src.Lookup("MISSING")
	assert.False(t, ok)
}

func TestEnvSource(t *testing.T) {
	t.Setenv("CONFGEN_TEST_VALUE", "42")

	var src Source = EnvSource{}

	v, ok := src.Lookup("CONFGEN_TEST_VALUE")
	require.True(t, ok)
	assert.Equal(t, "42", v)

	_, ok = src.Lookup("CONFGEN_TEST_VALUE_ABSENT")
	assert.False(t, ok)
}
