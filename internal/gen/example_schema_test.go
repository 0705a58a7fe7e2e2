package gen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confgen/internal/schema"
)

// The shipped example schema must always compile cleanly end to end.
func TestGenerate_ExampleSchema(t *testing.T) {
	s, err := schema.Load(filepath.Join("..", "..", "examples", "config.toml"))
	require.NoError(t, err)

	assert.Empty(t, s.Warnings)
	assert.Len(t, s.Subjects, 8)
	assert.Len(t, s.Applications, 4)
	assert.Len(t, s.Variables, 20)

	code, err := New(DefaultConfig()).Generate(s)
	require.NoError(t, err)

	src := string(code)

	for _, marker := range []string{
		"type AuthConfig struct {",
		"type HTTPConfig struct {",
		"type FeaturesConfig struct {",
		"func NewAPIGatewayConfig() (*APIGatewayConfig, error)",
		`case "api-gateway":`,
		`"notification-service",`,
	} {
		assert.Contains(t, src, marker)
	}

	// Both optionality notations render the same pointer fields.
	assert.Regexp(t, `OtlEndpoint\s+\*string`, src)
	assert.Regexp(t, `OtlServiceName\s+\*string`, src)
	assert.Regexp(t, `TraceSampleRate\s+\*float64`, src)
}
