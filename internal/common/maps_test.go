package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	assert.Empty(t, SortedKeys(map[string]int{}))

	m := map[string]struct{}{"telemetry": {}, "database": {}, "redis": {}}
	assert.Equal(t, []string{"database", "redis", "telemetry"}, SortedKeys(m))
}
