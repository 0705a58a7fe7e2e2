package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExported(t *testing.T) {
	assert.Equal(t, "DatabaseURL", exported("DATABASE_URL"))
	assert.Equal(t, "APIPort", exported("API_PORT"))
	assert.Equal(t, "JWTSecret", exported("JWT_SECRET"))
	assert.Equal(t, "RedisTTL", exported("REDIS_TTL"))
	assert.Equal(t, "UseOtl", exported("USE_OTL"))
	assert.Equal(t, "UserService", exported("user-service"))
}

func TestUnexported(t *testing.T) {
	assert.Equal(t, "database", unexported("DATABASE"))
	assert.Equal(t, "orderQueue", unexported("ORDER_QUEUE"))
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "DatabaseConfig", subjectTypeName("DATABASE"))
	assert.Equal(t, "HTTPConfig", subjectTypeName("HTTP"))
	assert.Equal(t, "OrderServiceConfig", appTypeName("order-service"))
}
