package redis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todo-api/pkg/redis"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	config := redis.NewConfig()

	assert.Equal("localhost", config.Host)
	assert.Equal(6379, config.Port)
	assert.Equal(time.Hour, config.DefaultTTL)
	assert.Nil(config.Validate())
}

func TestConfigBuilders(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	config := redis.NewConfig().
		WithHost("cache.internal").
		WithPort(6380).
		WithPassword("secret").
		WithDatabase(2).
		WithDefaultTTL(10 * time.Minute)

	assert.Equal("cache.internal", config.Host)
	assert.Equal(6380, config.Port)
	assert.Equal("secret", config.Password)
	assert.Equal(2, config.Database)
	assert.Equal(10*time.Minute, config.DefaultTTL)
	assert.Nil(config.Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	empty := redis.NewConfig().WithHost("")
	assert.NotNil(empty.Validate())

	badDB := redis.NewConfig().WithDatabase(-1)
	assert.NotNil(badDB.Validate())
}
