package cache

import (
	"context"
	"testing"

	"quiz-forge/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_EmptyAddress(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.RedisConfig{})
	assert.Error(t, err)
	assert.Nil(t, client)
}
