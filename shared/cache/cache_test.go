package cache_test

import (
	"cafe/infras/otel/mocks"
	"cafe/shared/cache"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache_NilClient(t *testing.T) {
	assert.Nil(t, cache.NewRedisCache(nil, mocks.NewOtel()))
}
