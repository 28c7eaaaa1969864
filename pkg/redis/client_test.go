package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("Should refuse an empty URL", func(t *testing.T) {
		_, err := NewClient(context.Background(), Config{})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("Should reject a malformed URL", func(t *testing.T) {
		_, err := NewClient(context.Background(), Config{URL: "http://not-redis"})
		assert.ErrorContains(t, err, "invalid URL")
	})
}
