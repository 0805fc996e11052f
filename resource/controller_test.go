package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_AcquireMemory(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		c := NewController(Config{MemoryLimitBytes: 1024})

		require.NoError(t, c.AcquireMemory(512))
		require.NoError(t, c.AcquireMemory(512))
		assert.Equal(t, int64(1024), c.MemoryUsage())
	})

	t.Run("exceeds limit", func(t *testing.T) {
		c := NewController(Config{MemoryLimitBytes: 1024})

		require.NoError(t, c.AcquireMemory(1000))
		err := c.AcquireMemory(100)
		assert.ErrorIs(t, err, ErrMemoryLimitExceeded)

		// Failed acquisition must not change usage.
		assert.Equal(t, int64(1000), c.MemoryUsage())
	})

	t.Run("release restores budget", func(t *testing.T) {
		c := NewController(Config{MemoryLimitBytes: 100})

		require.NoError(t, c.AcquireMemory(100))
		require.ErrorIs(t, c.AcquireMemory(1), ErrMemoryLimitExceeded)

		c.ReleaseMemory(100)
		assert.Equal(t, int64(0), c.MemoryUsage())
		require.NoError(t, c.AcquireMemory(100))
	})

	t.Run("unlimited tracks only", func(t *testing.T) {
		c := NewController(Config{})

		require.NoError(t, c.AcquireMemory(1 << 40))
		assert.Equal(t, int64(1<<40), c.MemoryUsage())
		assert.Equal(t, int64(0), c.MemoryLimit())
	})

	t.Run("nil controller", func(t *testing.T) {
		var c *Controller

		require.NoError(t, c.AcquireMemory(42))
		c.ReleaseMemory(42)
		assert.Equal(t, int64(0), c.MemoryUsage())
	})
}
