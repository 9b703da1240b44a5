//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/pkg/platform/sentinel"
	"inkwell/pkg/testutil/containers"
)

func TestRedis_Integration(t *testing.T) {
	ctx := context.Background()
	rc := containers.NewRedisContainer(t)

	newCache := func(t *testing.T) *Redis {
		t.Helper()
		require.NoError(t, rc.FlushAll(ctx))
		c, err := NewRedis(rc.Addr, time.Minute)
		require.NoError(t, err)
		require.NotNil(t, c)
		t.Cleanup(func() { _ = c.Close() })
		return c
	}

	t.Run("set then get returns the body", func(t *testing.T) {
		c := newCache(t)
		require.NoError(t, c.Set(ctx, "first.md", "# Hello"))

		body, err := c.Get(ctx, "first.md")
		require.NoError(t, err)
		assert.Equal(t, "# Hello", body)
	})

	t.Run("miss is not found", func(t *testing.T) {
		c := newCache(t)
		_, err := c.Get(ctx, "nope.md")
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("invalidate drops only content keys", func(t *testing.T) {
		c := newCache(t)
		require.NoError(t, c.Set(ctx, "a.md", "a"))
		require.NoError(t, c.Set(ctx, "b.md", "b"))
		require.NoError(t, rc.Client.Set(ctx, "other:key", "keep", 0).Err())

		require.NoError(t, c.Invalidate(ctx))

		_, err := c.Get(ctx, "a.md")
		require.ErrorIs(t, err, sentinel.ErrNotFound)
		kept, err := rc.Client.Get(ctx, "other:key").Result()
		require.NoError(t, err)
		assert.Equal(t, "keep", kept)
	})

	t.Run("empty URL means not configured", func(t *testing.T) {
		c, err := NewRedis("", time.Minute)
		require.NoError(t, err)
		assert.Nil(t, c)
	})
}
