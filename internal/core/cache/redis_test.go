package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0, "test:")
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestGetOrLoad(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	calls := 0
	load := func(context.Context) ([]byte, error) {
		calls++
		return []byte("v1"), nil
	}

	b, err := c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, "v1", string(b))
	require.Equal(t, 1, calls)
	got, err := mr.Get("test:k")
	require.NoError(t, err)
	require.Equal(t, "v1", got)
	require.Equal(t, time.Minute, mr.TTL("test:k"))

	// served from redis
	require.NoError(t, mr.Set("test:k", "v2"))
	b, err = c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, "v2", string(b))
	require.Equal(t, 1, calls)

	require.NoError(t, c.Invalidate(ctx, "k"))
	require.False(t, mr.Exists("test:k"))
	b, err = c.GetOrLoad(ctx, "k", time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, "v1", string(b))
	require.Equal(t, 2, calls)

	require.NoError(t, c.Invalidate(ctx))
}

func TestGetOrLoadErrorNotCached(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := c.GetOrLoad(ctx, "k", time.Minute, func(context.Context) ([]byte, error) { return nil, boom })
	require.ErrorIs(t, err, boom)
	require.False(t, mr.Exists("test:k"))

	b, err := c.GetOrLoad(ctx, "k", time.Minute, func(context.Context) ([]byte, error) { return []byte("ok"), nil })
	require.NoError(t, err)
	require.Equal(t, "ok", string(b))
}

func TestGetOrLoadRedisDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	b, err := c.GetOrLoad(context.Background(), "k", time.Minute, func(context.Context) ([]byte, error) { return []byte("db"), nil })
	require.NoError(t, err)
	require.Equal(t, "db", string(b))
}

func TestGetOrLoadJSON(t *testing.T) {
	type entry struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	c, mr := newTestCache(t)
	ctx := context.Background()
	calls := 0
	load := func(context.Context) ([]entry, error) {
		calls++
		return []entry{{Name: "a", Value: 1}, {Name: "b", Value: 2}}, nil
	}

	first, err := GetOrLoadJSON(c, ctx, "list", time.Minute, load)
	require.NoError(t, err)
	second, err := GetOrLoadJSON(c, ctx, "list", time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, calls)

	raw, err := mr.Get("test:list")
	require.NoError(t, err)
	require.JSONEq(t, `[{"name":"a","value":1},{"name":"b","value":2}]`, raw)
}
