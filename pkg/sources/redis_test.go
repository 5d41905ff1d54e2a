package sources_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/vine/pkg/sources"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisSource_Read(t *testing.T) {
	t.Run("reads string values", func(t *testing.T) {
		mr, client := newTestClient(t)
		require.NoError(t, mr.Set("greeting", "hello"))

		src := sources.NewRedisSourceFromClient(client, "greeting")
		v, err := src.Read()
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("missing key is an error by default", func(t *testing.T) {
		_, client := newTestClient(t)

		src := sources.NewRedisSourceFromClient(client, "absent")
		_, err := src.Read()
		assert.Error(t, err)
	})

	t.Run("fallback covers missing keys", func(t *testing.T) {
		_, client := newTestClient(t)

		src := sources.NewRedisSourceFromClient(client, "absent", sources.WithFallback("n/a"))
		v, err := src.Read()
		require.NoError(t, err)
		assert.Equal(t, "n/a", v)
	})

	t.Run("JSON mode decodes structures", func(t *testing.T) {
		mr, client := newTestClient(t)
		require.NoError(t, mr.Set("tasks", `{"open": 2}`))

		src := sources.NewRedisSourceFromClient(client, "tasks", sources.WithJSON())
		v, err := src.Read()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"open": float64(2)}, v)
	})

	t.Run("invalid JSON surfaces the decode error", func(t *testing.T) {
		mr, client := newTestClient(t)
		require.NoError(t, mr.Set("tasks", "{"))

		src := sources.NewRedisSourceFromClient(client, "tasks", sources.WithJSON())
		_, err := src.Read()
		assert.Error(t, err)
	})
}

func TestStatic(t *testing.T) {
	src := sources.Static("fixed")
	v, err := src()
	require.NoError(t, err)
	assert.Equal(t, "fixed", v)
}
