package headless_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/vine/pkg/adapters/headless"
	"github.com/aretw0/vine/pkg/domain"
	"github.com/aretw0/vine/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeContract(t *testing.T) {
	ports.RunRuntimeContract(t, headless.New())
}

func TestRuntime_Recording(t *testing.T) {
	ctx := context.Background()

	t.Run("FailKind injects construction errors", func(t *testing.T) {
		rt := headless.New()
		cause := errors.New("nope")
		rt.FailKind("video", cause)

		_, err := rt.CreateWidget(ctx, "video", nil)
		assert.ErrorIs(t, err, cause)

		_, err = rt.CreateWidget(ctx, "textbox", nil)
		assert.NoError(t, err)
	})

	t.Run("initial value comes from params", func(t *testing.T) {
		rt := headless.New()
		w, err := rt.CreateWidget(ctx, "button", domain.Params{"value": "Add"})
		require.NoError(t, err)

		v, ok := rt.Value(w.ID())
		require.True(t, ok)
		assert.Equal(t, "Add", v)
	})

	t.Run("cancelled subscription no longer fires", func(t *testing.T) {
		rt := headless.New()
		fired := 0
		sub, err := rt.OnSessionLoad(func(ctx context.Context) { fired++ })
		require.NoError(t, err)

		rt.FireSessionLoad(ctx)
		sub.Cancel()
		rt.FireSessionLoad(ctx)

		assert.Equal(t, 1, fired)
	})

	t.Run("mount of unknown widget fails", func(t *testing.T) {
		rt := headless.New()
		other := headless.New()
		w, err := other.CreateWidget(ctx, "textbox", nil)
		require.NoError(t, err)

		assert.Error(t, rt.Mount(ctx, w))
	})

	t.Run("dispatch without registration fails", func(t *testing.T) {
		rt := headless.New()
		w, err := rt.CreateWidget(ctx, "button", nil)
		require.NoError(t, err)

		assert.Error(t, rt.Dispatch(ctx, w.ID(), "click"))
	})
}
