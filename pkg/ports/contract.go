package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/vine/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRuntimeContract runs a suite of tests to verify that a Runtime
// implementation adheres to the defined interface contract.
// The runtime must be fresh (not serving) when passed in.
func RunRuntimeContract(t *testing.T, rt Runtime) {
	ctx := context.Background()

	t.Run("CreateWidget returns distinct handles", func(t *testing.T) {
		a, err := rt.CreateWidget(ctx, "textbox", domain.Params{"placeholder": "a"})
		require.NoError(t, err, "CreateWidget should not return error")
		b, err := rt.CreateWidget(ctx, "textbox", domain.Params{"placeholder": "b"})
		require.NoError(t, err)

		require.NotNil(t, a)
		require.NotNil(t, b)
		assert.NotEqual(t, a.ID(), b.ID(), "two widgets must never share a handle")
	})

	t.Run("Container scopes balance", func(t *testing.T) {
		w, err := rt.CreateWidget(ctx, "button", domain.Params{"value": "ok"})
		require.NoError(t, err)

		require.NoError(t, rt.BeginContainer(ctx, "row", nil))
		require.NoError(t, rt.Mount(ctx, w))
		require.NoError(t, rt.EndContainer(ctx))

		assert.Error(t, rt.EndContainer(ctx), "EndContainer with no open scope must fail")
	})

	t.Run("BindEvent returns a token", func(t *testing.T) {
		w, err := rt.CreateWidget(ctx, "button", nil)
		require.NoError(t, err)

		token, err := rt.BindEvent(ctx, EventRegistration{
			Widget: w,
			Verb:   "click",
			Steps: []EventStep{{
				Handler: func(ctx context.Context, inputs []any) ([]any, error) { return nil, nil },
			}},
		})
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.NotEmpty(t, token.ID())
	})

	t.Run("PushValue accepts a created widget", func(t *testing.T) {
		w, err := rt.CreateWidget(ctx, "markdown", nil)
		require.NoError(t, err)
		assert.NoError(t, rt.PushValue(ctx, w, "hello"))
	})

	t.Run("OnSessionLoad subscription cancels safely", func(t *testing.T) {
		sub, err := rt.OnSessionLoad(func(ctx context.Context) {})
		require.NoError(t, err)
		require.NotNil(t, sub)
		sub.Cancel()
		sub.Cancel() // idempotent
	})

	t.Run("Serve blocks until Shutdown", func(t *testing.T) {
		done := make(chan error, 1)
		go func() {
			done <- rt.Serve(ctx, LaunchOptions{Host: "127.0.0.1"})
		}()

		select {
		case err := <-done:
			t.Fatalf("Serve returned before Shutdown: %v", err)
		case <-time.After(50 * time.Millisecond):
		}

		require.NoError(t, rt.Shutdown(ctx))

		select {
		case err := <-done:
			assert.NoError(t, err, "Serve should return cleanly after Shutdown")
		case <-time.After(time.Second):
			t.Fatal("Serve did not return after Shutdown")
		}
	})
}
