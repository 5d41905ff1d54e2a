package vine_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/vine"
	"github.com/aretw0/vine/pkg/adapters/headless"
	"github.com/aretw0/vine/pkg/binding"
	"github.com/aretw0/vine/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := vine.New(ctx, nil, headless.New())
	assert.Error(t, err)

	_, err = vine.New(ctx, binding.NewDefinition(nil), nil)
	assert.Error(t, err)
}

func TestMustComponent(t *testing.T) {
	def := binding.NewDefinition(nil)
	def.Declare("known", "markdown", nil)

	ui, err := vine.New(context.Background(), def, headless.New())
	require.NoError(t, err)

	assert.Equal(t, "known", ui.MustComponent("known").Name())
	assert.Panics(t, func() { ui.MustComponent("unknown") })
}

// TestEndToEnd walks the full declared -> materialized -> running ->
// rehydrated path: a display without a source stays untouched while a
// sourced label follows the latest registration across session starts.
func TestEndToEnd(t *testing.T) {
	ctx := context.Background()

	def := binding.NewDefinition(domain.Params{"title": "e2e"})
	def.Declare("counter_display", "number", nil)
	def.Declare("label", "markdown", nil)
	def.Layout(func(l *binding.Layout) error {
		if err := l.Place(l.Get("counter_display")); err != nil {
			return err
		}
		return l.Place(l.Get("label"))
	})

	rt := headless.New()
	ui, err := vine.New(ctx, def, rt)
	require.NoError(t, err)
	require.Equal(t, domain.StateLaidOut, ui.State())

	label := ui.MustComponent("label")
	display := ui.MustComponent("counter_display")
	label.Source(func() (any, error) { return "hello", nil })

	done := make(chan error, 1)
	go func() { done <- ui.Start(ctx) }()
	require.Eventually(t, func() bool {
		return ui.State() == domain.StateRunning
	}, time.Second, 5*time.Millisecond)

	rt.FireSessionLoad(ctx)
	assert.Equal(t, []any{"hello"}, rt.Pushes(label.Handle().ID()))
	assert.Empty(t, rt.Pushes(display.Handle().ID()))

	// re-registering replaces the source for the next session start
	label.Source(func() (any, error) { return "world", nil })
	rt.FireSessionLoad(ctx)
	assert.Equal(t, []any{"hello", "world"}, rt.Pushes(label.Handle().ID()))
	assert.Empty(t, rt.Pushes(display.Handle().ID()))

	require.NoError(t, ui.Stop(ctx))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after Stop")
	}
	assert.Equal(t, domain.StateStopped, ui.State())
}
