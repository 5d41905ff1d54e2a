package binding_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/vine/pkg/adapters/headless"
	"github.com/aretw0/vine/pkg/binding"
	"github.com/aretw0/vine/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent_Events(t *testing.T) {
	ctx := context.Background()

	newInstance := func(t *testing.T) (*binding.Instance, *headless.Runtime) {
		t.Helper()
		def := binding.NewDefinition(nil)
		def.Declare("field", "textbox", nil)
		def.Declare("go", "button", nil)
		def.Declare("out", "markdown", nil)
		rt := headless.New()
		inst, err := binding.Materialize(ctx, def, rt)
		require.NoError(t, err)
		return inst, rt
	}

	t.Run("forwards the widget handle, not the descriptor", func(t *testing.T) {
		inst, rt := newInstance(t)
		button, _ := inst.Component("go")
		field, _ := inst.Component("field")
		out, _ := inst.Component("out")

		token, err := button.Click(ctx, binding.Reaction{
			Handler: func(ctx context.Context, inputs []any) ([]any, error) { return nil, nil },
			Inputs:  []*binding.Component{field},
			Outputs: []*binding.Component{out},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token.ID())

		regs := rt.Events()
		require.Len(t, regs, 1)
		assert.Equal(t, button.Handle().ID(), regs[0].Widget.ID())
		assert.Equal(t, "click", regs[0].Verb)
		require.Len(t, regs[0].Steps, 1)
		require.Len(t, regs[0].Steps[0].Inputs, 1)
		assert.Equal(t, field.Handle().ID(), regs[0].Steps[0].Inputs[0].ID())
		require.Len(t, regs[0].Steps[0].Outputs, 1)
		assert.Equal(t, out.Handle().ID(), regs[0].Steps[0].Outputs[0].ID())
	})

	t.Run("chained follow-ups become ordered steps", func(t *testing.T) {
		inst, rt := newInstance(t)
		button, _ := inst.Component("go")
		field, _ := inst.Component("field")

		_, err := button.Click(ctx, binding.Reaction{
			Handler: func(ctx context.Context, inputs []any) ([]any, error) { return nil, nil },
			Then: []binding.Reaction{{
				Handler: func(ctx context.Context, inputs []any) ([]any, error) { return []any{""}, nil },
				Outputs: []*binding.Component{field},
				Options: domain.Params{"show_progress": "hidden"},
			}},
		})
		require.NoError(t, err)

		regs := rt.Events()
		require.Len(t, regs, 1)
		require.Len(t, regs[0].Steps, 2)
		assert.Empty(t, regs[0].Steps[0].Options)
		assert.Equal(t, "hidden", regs[0].Steps[1].Options["show_progress"])
	})

	t.Run("multiple reactions on one verb stay independent", func(t *testing.T) {
		inst, rt := newInstance(t)
		button, _ := inst.Component("go")

		handler := func(ctx context.Context, inputs []any) ([]any, error) { return nil, nil }
		_, err := button.Click(ctx, binding.Reaction{Handler: handler})
		require.NoError(t, err)
		_, err = button.Click(ctx, binding.Reaction{Handler: handler})
		require.NoError(t, err)

		assert.Len(t, rt.Events(), 2)
	})

	t.Run("reaction without handler is rejected", func(t *testing.T) {
		inst, _ := newInstance(t)
		button, _ := inst.Component("go")

		_, err := button.Click(ctx, binding.Reaction{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no handler")
	})

	t.Run("dispatch runs the chain against live values", func(t *testing.T) {
		inst, rt := newInstance(t)
		button, _ := inst.Component("go")
		field, _ := inst.Component("field")
		out, _ := inst.Component("out")

		_, err := button.Click(ctx, binding.Reaction{
			Handler: func(ctx context.Context, inputs []any) ([]any, error) {
				text, _ := inputs[0].(string)
				return []any{strings.ToUpper(text)}, nil
			},
			Inputs:  []*binding.Component{field},
			Outputs: []*binding.Component{out},
			Then: []binding.Reaction{{
				Handler: func(ctx context.Context, inputs []any) ([]any, error) {
					return []any{""}, nil
				},
				Outputs: []*binding.Component{field},
			}},
		})
		require.NoError(t, err)

		rt.SetValue(field.Handle().ID(), "hello")
		require.NoError(t, rt.Dispatch(ctx, button.Handle().ID(), "click"))

		v, _ := rt.Value(out.Handle().ID())
		assert.Equal(t, "HELLO", v)
		v, _ = rt.Value(field.Handle().ID())
		assert.Equal(t, "", v, "follow-up clears the field")
	})
}
