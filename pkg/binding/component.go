package binding

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/vine/pkg/domain"
	"github.com/aretw0/vine/pkg/ports"
)

// SourceFunc supplies the current model value for a component. It takes no
// arguments; the model it reads from is captured by the closure. It is
// invoked once per session start for as long as it stays registered, and may
// be called concurrently across simultaneous sessions.
type SourceFunc func() (any, error)

// Reaction describes one event reaction: the handler, its explicit input
// and output components, pass-through display options, and optional chained
// follow-up reactions dispatched after this one.
type Reaction struct {
	Handler ports.HandlerFunc
	Inputs  []*Component
	Outputs []*Component
	Options domain.Params
	Then    []Reaction
}

// Component is the materialized, per-instance wrapper around one
// collaborator widget. It is created during materialization, owned by its
// instance, and reachable there under its declared name.
type Component struct {
	name   string
	kind   string
	owner  *Instance
	handle ports.WidgetHandle

	mu       sync.RWMutex
	sourceFn SourceFunc
	placed   bool
}

// Name returns the declared name.
func (c *Component) Name() string { return c.name }

// Kind returns the collaborator widget kind.
func (c *Component) Kind() string { return c.kind }

// Handle returns the opaque widget handle.
func (c *Component) Handle() ports.WidgetHandle { return c.handle }

// Placed reports whether the component was mounted during the layout pass.
func (c *Component) Placed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.placed
}

// Source registers fn as the rehydration source for this component.
// Last write wins: registering a second source replaces the first, and only
// the latest registration is used on subsequent session starts. Components
// without a source are never auto-refreshed.
func (c *Component) Source(fn SourceFunc) {
	c.mu.Lock()
	c.sourceFn = fn
	c.mu.Unlock()
}

// HasSource reports whether a rehydration source is registered.
func (c *Component) HasSource() bool {
	return c.source() != nil
}

func (c *Component) source() SourceFunc {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sourceFn
}

// On forwards an event reaction to the collaborator runtime under the given
// interaction verb. The runtime receives the widget handle, never the
// descriptor. Multiple calls for the same verb register independent
// reactions in call order.
func (c *Component) On(ctx context.Context, verb string, r Reaction) (ports.EventToken, error) {
	steps, err := flattenReaction(c.name, verb, r)
	if err != nil {
		return nil, err
	}
	token, err := c.owner.rt.BindEvent(ctx, ports.EventRegistration{
		Widget: c.handle,
		Verb:   verb,
		Steps:  steps,
	})
	if err != nil {
		return nil, fmt.Errorf("binding %q on %q: %w", verb, c.name, err)
	}
	return token, nil
}

// Click forwards a click reaction. Shorthand for On(ctx, "click", r).
func (c *Component) Click(ctx context.Context, r Reaction) (ports.EventToken, error) {
	return c.On(ctx, "click", r)
}

// Change forwards a change reaction.
func (c *Component) Change(ctx context.Context, r Reaction) (ports.EventToken, error) {
	return c.On(ctx, "change", r)
}

// Submit forwards a submit reaction.
func (c *Component) Submit(ctx context.Context, r Reaction) (ports.EventToken, error) {
	return c.On(ctx, "submit", r)
}

func flattenReaction(name, verb string, r Reaction) ([]ports.EventStep, error) {
	if r.Handler == nil {
		return nil, fmt.Errorf("reaction for %q on %q has no handler", verb, name)
	}
	steps := []ports.EventStep{{
		Handler: r.Handler,
		Inputs:  handles(r.Inputs),
		Outputs: handles(r.Outputs),
		Options: r.Options.Clone(),
	}}
	for _, then := range r.Then {
		tail, err := flattenReaction(name, verb, then)
		if err != nil {
			return nil, err
		}
		steps = append(steps, tail...)
	}
	return steps, nil
}

func handles(comps []*Component) []ports.WidgetHandle {
	if len(comps) == 0 {
		return nil
	}
	out := make([]ports.WidgetHandle, len(comps))
	for i, c := range comps {
		out[i] = c.handle
	}
	return out
}
