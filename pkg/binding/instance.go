package binding

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/vine/pkg/domain"
	"github.com/aretw0/vine/pkg/ports"
)

// Instance is one materialized UI: the bound components derived from a
// Definition, laid out against a collaborator runtime. Construction runs
// the full Declared -> Materializing -> LaidOut sequence; Start takes it to
// Running and blocks in the runtime's serve loop.
type Instance struct {
	rt     ports.Runtime
	logger *slog.Logger
	hooks  domain.LifecycleHooks

	mu    sync.Mutex
	state domain.LifecycleState
	sub   ports.Subscription

	order []*Component
	comps map[string]*Component
}

// InstanceOption configures a materialization.
type InstanceOption func(*Instance)

// WithLogger sets a structured logger for the instance.
func WithLogger(logger *slog.Logger) InstanceOption {
	return func(i *Instance) {
		i.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) InstanceOption {
	return func(i *Instance) {
		i.hooks = hooks
	}
}

// Materialize builds an Instance from a Definition: every descriptor becomes
// a bound component (in declaration order), then the layout procedure runs
// exactly once inside the runtime's root container.
//
// Declaration errors (duplicate names) are reported before any widget is
// constructed. A widget construction failure aborts with a
// ComponentConstructionError; a layout failure aborts the whole
// construction. Either way the instance is not usable.
func Materialize(ctx context.Context, def *Definition, rt ports.Runtime, opts ...InstanceOption) (*Instance, error) {
	inst := &Instance{
		rt:    rt,
		state: domain.StateDeclared,
		comps: make(map[string]*Component),
	}
	for _, opt := range opts {
		opt(inst)
	}
	if inst.logger == nil {
		inst.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := def.registry.Err(); err != nil {
		return nil, err
	}

	inst.state = domain.StateMaterializing
	for _, desc := range def.Descriptors() {
		handle, err := rt.CreateWidget(ctx, desc.Kind, desc.Params)
		if err != nil {
			return nil, &domain.ComponentConstructionError{Name: desc.Name, Kind: desc.Kind, Err: err}
		}
		comp := &Component{
			name:   desc.Name,
			kind:   desc.Kind,
			owner:  inst,
			handle: handle,
		}
		inst.order = append(inst.order, comp)
		inst.comps[desc.Name] = comp

		inst.logger.Debug("component materialized", "name", desc.Name, "kind", desc.Kind, "widget", handle.ID())
		if inst.hooks.OnMaterialize != nil {
			inst.hooks.OnMaterialize(ctx, &domain.ComponentEvent{
				EventBase: eventBase(domain.EventMaterialize),
				Name:      desc.Name,
				Kind:      desc.Kind,
			})
		}
	}

	if err := inst.runLayout(ctx, def); err != nil {
		return nil, err
	}

	inst.state = domain.StateLaidOut
	return inst, nil
}

func (i *Instance) runLayout(ctx context.Context, def *Definition) error {
	if err := i.rt.BeginContainer(ctx, "page", def.Params()); err != nil {
		return fmt.Errorf("opening root container: %w", err)
	}

	layout := &Layout{ctx: ctx, rt: i.rt, inst: i, active: true}
	if def.layout != nil {
		if err := def.layout(layout); err != nil {
			layout.active = false
			return fmt.Errorf("layout failed: %w", err)
		}
	}
	layout.active = false

	if err := i.rt.EndContainer(ctx); err != nil {
		return fmt.Errorf("closing root container: %w", err)
	}

	i.logger.Debug("layout complete", "placements", layout.placements)
	if i.hooks.OnLayout != nil {
		i.hooks.OnLayout(ctx, &domain.LayoutEvent{
			EventBase:  eventBase(domain.EventLayout),
			Placements: layout.placements,
		})
	}
	return nil
}

// Component returns the bound component declared under name.
func (i *Instance) Component(name string) (*Component, bool) {
	c, ok := i.comps[name]
	return c, ok
}

// Components returns all bound components in declaration order.
func (i *Instance) Components() []*Component {
	out := make([]*Component, len(i.order))
	copy(out, i.order)
	return out
}

// State returns the current lifecycle state.
func (i *Instance) State() domain.LifecycleState {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// Start registers the session rehydrator and hands control to the
// collaborator runtime's serve loop. It blocks until the runtime shuts down
// and must not be called more than once per instance.
func (i *Instance) Start(ctx context.Context, launch ports.LaunchOptions) error {
	i.mu.Lock()
	switch i.state {
	case domain.StateLaidOut:
	case domain.StateRunning, domain.StateStopped:
		i.mu.Unlock()
		return domain.ErrAlreadyRunning
	default:
		i.mu.Unlock()
		return domain.ErrNotLaidOut
	}

	sub, err := i.rt.OnSessionLoad(i.rehydrate)
	if err != nil {
		i.mu.Unlock()
		return fmt.Errorf("registering session rehydrator: %w", err)
	}
	i.sub = sub
	i.state = domain.StateRunning
	i.mu.Unlock()

	i.logger.Info("serving", "host", launch.Host, "port", launch.Port)
	serveErr := i.rt.Serve(ctx, launch)

	i.mu.Lock()
	i.state = domain.StateStopped
	if i.sub != nil {
		i.sub.Cancel()
		i.sub = nil
	}
	i.mu.Unlock()

	return serveErr
}

// Stop shuts the runtime down and releases the instance's resources.
// Stopping is terminal: the instance cannot be started again.
func (i *Instance) Stop(ctx context.Context) error {
	i.mu.Lock()
	if i.state == domain.StateStopped {
		i.mu.Unlock()
		return nil
	}
	i.state = domain.StateStopped
	sub := i.sub
	i.sub = nil
	i.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
	return i.rt.Shutdown(ctx)
}

// rehydrate is the session rehydrator: invoked by the runtime on every
// session (re)start, it pulls each registered source once, in declaration
// order, and pushes the result as the component's current value. A failing
// source is logged and reported but never blocks the remaining components.
func (i *Instance) rehydrate(ctx context.Context) {
	sources := 0
	for _, c := range i.order {
		if c.HasSource() {
			sources++
		}
	}

	i.logger.Debug("session load", "sources", sources)
	if i.hooks.OnSessionLoad != nil {
		i.hooks.OnSessionLoad(ctx, &domain.SessionEvent{
			EventBase: eventBase(domain.EventSessionLoad),
			Sources:   sources,
		})
	}

	for _, c := range i.order {
		fn := c.source()
		if fn == nil {
			continue
		}

		value, err := fn()
		if err == nil {
			err = i.rt.PushValue(ctx, c.handle, value)
		}
		if err != nil {
			rerr := &domain.RehydrationError{Name: c.name, Err: err}
			i.logger.Warn("rehydration failed", "component", c.name, "error", rerr)
			if i.hooks.OnRehydrateError != nil {
				i.hooks.OnRehydrateError(ctx, &domain.RehydrateEvent{
					EventBase: eventBase(domain.EventRehydrateError),
					Name:      c.name,
					Err:       rerr,
				})
			}
			continue
		}

		if i.hooks.OnRehydrate != nil {
			i.hooks.OnRehydrate(ctx, &domain.RehydrateEvent{
				EventBase: eventBase(domain.EventRehydrate),
				Name:      c.name,
			})
		}
	}
}

func eventBase(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t}
}
