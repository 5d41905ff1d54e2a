package vine

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/vine/pkg/binding"
	"github.com/aretw0/vine/pkg/domain"
	"github.com/aretw0/vine/pkg/ports"
)

// Version is the library version reported by tooling.
var Version = "0.1.0"

// UI is the high-level entry point for the Vine library.
// It wraps the binding core and provides a simplified API for consumers:
// materialize a Definition against a collaborator runtime, bind sources and
// events on the resulting components, then Start the blocking serve loop.
type UI struct {
	instance *binding.Instance
	rt       ports.Runtime
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	launch   ports.LaunchOptions
	Name     string
}

// Option defines a functional option for configuring the UI.
type Option func(*UI)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(u *UI) {
		u.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(u *UI) {
		u.hooks = hooks
	}
}

// WithLaunch sets the launch parameters forwarded to the runtime's serve
// loop on Start.
func WithLaunch(opts ports.LaunchOptions) Option {
	return func(u *UI) {
		u.launch = opts
	}
}

// WithName sets a descriptive name, attached to every log line.
func WithName(name string) Option {
	return func(u *UI) {
		u.Name = name
	}
}

// New materializes the definition against the runtime and runs its layout
// pass. The returned UI is laid out and ready to Start; construction errors
// (duplicate bindings, widget failures, layout failures) are fatal and
// surface here, before the serve loop is reachable.
func New(ctx context.Context, def *binding.Definition, rt ports.Runtime, opts ...Option) (*UI, error) {
	if def == nil {
		return nil, fmt.Errorf("definition is required")
	}
	if rt == nil {
		return nil, fmt.Errorf("runtime is required")
	}

	ui := &UI{rt: rt}
	for _, opt := range opts {
		opt(ui)
	}

	if ui.logger == nil {
		ui.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if ui.Name != "" {
		ui.logger = ui.logger.With("ui", ui.Name)
	}

	inst, err := binding.Materialize(ctx, def, rt,
		binding.WithLogger(ui.logger),
		binding.WithHooks(ui.hooks),
	)
	if err != nil {
		return nil, err
	}
	ui.instance = inst
	return ui, nil
}

// Component returns the bound component declared under name.
func (u *UI) Component(name string) (*binding.Component, bool) {
	return u.instance.Component(name)
}

// MustComponent returns the bound component declared under name and panics
// if it was never declared. Meant for wiring code that runs at startup,
// where a missing name is a programming error.
func (u *UI) MustComponent(name string) *binding.Component {
	c, ok := u.instance.Component(name)
	if !ok {
		panic(fmt.Sprintf("vine: no component declared under %q", name))
	}
	return c
}

// Components returns all bound components in declaration order.
func (u *UI) Components() []*binding.Component {
	return u.instance.Components()
}

// Instance returns the underlying binding instance.
func (u *UI) Instance() *binding.Instance {
	return u.instance
}

// State returns the current lifecycle state.
func (u *UI) State() domain.LifecycleState {
	return u.instance.State()
}

// Start registers the session rehydrator and blocks in the collaborator
// runtime's serve loop until the application is shut down.
func (u *UI) Start(ctx context.Context) error {
	return u.instance.Start(ctx, u.launch)
}

// Stop shuts the runtime down. Terminal for this UI.
func (u *UI) Stop(ctx context.Context) error {
	return u.instance.Stop(ctx)
}
