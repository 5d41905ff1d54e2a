package ports

import (
	"context"

	"github.com/aretw0/vine/pkg/domain"
)

// WidgetHandle is an opaque reference to a widget owned by the collaborator
// runtime. Handles are only ever compared and forwarded by the binding core;
// per-session scoping of the underlying widget is the runtime's concern.
type WidgetHandle interface {
	// ID uniquely identifies the widget within its runtime.
	ID() string
}

// HandlerFunc is an event handler as the runtime dispatches it: the input
// slice carries the current values of the registration's input widgets, the
// returned slice is assigned positionally to the output widgets.
type HandlerFunc func(ctx context.Context, inputs []any) ([]any, error)

// EventStep is one handler in an event chain: the handler plus its explicit
// input and output widgets and pass-through display options.
type EventStep struct {
	Handler HandlerFunc
	Inputs  []WidgetHandle
	Outputs []WidgetHandle
	Options domain.Params
}

// EventRegistration forwards one event reaction to the runtime: the widget
// the event fires on, the interaction verb (click, change, submit, ...) and
// the ordered chain of steps to dispatch. Step order is the chain order; the
// runtime owns queuing and progress semantics.
type EventRegistration struct {
	Widget WidgetHandle
	Verb   string
	Steps  []EventStep
}

// EventToken is an opaque registration handle returned by the runtime.
type EventToken interface {
	ID() string
}

// SessionLoadFunc is invoked by the runtime on every session (re)start.
// The context is scoped to the notification; implementations may be called
// concurrently across simultaneous sessions.
type SessionLoadFunc func(ctx context.Context)

// Subscription represents a registered session-load handler.
type Subscription interface {
	// Cancel removes the handler. Safe to call more than once.
	Cancel()
}

// LaunchOptions carries serve-loop parameters. The binding core forwards
// them verbatim; unknown keys go in Extra.
type LaunchOptions struct {
	Host        string        `json:"host,omitempty" yaml:"host,omitempty" mapstructure:"host"`
	Port        int           `json:"port,omitempty" yaml:"port,omitempty" mapstructure:"port"`
	OpenBrowser bool          `json:"open_browser,omitempty" yaml:"open_browser,omitempty" mapstructure:"open_browser"`
	Extra       domain.Params `json:"extra,omitempty" yaml:"extra,omitempty" mapstructure:"extra"`
}

// Runtime is the driven port to the collaborator UI runtime.
//
// Call order is fixed by the binding lifecycle: CreateWidget during
// materialization, BeginContainer/Mount/EndContainer during the single
// layout pass, BindEvent and OnSessionLoad any time before Serve, and
// PushValue from session-load handlers while serving.
type Runtime interface {
	// CreateWidget constructs a widget of the given kind, forwarding params
	// verbatim, and returns its handle.
	CreateWidget(ctx context.Context, kind string, params domain.Params) (WidgetHandle, error)

	// BeginContainer opens a container scope (row, column, group, ...) at
	// the current layout position. Containers nest; EndContainer closes the
	// innermost open scope.
	BeginContainer(ctx context.Context, kind string, params domain.Params) error
	EndContainer(ctx context.Context) error

	// Mount places an already-constructed widget at the current layout
	// position. Position is purely call-order dependent.
	Mount(ctx context.Context, h WidgetHandle) error

	// BindEvent forwards an event reaction to the runtime's own dispatch
	// facility and returns an opaque registration token.
	BindEvent(ctx context.Context, reg EventRegistration) (EventToken, error)

	// OnSessionLoad subscribes to session-start notifications.
	OnSessionLoad(fn SessionLoadFunc) (Subscription, error)

	// PushValue sets the current value of a widget for the active session.
	PushValue(ctx context.Context, h WidgetHandle, value any) error

	// Serve runs the runtime's blocking serve loop. It does not return
	// until the runtime is shut down or ctx is cancelled.
	Serve(ctx context.Context, opts LaunchOptions) error

	// Shutdown stops the serve loop and releases runtime resources.
	Shutdown(ctx context.Context) error
}
