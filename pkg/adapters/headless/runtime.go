// Package headless provides an in-memory collaborator runtime.
//
// It implements the full ports.Runtime contract without rendering anything:
// widgets are records, the layout hierarchy is a tree, session starts are
// fired by the caller. This makes it the reference runtime for tests, for
// the CLI tooling and for examples that exercise the binding layer without
// a real UI toolkit.
package headless

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/vine/pkg/domain"
	"github.com/aretw0/vine/pkg/ports"
)

// Widget is the headless widget record. It implements ports.WidgetHandle.
type Widget struct {
	id     string
	kind   string
	params domain.Params
}

// ID returns the runtime-assigned widget ID.
func (w *Widget) ID() string { return w.id }

// Kind returns the widget kind.
func (w *Widget) Kind() string { return w.kind }

// Params returns the construction params as received.
func (w *Widget) Params() domain.Params { return w.params }

// Node is one entry of the recorded layout hierarchy: a container with
// children, or a leaf holding a mounted widget.
type Node struct {
	Kind     string        `json:"kind"`
	Params   domain.Params `json:"params,omitempty"`
	WidgetID string        `json:"widget_id,omitempty"`
	Children []*Node       `json:"children,omitempty"`
}

type token string

func (t token) ID() string { return string(t) }

type subscription struct {
	cancel func()
	once   sync.Once
}

func (s *subscription) Cancel() {
	s.once.Do(s.cancel)
}

// Runtime is the in-memory runtime. The zero value is not usable; call New.
type Runtime struct {
	mu sync.Mutex

	seq       int
	order     []string
	widgets   map[string]*Widget
	values    map[string]any
	pushes    map[string][]any
	failKinds map[string]error

	root  *Node
	stack []*Node

	events []ports.EventRegistration

	loadSeq int
	loads   map[int]ports.SessionLoadFunc

	serving bool
	quit    chan struct{}
	stop    sync.Once
}

// New creates an empty headless runtime.
func New() *Runtime {
	root := &Node{Kind: "root"}
	return &Runtime{
		widgets:   make(map[string]*Widget),
		values:    make(map[string]any),
		pushes:    make(map[string][]any),
		failKinds: make(map[string]error),
		loads:     make(map[int]ports.SessionLoadFunc),
		root:      root,
		stack:     []*Node{root},
		quit:      make(chan struct{}),
	}
}

// FailKind makes every future construction of the given kind fail with err.
// Used to exercise construction error paths in tests.
func (r *Runtime) FailKind(kind string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failKinds[kind] = err
}

// CreateWidget records a widget and returns its handle.
func (r *Runtime) CreateWidget(ctx context.Context, kind string, params domain.Params) (ports.WidgetHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err, ok := r.failKinds[kind]; ok {
		return nil, err
	}

	r.seq++
	w := &Widget{
		id:     fmt.Sprintf("w%d", r.seq),
		kind:   kind,
		params: params.Clone(),
	}
	r.widgets[w.id] = w
	r.order = append(r.order, w.id)

	if v, ok := params["value"]; ok {
		r.values[w.id] = v
	}
	return w, nil
}

// BeginContainer opens a nested container scope.
func (r *Runtime) BeginContainer(ctx context.Context, kind string, params domain.Params) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	node := &Node{Kind: kind, Params: params.Clone()}
	top := r.stack[len(r.stack)-1]
	top.Children = append(top.Children, node)
	r.stack = append(r.stack, node)
	return nil
}

// EndContainer closes the innermost open scope.
func (r *Runtime) EndContainer(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.stack) == 1 {
		return errors.New("no open container")
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Mount records a widget at the current layout position.
func (r *Runtime) Mount(ctx context.Context, h ports.WidgetHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.widgets[h.ID()]
	if !ok {
		return fmt.Errorf("unknown widget %q", h.ID())
	}
	top := r.stack[len(r.stack)-1]
	top.Children = append(top.Children, &Node{Kind: w.kind, WidgetID: w.id})
	return nil
}

// BindEvent records the registration and returns a token.
func (r *Runtime) BindEvent(ctx context.Context, reg ports.EventRegistration) (ports.EventToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reg.Widget == nil {
		return nil, errors.New("event registration without widget")
	}
	if _, ok := r.widgets[reg.Widget.ID()]; !ok {
		return nil, fmt.Errorf("unknown widget %q", reg.Widget.ID())
	}
	r.events = append(r.events, reg)
	return token(fmt.Sprintf("e%d", len(r.events))), nil
}

// OnSessionLoad registers a session-start handler.
func (r *Runtime) OnSessionLoad(fn ports.SessionLoadFunc) (ports.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadSeq++
	id := r.loadSeq
	r.loads[id] = fn
	return &subscription{cancel: func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.loads, id)
	}}, nil
}

// PushValue records the push and sets the widget's current value.
func (r *Runtime) PushValue(ctx context.Context, h ports.WidgetHandle, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.widgets[h.ID()]; !ok {
		return fmt.Errorf("unknown widget %q", h.ID())
	}
	r.pushes[h.ID()] = append(r.pushes[h.ID()], value)
	r.values[h.ID()] = value
	return nil
}

// Serve blocks until Shutdown or context cancellation.
func (r *Runtime) Serve(ctx context.Context, opts ports.LaunchOptions) error {
	r.mu.Lock()
	if r.serving {
		r.mu.Unlock()
		return errors.New("runtime is already serving")
	}
	r.serving = true
	quit := r.quit
	r.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-quit:
		return nil
	}
}

// Shutdown unblocks Serve. Safe to call more than once.
func (r *Runtime) Shutdown(ctx context.Context) error {
	r.stop.Do(func() { close(r.quit) })
	return nil
}

// FireSessionLoad simulates a session (re)start: every registered handler
// runs once, in registration order.
func (r *Runtime) FireSessionLoad(ctx context.Context) {
	r.mu.Lock()
	ids := make([]int, 0, len(r.loads))
	for id := range r.loads {
		ids = append(ids, id)
	}
	// registration order: ids are monotonically assigned
	sort.Ints(ids)
	fns := make([]ports.SessionLoadFunc, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, r.loads[id])
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(ctx)
	}
}

// Dispatch simulates the runtime firing an event: every registration for
// the widget and verb runs its step chain in order. Step inputs are the
// current values of the input widgets; returned values are assigned to the
// output widgets positionally.
func (r *Runtime) Dispatch(ctx context.Context, widgetID, verb string) error {
	r.mu.Lock()
	regs := make([]ports.EventRegistration, 0)
	for _, reg := range r.events {
		if reg.Widget.ID() == widgetID && reg.Verb == verb {
			regs = append(regs, reg)
		}
	}
	r.mu.Unlock()

	if len(regs) == 0 {
		return fmt.Errorf("no %q registration for widget %q", verb, widgetID)
	}

	for _, reg := range regs {
		for _, step := range reg.Steps {
			inputs := make([]any, len(step.Inputs))
			r.mu.Lock()
			for i, in := range step.Inputs {
				inputs[i] = r.values[in.ID()]
			}
			r.mu.Unlock()

			outputs, err := step.Handler(ctx, inputs)
			if err != nil {
				return fmt.Errorf("handler for %q on %q: %w", verb, widgetID, err)
			}

			r.mu.Lock()
			for i, out := range step.Outputs {
				if i >= len(outputs) {
					break
				}
				r.values[out.ID()] = outputs[i]
				r.pushes[out.ID()] = append(r.pushes[out.ID()], outputs[i])
			}
			r.mu.Unlock()
		}
	}
	return nil
}

// SetValue sets a widget's current value directly, simulating user input.
func (r *Runtime) SetValue(widgetID string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[widgetID] = value
}

// Value returns a widget's current value.
func (r *Runtime) Value(widgetID string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[widgetID]
	return v, ok
}

// Pushes returns the values pushed to a widget, in push order.
func (r *Runtime) Pushes(widgetID string) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, len(r.pushes[widgetID]))
	copy(out, r.pushes[widgetID])
	return out
}

// Widgets returns all constructed widgets in creation order.
func (r *Runtime) Widgets() []*Widget {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Widget, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.widgets[id])
	}
	return out
}

// Events returns all recorded event registrations.
func (r *Runtime) Events() []ports.EventRegistration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.EventRegistration, len(r.events))
	copy(out, r.events)
	return out
}

// Tree returns the recorded layout hierarchy.
func (r *Runtime) Tree() *Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.root
}
