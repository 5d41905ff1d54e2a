package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventMaterialize    EventType = "materialize"
	EventLayout         EventType = "layout"
	EventSessionLoad    EventType = "session_load"
	EventRehydrate      EventType = "rehydrate"
	EventRehydrateError EventType = "rehydrate_error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ComponentEvent describes a single component being materialized.
type ComponentEvent struct {
	EventBase
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// LayoutEvent describes the completion of the layout pass.
type LayoutEvent struct {
	EventBase
	Placements int `json:"placements"`
}

// SessionEvent describes one session-start notification.
type SessionEvent struct {
	EventBase
	Sources int `json:"sources"` // components with a registered source
}

// RehydrateEvent describes one source pull-and-push for a component.
// Err is set on the error variant only.
type RehydrateEvent struct {
	EventBase
	Name string `json:"name"`
	Err  error  `json:"-"`
}

// LifecycleHooks defines callbacks for binding-layer observability.
// All hooks are optional and invoked synchronously.
type LifecycleHooks struct {
	OnMaterialize    func(context.Context, *ComponentEvent)
	OnLayout         func(context.Context, *LayoutEvent)
	OnSessionLoad    func(context.Context, *SessionEvent)
	OnRehydrate      func(context.Context, *RehydrateEvent)
	OnRehydrateError func(context.Context, *RehydrateEvent)
}
