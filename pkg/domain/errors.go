package domain

import (
	"errors"
	"fmt"
)

// ErrAlreadyRunning is returned when Start is called on an instance that is
// already running or has been stopped.
var ErrAlreadyRunning = errors.New("ui instance already started")

// ErrNotLaidOut is returned when Start is called before the instance
// finished construction.
var ErrNotLaidOut = errors.New("ui instance is not laid out")

// DuplicateBindingError reports a name collision between two descriptors on
// the same definition. It is surfaced at materialization time, before any
// widget is constructed.
type DuplicateBindingError struct {
	Name string
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("duplicate binding %q", e.Name)
}

// ComponentConstructionError reports that the collaborator runtime could not
// construct the widget for a descriptor. It wraps the underlying cause.
type ComponentConstructionError struct {
	Name string
	Kind string
	Err  error
}

func (e *ComponentConstructionError) Error() string {
	return fmt.Sprintf("constructing component %q (kind %q): %v", e.Name, e.Kind, e.Err)
}

func (e *ComponentConstructionError) Unwrap() error { return e.Err }

// LayoutOrderError reports misuse of the placement contract: placing a
// component outside an active layout pass, or placing a component that
// belongs to a different instance.
type LayoutOrderError struct {
	Name   string
	Reason string
}

func (e *LayoutOrderError) Error() string {
	return fmt.Sprintf("layout order violation for %q: %s", e.Name, e.Reason)
}

// DuplicatePlacementError reports that a component was placed twice during
// one layout pass.
type DuplicatePlacementError struct {
	Name string
}

func (e *DuplicatePlacementError) Error() string {
	return fmt.Sprintf("component %q placed twice", e.Name)
}

// RehydrationError reports the failure of a single source function or value
// push during session rehydration. Failures are isolated per component and
// never abort the rest of the batch.
type RehydrationError struct {
	Name string
	Err  error
}

func (e *RehydrationError) Error() string {
	return fmt.Sprintf("rehydrating %q: %v", e.Name, e.Err)
}

func (e *RehydrationError) Unwrap() error { return e.Err }
