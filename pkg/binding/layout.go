package binding

import (
	"context"
	"fmt"

	"github.com/aretw0/vine/pkg/domain"
	"github.com/aretw0/vine/pkg/ports"
)

// LayoutFunc is the user-supplied arrangement step. It runs exactly once per
// instance, immediately after materialization, and establishes the visual
// hierarchy by placing components and raw widgets in call order.
type LayoutFunc func(l *Layout) error

// Layout is the builder handed to a LayoutFunc. It is only valid during the
// layout pass; using it afterwards fails with a LayoutOrderError.
type Layout struct {
	ctx        context.Context
	rt         ports.Runtime
	inst       *Instance
	active     bool
	placements int
}

// Get returns the bound component declared under name, or nil if the
// definition never declared it. Place rejects nil components, so chained
// l.Place(l.Get("name")) fails cleanly on a typo.
func (l *Layout) Get(name string) *Component {
	return l.inst.comps[name]
}

// Place mounts a bound component at the current layout position. Visual
// position is exactly the position of this call in the layout procedure's
// execution order. A component can be placed once; it must belong to the
// instance being laid out.
func (l *Layout) Place(c *Component) error {
	if c == nil {
		return &domain.LayoutOrderError{Name: "<nil>", Reason: "unknown component"}
	}
	if !l.active {
		return &domain.LayoutOrderError{Name: c.name, Reason: "layout pass is not active"}
	}
	if c.owner != l.inst {
		return &domain.LayoutOrderError{Name: c.name, Reason: "component belongs to a different instance"}
	}
	if c.handle == nil {
		return &domain.LayoutOrderError{Name: c.name, Reason: "component is not materialized"}
	}

	c.mu.Lock()
	if c.placed {
		c.mu.Unlock()
		return &domain.DuplicatePlacementError{Name: c.name}
	}
	c.placed = true
	c.mu.Unlock()

	if err := l.rt.Mount(l.ctx, c.handle); err != nil {
		return fmt.Errorf("mounting %q: %w", c.name, err)
	}
	l.placements++
	return nil
}

// Widget constructs and mounts a raw collaborator widget that is not part of
// the declarative registry (static markdown, separators, ...).
func (l *Layout) Widget(kind string, params domain.Params) error {
	if !l.active {
		return &domain.LayoutOrderError{Name: kind, Reason: "layout pass is not active"}
	}
	h, err := l.rt.CreateWidget(l.ctx, kind, params)
	if err != nil {
		return fmt.Errorf("constructing raw widget %q: %w", kind, err)
	}
	if err := l.rt.Mount(l.ctx, h); err != nil {
		return fmt.Errorf("mounting raw widget %q: %w", kind, err)
	}
	return nil
}

// Container opens a container scope of the given kind, runs fn inside it
// and closes the scope. Containers nest freely.
func (l *Layout) Container(kind string, params domain.Params, fn func() error) error {
	if !l.active {
		return &domain.LayoutOrderError{Name: kind, Reason: "layout pass is not active"}
	}
	if err := l.rt.BeginContainer(l.ctx, kind, params); err != nil {
		return fmt.Errorf("opening %q container: %w", kind, err)
	}
	if fn != nil {
		if err := fn(); err != nil {
			return err
		}
	}
	if err := l.rt.EndContainer(l.ctx); err != nil {
		return fmt.Errorf("closing %q container: %w", kind, err)
	}
	return nil
}

// Row opens a horizontal container scope.
func (l *Layout) Row(params domain.Params, fn func() error) error {
	return l.Container("row", params, fn)
}

// Column opens a vertical container scope.
func (l *Layout) Column(params domain.Params, fn func() error) error {
	return l.Container("column", params, fn)
}

// Group opens a visual grouping scope.
func (l *Layout) Group(params domain.Params, fn func() error) error {
	return l.Container("group", params, fn)
}
