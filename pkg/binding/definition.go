package binding

import (
	"github.com/aretw0/vine/pkg/domain"
)

// Definition is a declarative UI description: a set of named component
// descriptors plus the layout procedure that arranges them. A Definition
// builds nothing by itself; Materialize turns it into a live Instance.
//
// Definitions are shared: many instances can be materialized from one
// Definition, each getting its own bound components.
type Definition struct {
	params   domain.Params
	registry *Registry
	layout   LayoutFunc
}

// NewDefinition creates a definition. The params are forwarded verbatim to
// the runtime's root container (page title, theme, ...).
func NewDefinition(params domain.Params) *Definition {
	return &Definition{
		params:   params.Clone(),
		registry: NewRegistry(),
	}
}

// Declare attaches a component descriptor to the definition and returns a
// copy of it. Declaring the same name twice is a configuration error; it is
// recorded here and reported by Materialize before any widget is built.
func (d *Definition) Declare(name, kind string, params domain.Params) domain.Descriptor {
	desc, _ := d.registry.Declare(name, kind, params)
	return desc
}

// Layout sets the user-supplied layout procedure. It runs exactly once per
// materialized instance.
func (d *Definition) Layout(fn LayoutFunc) {
	d.layout = fn
}

// Descriptors returns the declared descriptors in declaration order.
func (d *Definition) Descriptors() []domain.Descriptor {
	return d.registry.Descriptors()
}

// Params returns the root container params.
func (d *Definition) Params() domain.Params {
	return d.params.Clone()
}
