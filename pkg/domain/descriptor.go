package domain

// Params is an opaque bag of construction or display parameters.
// The binding layer forwards these verbatim to the collaborator runtime;
// it never interprets individual keys.
type Params map[string]any

// Clone returns a shallow copy of the params.
// Descriptors keep their own copy so later mutation of the caller's map
// cannot leak into an already-declared component.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Descriptor is a declarative placeholder for a UI component: the widget
// kind plus its construction parameters, attached by name to a Definition.
// Descriptors are immutable once declared and shared by every instance of
// the same Definition; materialization derives a fresh bound component from
// each one without ever mutating the descriptor itself.
type Descriptor struct {
	Name   string `json:"name" yaml:"name" mapstructure:"name"`
	Kind   string `json:"kind" yaml:"kind" mapstructure:"kind"`
	Params Params `json:"params,omitempty" yaml:"params,omitempty" mapstructure:"params"`
}
