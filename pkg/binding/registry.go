package binding

import (
	"fmt"
	"sync"

	"github.com/aretw0/vine/pkg/domain"
)

// Registry collects the component descriptors declared on a definition.
// Names must be unique; a collision is recorded and surfaced at
// materialization time, before any widget is constructed.
type Registry struct {
	mu          sync.RWMutex
	order       []string
	descriptors map[string]domain.Descriptor
	declErr     error
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]domain.Descriptor),
	}
}

// Declare records a descriptor under its name.
// The params map is copied, so the caller's map stays free for reuse.
func (r *Registry) Declare(name, kind string, params domain.Params) (domain.Descriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	desc := domain.Descriptor{Name: name, Kind: kind, Params: params.Clone()}

	if name == "" {
		err := fmt.Errorf("component name is required (kind %q)", kind)
		if r.declErr == nil {
			r.declErr = err
		}
		return desc, err
	}
	if _, exists := r.descriptors[name]; exists {
		err := &domain.DuplicateBindingError{Name: name}
		if r.declErr == nil {
			r.declErr = err
		}
		return desc, err
	}

	r.order = append(r.order, name)
	r.descriptors[name] = desc
	return desc, nil
}

// Descriptors returns the declared descriptors in declaration order.
func (r *Registry) Descriptors() []domain.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.descriptors[name])
	}
	return out
}

// Err returns the first declaration error, if any.
func (r *Registry) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.declErr
}
