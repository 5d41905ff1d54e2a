package sources

import "github.com/aretw0/vine/pkg/binding"

// Static returns a source that always supplies the same value.
// Useful for fixed headers and for tests.
func Static(v any) binding.SourceFunc {
	return func() (any, error) {
		return v, nil
	}
}
