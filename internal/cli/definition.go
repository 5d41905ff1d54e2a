package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/vine"
	"github.com/aretw0/vine/pkg/adapters/deffile"
	"github.com/aretw0/vine/pkg/adapters/headless"
)

// LoadUI loads a definition file and materializes it on a headless runtime.
// The headless runtime is returned alongside the UI so callers can reach the
// recorded layout tree.
func LoadUI(ctx context.Context, path string, logger *slog.Logger) (*vine.UI, *headless.Runtime, error) {
	def, err := deffile.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load definition: %w", err)
	}

	rt := headless.New()
	ui, err := vine.New(ctx, def, rt, vine.WithLogger(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("materialize definition: %w", err)
	}
	return ui, rt, nil
}
