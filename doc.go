/*
Package vine is a declarative binding layer between a UI description and an
application's mutable state, for single-user, session-based applications
hosted by an external UI runtime.

A Definition lists named components and their construction parameters
without building anything. Materializing the Definition against a
collaborator runtime produces one bound component per declared name, runs
the user-supplied layout procedure exactly once, and leaves a UI that is
ready to serve. Because the presentation layer retains no state across page
loads, each component may register a "source": a zero-argument function that
supplies the current model value, invoked on every session (re)start to
re-populate the visible state.

# Concept

Vine separates three concerns: the declarative registry (what components
exist), the layout pass (where they go), and the source protocol (what they
show). Rendering, event dispatch and network transport belong to the
collaborator runtime behind the ports.Runtime interface; Vine only owns the
binding contract at that boundary.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/vine"
		"github.com/aretw0/vine/pkg/adapters/headless"
		"github.com/aretw0/vine/pkg/binding"
		"github.com/aretw0/vine/pkg/domain"
	)

	func main() {
		// 1. Declare the UI.
		def := binding.NewDefinition(domain.Params{"title": "Greeter"})
		def.Declare("greeting", "markdown", nil)
		def.Layout(func(l *binding.Layout) error {
			return l.Place(l.Get("greeting"))
		})

		// 2. Materialize against a runtime.
		ctx := context.Background()
		ui, err := vine.New(ctx, def, headless.New())
		if err != nil {
			log.Fatal(err)
		}

		// 3. Bind model state. The source re-runs on every session start.
		ui.MustComponent("greeting").Source(func() (any, error) {
			return "hello", nil
		})

		// 4. Serve. Blocks until the host shuts the runtime down.
		if err := ui.Start(ctx); err != nil {
			log.Fatal(err)
		}
	}
*/
package vine
