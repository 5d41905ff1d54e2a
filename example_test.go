package vine_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/vine"
	"github.com/aretw0/vine/pkg/adapters/headless"
	"github.com/aretw0/vine/pkg/binding"
	"github.com/aretw0/vine/pkg/domain"
)

// ExampleNew demonstrates declaring a definition and materializing it
// against the headless runtime. No real toolkit is needed: the headless
// adapter records widgets and layout, which is ideal for tests and tooling.
func ExampleNew() {
	// 1. Declare the UI: named components plus a layout procedure.
	def := binding.NewDefinition(domain.Params{"title": "Greeter"})
	def.Declare("name_field", "textbox", domain.Params{"placeholder": "Your name"})
	def.Declare("greeting", "markdown", nil)
	def.Layout(func(l *binding.Layout) error {
		return l.Row(nil, func() error {
			if err := l.Place(l.Get("name_field")); err != nil {
				return err
			}
			return l.Place(l.Get("greeting"))
		})
	})

	// 2. Materialize. Every descriptor becomes a bound component.
	ui, err := vine.New(context.Background(), def, headless.New())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ui.State())
	for _, c := range ui.Components() {
		fmt.Println(c.Name(), c.Kind())
	}
	// Output:
	// laid_out
	// name_field textbox
	// greeting markdown
}
