// Package deffile loads UI definitions from YAML files.
//
// The declarative registry does not require Go code: a definition file
// lists the named components with their construction parameters and,
// optionally, the layout tree. Applications load the file, bind sources and
// events to the named components, and start the UI as usual. The CLI's
// validate/inspect/serve commands work on the same files.
package deffile

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/vine/pkg/binding"
	"github.com/aretw0/vine/pkg/domain"
)

// fileDef mirrors the YAML structure. It is decoded through mapstructure so
// the same DTO also accepts definitions embedded in other config formats.
type fileDef struct {
	Title      string          `mapstructure:"title"`
	Params     domain.Params   `mapstructure:"params"`
	Components []componentSpec `mapstructure:"components"`
	Layout     []nodeSpec      `mapstructure:"layout"`
}

type componentSpec struct {
	Name   string        `mapstructure:"name"`
	Kind   string        `mapstructure:"kind"`
	Params domain.Params `mapstructure:"params"`
}

// nodeSpec is one entry of the layout tree: exactly one of Container,
// Place or Widget must be set.
type nodeSpec struct {
	Container string        `mapstructure:"container"`
	Place     string        `mapstructure:"place"`
	Widget    string        `mapstructure:"widget"`
	Params    domain.Params `mapstructure:"params"`
	Children  []nodeSpec    `mapstructure:"children"`
}

// Load reads a definition file from disk.
func Load(path string) (*binding.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("definition %s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a YAML definition into a binding.Definition.
// Declaration errors (duplicate names) are not raised here; they surface at
// materialization time, exactly as with code-declared definitions.
func Parse(data []byte) (*binding.Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	var spec fileDef
	if err := mapstructure.Decode(raw, &spec); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}
	if len(spec.Components) == 0 {
		return nil, fmt.Errorf("definition declares no components")
	}

	declared := make(map[string]bool, len(spec.Components))
	for _, c := range spec.Components {
		if c.Kind == "" {
			return nil, fmt.Errorf("component %q has no kind", c.Name)
		}
		declared[c.Name] = true
	}
	if err := validateNodes(spec.Layout, declared); err != nil {
		return nil, err
	}

	params := spec.Params.Clone()
	if spec.Title != "" {
		if params == nil {
			params = domain.Params{}
		}
		params["title"] = spec.Title
	}

	def := binding.NewDefinition(params)
	for _, c := range spec.Components {
		def.Declare(c.Name, c.Kind, c.Params)
	}
	if len(spec.Layout) > 0 {
		nodes := spec.Layout
		def.Layout(func(l *binding.Layout) error {
			return applyNodes(l, nodes)
		})
	}
	return def, nil
}

func validateNodes(nodes []nodeSpec, declared map[string]bool) error {
	for _, n := range nodes {
		set := 0
		for _, field := range []string{n.Container, n.Place, n.Widget} {
			if field != "" {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("layout node must set exactly one of container, place or widget")
		}
		if n.Place != "" && !declared[n.Place] {
			return fmt.Errorf("layout places undeclared component %q", n.Place)
		}
		if n.Container == "" && len(n.Children) > 0 {
			return fmt.Errorf("only containers can have children")
		}
		if err := validateNodes(n.Children, declared); err != nil {
			return err
		}
	}
	return nil
}

func applyNodes(l *binding.Layout, nodes []nodeSpec) error {
	for _, n := range nodes {
		var err error
		switch {
		case n.Place != "":
			err = l.Place(l.Get(n.Place))
		case n.Widget != "":
			err = l.Widget(n.Widget, n.Params)
		default:
			children := n.Children
			err = l.Container(n.Container, n.Params, func() error {
				return applyNodes(l, children)
			})
		}
		if err != nil {
			return err
		}
	}
	return nil
}
