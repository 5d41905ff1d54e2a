package cli

import (
	"fmt"
	"strings"

	"github.com/aretw0/vine"
	"github.com/aretw0/vine/pkg/adapters/headless"
)

// Describe builds a markdown report of a materialized UI: lifecycle state,
// bound components and the recorded layout tree.
func Describe(ui *vine.UI, rt *headless.Runtime) string {
	var b strings.Builder

	b.WriteString("# Definition\n\n")
	fmt.Fprintf(&b, "State: `%s`\n\n", ui.State())

	b.WriteString("## Components\n\n")
	b.WriteString("| Name | Kind | Widget | Source | Placed |\n")
	b.WriteString("|------|------|--------|--------|--------|\n")
	for _, c := range ui.Components() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			c.Name(), c.Kind(), c.Handle().ID(), mark(c.HasSource()), mark(c.Placed()))
	}

	b.WriteString("\n## Layout\n\n")
	writeNode(&b, rt.Tree(), 0)

	return b.String()
}

func mark(v bool) string {
	if v {
		return "yes"
	}
	return "-"
}

func writeNode(b *strings.Builder, n *headless.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	label := n.Kind
	if n.WidgetID != "" {
		label = fmt.Sprintf("%s (%s)", n.Kind, n.WidgetID)
	}
	fmt.Fprintf(b, "%s- %s\n", indent, label)
	for _, child := range n.Children {
		writeNode(b, child, depth+1)
	}
}
