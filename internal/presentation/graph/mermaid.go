// Package graph renders a machine definition as a Mermaid state diagram.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stateboard/stateboard/pkg/machine"
)

// Mermaid produces stateDiagram-v2 syntax for the definition. Output is
// deterministic: states and events are emitted in sorted order so the diagram
// can be diffed and golden-tested.
func Mermaid(def *machine.Definition) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeID(def.Initial)))
	writeStates(&sb, def, "    ")
	return sb.String()
}

func writeStates(sb *strings.Builder, def *machine.Definition, indent string) {
	for _, name := range sortedStates(def) {
		node := def.States[name]
		safe := sanitizeID(name)

		if node.Nested != nil {
			sb.WriteString(fmt.Sprintf("%sstate %s {\n", indent, safe))
			sb.WriteString(fmt.Sprintf("%s    [*] --> %s\n", indent, sanitizeID(node.Nested.Initial)))
			writeStates(sb, node.Nested, indent+"    ")
			sb.WriteString(indent + "}\n")
		}

		for _, event := range sortedEvents(node) {
			for _, spec := range node.On[event] {
				// A transition without a target stays in place; Mermaid
				// shows it as a self-loop.
				target := spec.Target
				if target == "" {
					target = name
				}
				sb.WriteString(fmt.Sprintf("%s%s --> %s : %s\n", indent, safe, sanitizeID(target), event))
			}
		}
	}
}

func sortedStates(def *machine.Definition) []string {
	names := make([]string, 0, len(def.States))
	for name := range def.States {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedEvents(node machine.StateNode) []string {
	events := make([]string, 0, len(node.On))
	for event := range node.On {
		events = append(events, event)
	}
	sort.Strings(events)
	return events
}

func sanitizeID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
