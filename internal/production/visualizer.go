// Package production provides integrations around the engine that are not
// part of its core contract. Currently: Graphviz export.
package production

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/comalice/fsmx"
)

// DefaultVisualizer renders a configuration as Graphviz DOT.
type DefaultVisualizer struct{}

// Edge represents a transition edge.
type Edge struct {
	From  fsmx.StateID
	To    fsmx.StateID
	Label fsmx.EventID
}

// ExportDOT generates DOT source for cfg. States appear in configuration
// order, the initial state is drawn with a double border and active, when
// non-empty, is highlighted.
func (v *DefaultVisualizer) ExportDOT(cfg *fsmx.Config, active fsmx.StateID) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph StateMachine {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	for _, id := range cfg.States.IDs() {
		var attrs string
		if id == cfg.Initial {
			attrs += " peripheries=2"
		}
		if active != "" && id == active {
			attrs += ` style="rounded,filled" fillcolor=lightgreen`
		}
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", id, id, attrs)
	}

	for _, e := range CollectEdges(cfg) {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// CollectEdges lists every transition, grouped by source state in
// configuration order and sorted by event within a state.
func CollectEdges(cfg *fsmx.Config) []Edge {
	var edges []Edge
	for _, id := range cfg.States.IDs() {
		state, _ := cfg.States.Get(id)
		events := make([]fsmx.EventID, 0, len(state.Transitions))
		for event := range state.Transitions {
			events = append(events, event)
		}
		slices.Sort(events)
		for _, event := range events {
			edges = append(edges, Edge{From: id, To: state.Transitions[event], Label: event})
		}
	}
	return edges
}
