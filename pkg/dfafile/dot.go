package dfafile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ha1tch/dfakit/pkg/dfa"
)

// GenerateDOT converts an automaton to Graphviz DOT format.
func GenerateDOT(a *dfa.Automaton, title string) string {
	var sb strings.Builder

	sb.WriteString("digraph DFA {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [fontname=\"Helvetica\", fontsize=11];\n")
	sb.WriteString("    edge [fontname=\"Helvetica\", fontsize=10];\n")
	sb.WriteString("\n")

	if title != "" {
		sb.WriteString("    labelloc=\"t\";\n")
		sb.WriteString(fmt.Sprintf("    label=\"%s\";\n", escapeDOT(title)))
		sb.WriteString("\n")
	}

	// Invisible start node pointing at the initial state.
	sb.WriteString("    __start [shape=none, label=\"\", width=0, height=0];\n")
	sb.WriteString(fmt.Sprintf("    __start -> \"%s\";\n", escapeDOT(string(a.InitialState()))))
	sb.WriteString("\n")

	for _, q := range a.States().States() {
		shape := "circle"
		if a.IsFinal(q) {
			shape = "doublecircle"
		}
		sb.WriteString(fmt.Sprintf("    \"%s\" [shape=%s];\n", escapeDOT(string(q)), shape))
	}
	sb.WriteString("\n")

	// Group parallel transitions into one edge with a combined label.
	delta := a.Transitions()
	edgeLabels := make(map[[2]dfa.State][]string)
	for _, k := range delta.Keys() {
		to, _ := delta.Apply(k.From, k.Input)
		key := [2]dfa.State{k.From, to}
		edgeLabels[key] = append(edgeLabels[key], string(k.Input))
	}

	edges := make([][2]dfa.State, 0, len(edgeLabels))
	for key := range edgeLabels {
		edges = append(edges, key)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	for _, key := range edges {
		combined := strings.Join(edgeLabels[key], ", ")
		sb.WriteString(fmt.Sprintf("    \"%s\" -> \"%s\" [label=\"%s\"];\n",
			escapeDOT(string(key[0])), escapeDOT(string(key[1])), escapeDOT(combined)))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "<", "\\<")
	s = strings.ReplaceAll(s, ">", "\\>")
	return s
}
