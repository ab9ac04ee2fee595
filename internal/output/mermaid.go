package output

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"archdrift/internal/engine/graph"
	"archdrift/internal/engine/style"
)

type MermaidGenerator struct {
	snapshot graph.Snapshot
}

func NewMermaidGenerator(snap graph.Snapshot) *MermaidGenerator {
	return &MermaidGenerator{snapshot: snap}
}

// Generate renders a flowchart with one subgraph per layer. Cycle edges and
// style violations get labeled, styled links.
func (m *MermaidGenerator) Generate(cycles [][]string, violations []style.Violation) (string, error) {
	var b strings.Builder
	b.WriteString("%%{init: {'flowchart': {'nodeSpacing': 60, 'rankSpacing': 90, 'curve': 'basis'}}}%%\n")
	b.WriteString("flowchart LR\n")

	names := make([]string, 0, len(m.snapshot.Nodes))
	for _, node := range m.snapshot.Nodes {
		names = append(names, node.ID)
	}
	ids := makeMermaidIDs(names)

	for _, layer := range layerOrder(m.snapshot.Nodes) {
		nodes := nodesInLayer(m.snapshot.Nodes, layer)
		b.WriteString(fmt.Sprintf("  subgraph layer_%s[\"%s\"]\n",
			sanitizeMermaidID(layerLabel(layer)), escapeMermaidLabel(layerLabel(layer))))
		for _, node := range nodes {
			b.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", ids[node.ID], escapeMermaidLabel(nodeLabel(node))))
		}
		b.WriteString("  end\n")
	}

	cycleEdges := cycleEdgeSet(cycles)
	cycleNodes := cycleNodeSet(cycles)
	violationEdges := violationEdgeSet(violations)

	if len(cycleNodes) > 0 {
		cycleIDs := make([]string, 0, len(cycleNodes))
		for _, name := range names {
			if cycleNodes[name] {
				cycleIDs = append(cycleIDs, ids[name])
			}
		}
		sort.Strings(cycleIDs)
		b.WriteString("  classDef cycleNode fill:#ffecec,stroke:#cc0000,stroke-width:2px;\n")
		b.WriteString("  class " + strings.Join(cycleIDs, ",") + " cycleNode;\n")
	}

	b.WriteString("\n")
	linkIndex := 0
	cycleLinks := make([]int, 0)
	violationLinks := make([]int, 0)
	for _, edge := range m.snapshot.Edges {
		label := ""
		switch {
		case cycleEdges[edge.Source] != nil && cycleEdges[edge.Source][edge.Target]:
			label = "|CYCLE|"
			cycleLinks = append(cycleLinks, linkIndex)
		case violationEdges[edge.Source+"->"+edge.Target]:
			label = "|VIOLATION|"
			violationLinks = append(violationLinks, linkIndex)
		}
		b.WriteString(fmt.Sprintf("  %s -->%s %s\n", ids[edge.Source], label, ids[edge.Target]))
		linkIndex++
	}

	if len(cycleLinks) > 0 {
		b.WriteString(fmt.Sprintf("  linkStyle %s stroke:#cc0000,stroke-width:3px;\n", joinInts(cycleLinks)))
	}
	if len(violationLinks) > 0 {
		b.WriteString(fmt.Sprintf("  linkStyle %s stroke:#a64d00,stroke-width:2px,stroke-dasharray:5 3;\n", joinInts(violationLinks)))
	}

	return b.String(), nil
}

func nodeLabel(node graph.ComponentNode) string {
	label := node.Name
	if label == "" {
		label = node.ID
	}
	if node.Type != graph.TypeUnset {
		label = fmt.Sprintf("%s\\n(%s)", label, node.Type)
	}
	return label
}

func violationEdgeSet(violations []style.Violation) map[string]bool {
	edges := make(map[string]bool, len(violations))
	for _, v := range violations {
		edges[v.Source+"->"+v.Target] = true
	}
	return edges
}

func sanitizeMermaidID(name string) string {
	if name == "" {
		return "n"
	}
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune('_')
	}
	out := b.String()
	if out == "" {
		return "n"
	}
	if unicode.IsDigit(rune(out[0])) {
		return "n_" + out
	}
	return out
}

func makeMermaidIDs(names []string) map[string]string {
	ids := make(map[string]string, len(names))
	used := make(map[string]int, len(names))
	for _, name := range names {
		base := sanitizeMermaidID(name)
		idx := used[base]
		used[base] = idx + 1
		if idx == 0 {
			ids[name] = base
			continue
		}
		ids[name] = fmt.Sprintf("%s_%d", base, idx+1)
	}
	return ids
}

func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
