// # internal/output/dot.go
package output

import (
	"fmt"
	"sort"
	"strings"

	"archdrift/internal/engine/graph"
)

type DOTGenerator struct {
	snapshot graph.Snapshot
}

func NewDOTGenerator(snap graph.Snapshot) *DOTGenerator {
	return &DOTGenerator{snapshot: snap}
}

// Generate renders the component graph with one cluster per layer and the
// given cycles highlighted in red.
func (d *DOTGenerator) Generate(cycles [][]string) (string, error) {
	var buf strings.Builder

	buf.WriteString("digraph components {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=8, penwidth=1.2];\n")
	buf.WriteString("  ranksep=1.2;\n")
	buf.WriteString("  nodesep=0.5;\n")
	buf.WriteString("  splines=polyline;\n\n")

	cycleEdges := cycleEdgeSet(cycles)
	cycleNodes := cycleNodeSet(cycles)

	for i, layer := range layerOrder(d.snapshot.Nodes) {
		buf.WriteString(fmt.Sprintf("  subgraph cluster_%d {\n", i))
		buf.WriteString(fmt.Sprintf("    label=%q;\n", layerLabel(layer)))
		buf.WriteString("    style=filled;\n")
		buf.WriteString("    color=\"whitesmoke\";\n")
		for _, node := range nodesInLayer(d.snapshot.Nodes, layer) {
			label := node.Name
			if label == "" {
				label = node.ID
			}
			if node.Type != graph.TypeUnset {
				label = fmt.Sprintf("%s\\n(%s)", label, node.Type)
			}
			if cycleNodes[node.ID] {
				buf.WriteString(fmt.Sprintf("    \"%s\" [label=\"%s\", fillcolor=\"mistyrose\", style=\"rounded,filled\", color=\"red\", penwidth=2.0];\n",
					node.ID, label))
			} else {
				buf.WriteString(fmt.Sprintf("    \"%s\" [label=\"%s\", fillcolor=\"white\", style=\"rounded,filled\"];\n",
					node.ID, label))
			}
		}
		buf.WriteString("  }\n\n")
	}

	for _, edge := range d.snapshot.Edges {
		switch {
		case cycleEdges[edge.Source] != nil && cycleEdges[edge.Source][edge.Target]:
			buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [color=\"red\", penwidth=3.0, label=\"CYCLE\"];\n",
				edge.Source, edge.Target))
		case edge.Kind == graph.EdgeCall:
			buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [color=\"grey\", style=dashed];\n",
				edge.Source, edge.Target))
		default:
			buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [color=\"darkslategrey\"];\n",
				edge.Source, edge.Target))
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func cycleEdgeSet(cycles [][]string) map[string]map[string]bool {
	edges := make(map[string]map[string]bool)
	for _, cycle := range cycles {
		for i := range cycle {
			from := cycle[i]
			to := cycle[(i+1)%len(cycle)]
			if edges[from] == nil {
				edges[from] = make(map[string]bool)
			}
			edges[from][to] = true
		}
	}
	return edges
}

func cycleNodeSet(cycles [][]string) map[string]bool {
	nodes := make(map[string]bool)
	for _, cycle := range cycles {
		for _, id := range cycle {
			nodes[id] = true
		}
	}
	return nodes
}

func layerOrder(nodes []graph.ComponentNode) []graph.Layer {
	seen := make(map[graph.Layer]bool)
	for _, node := range nodes {
		seen[node.Layer] = true
	}
	order := make([]graph.Layer, 0, len(seen))
	for layer := range seen {
		order = append(order, layer)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	return order
}

func nodesInLayer(nodes []graph.ComponentNode, layer graph.Layer) []graph.ComponentNode {
	matched := make([]graph.ComponentNode, 0)
	for _, node := range nodes {
		if node.Layer == layer {
			matched = append(matched, node)
		}
	}
	return matched
}

func layerLabel(layer graph.Layer) string {
	if layer == graph.LayerUnset {
		return "unclassified"
	}
	return string(layer)
}
