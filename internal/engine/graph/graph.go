// # internal/engine/graph/graph.go
package graph

import (
	"archdrift/internal/shared/util"
)

// ComponentNode is one file/module in the dependency graph.
type ComponentNode struct {
	ID           string        `json:"id"`
	Path         string        `json:"path"`
	Name         string        `json:"name"`
	Layer        Layer         `json:"layer,omitempty"`
	Type         ComponentType `json:"type,omitempty"`
	MethodsCount int           `json:"methods_count"`
	LOC          int           `json:"loc"`
}

type EdgeKind string

const (
	EdgeImport EdgeKind = "import"
	EdgeCall   EdgeKind = "call"
)

type DependencyEdge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kind   EdgeKind `json:"kind"`
}

// ComponentGraph holds the nodes and edges for one analysis run. It is
// mutated only by the Builder; every accessor returns copies, so a built
// graph is read-only to callers. One run owns one graph, so there is no
// locking here.
type ComponentGraph struct {
	nodes map[string]*ComponentNode
	out   map[string]map[string]*DependencyEdge // source -> target -> edge
	in    map[string]map[string]bool            // target -> source
}

func newComponentGraph() *ComponentGraph {
	return &ComponentGraph{
		nodes: make(map[string]*ComponentNode),
		out:   make(map[string]map[string]*DependencyEdge),
		in:    make(map[string]map[string]bool),
	}
}

// addNode inserts or merges a node. Merging is first-write-wins for fields
// the existing node has unset; re-adding an identical node is a no-op.
func (g *ComponentGraph) addNode(node ComponentNode) {
	existing, ok := g.nodes[node.ID]
	if !ok {
		n := node
		g.nodes[node.ID] = &n
		return
	}
	if existing.Path == "" {
		existing.Path = node.Path
	}
	if existing.Name == "" {
		existing.Name = node.Name
	}
	if existing.Layer == LayerUnset {
		existing.Layer = node.Layer
	}
	if existing.Type == TypeUnset {
		existing.Type = node.Type
	}
	if existing.MethodsCount == 0 {
		existing.MethodsCount = node.MethodsCount
	}
	if existing.LOC == 0 {
		existing.LOC = node.LOC
	}
}

// addEdge inserts a directed edge when both endpoints exist. Duplicate
// (source, target) pairs collapse to the first edge; self edges are dropped.
func (g *ComponentGraph) addEdge(source, target string, kind EdgeKind) bool {
	if source == target {
		return false
	}
	if _, ok := g.nodes[source]; !ok {
		return false
	}
	if _, ok := g.nodes[target]; !ok {
		return false
	}
	if g.out[source] == nil {
		g.out[source] = make(map[string]*DependencyEdge)
	}
	if _, ok := g.out[source][target]; ok {
		return false
	}
	g.out[source][target] = &DependencyEdge{Source: source, Target: target, Kind: kind}
	if g.in[target] == nil {
		g.in[target] = make(map[string]bool)
	}
	g.in[target][source] = true
	return true
}

func (g *ComponentGraph) Node(id string) (ComponentNode, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return ComponentNode{}, false
	}
	return *n, true
}

func (g *ComponentGraph) HasEdge(source, target string) bool {
	_, ok := g.out[source][target]
	return ok
}

func (g *ComponentGraph) NodeIDs() []string {
	return util.SortedStringKeys(g.nodes)
}

func (g *ComponentGraph) Nodes() []ComponentNode {
	ids := g.NodeIDs()
	nodes := make([]ComponentNode, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, *g.nodes[id])
	}
	return nodes
}

func (g *ComponentGraph) Edges() []DependencyEdge {
	edges := make([]DependencyEdge, 0)
	for _, source := range util.SortedStringKeys(g.out) {
		for _, target := range util.SortedStringKeys(g.out[source]) {
			edges = append(edges, *g.out[source][target])
		}
	}
	return edges
}

func (g *ComponentGraph) Successors(id string) []string {
	return util.SortedStringKeys(g.out[id])
}

func (g *ComponentGraph) Predecessors(id string) []string {
	return util.SortedStringKeys(g.in[id])
}

func (g *ComponentGraph) OutDegree(id string) int {
	return len(g.out[id])
}

func (g *ComponentGraph) InDegree(id string) int {
	return len(g.in[id])
}

func (g *ComponentGraph) NodeCount() int {
	return len(g.nodes)
}

func (g *ComponentGraph) EdgeCount() int {
	count := 0
	for _, targets := range g.out {
		count += len(targets)
	}
	return count
}

// Snapshot is the JSON-serializable form embedded in style results.
type Snapshot struct {
	Nodes []ComponentNode  `json:"nodes"`
	Edges []DependencyEdge `json:"edges"`
}

func (g *ComponentGraph) Snapshot() Snapshot {
	return Snapshot{Nodes: g.Nodes(), Edges: g.Edges()}
}

// adjacency returns sorted successor lists keyed by node, covering every
// node even when it has no successors.
func (g *ComponentGraph) adjacency() map[string][]string {
	adj := make(map[string][]string, len(g.nodes))
	for id := range g.nodes {
		adj[id] = util.SortedStringKeys(g.out[id])
	}
	return adj
}

// undirectedNeighbors merges successor and predecessor sets.
func (g *ComponentGraph) undirectedNeighbors(id string) []string {
	set := make(map[string]bool, len(g.out[id])+len(g.in[id]))
	for t := range g.out[id] {
		set[t] = true
	}
	for s := range g.in[id] {
		set[s] = true
	}
	return util.SortedStringKeys(set)
}
