// # internal/engine/graph/cycles.go
package graph

import "sort"

// SimpleCycles enumerates every simple cycle of length >= 2 using Johnson's
// algorithm: an SCC pre-pass keeps the search inside strongly connected
// subgraphs, so cost grows with the number of cycles found rather than with
// unrelated dense regions. A positive limit caps the enumeration; the second
// return reports whether the cap was hit.
//
// Each cycle is rotated so its lexicographically smallest node comes first,
// which makes the result independent of edge-insertion order.
func (g *ComponentGraph) SimpleCycles(limit int) ([][]string, bool) {
	order := g.NodeIDs()
	adj := g.adjacency()

	cycles := make([][]string, 0)
	truncated := false

	for startIdx, start := range order {
		if truncated {
			break
		}

		// Subgraph induced on start and everything after it in the order.
		allowed := make(map[string]bool, len(order)-startIdx)
		for _, id := range order[startIdx:] {
			allowed[id] = true
		}
		subNodes := order[startIdx:]
		subAdj := make(map[string][]string, len(subNodes))
		for _, id := range subNodes {
			for _, next := range adj[id] {
				if allowed[next] {
					subAdj[id] = append(subAdj[id], next)
				}
			}
		}

		componentOf, components := stronglyConnectedComponents(subNodes, subAdj)
		comp := components[componentOf[start]]
		if len(comp) < 2 {
			continue
		}

		inComp := make(map[string]bool, len(comp))
		for _, id := range comp {
			inComp[id] = true
		}
		compAdj := make(map[string][]string, len(comp))
		for _, id := range comp {
			for _, next := range subAdj[id] {
				if inComp[next] {
					compAdj[id] = append(compAdj[id], next)
				}
			}
		}

		blocked := make(map[string]bool, len(comp))
		blockMap := make(map[string]map[string]bool, len(comp))
		stack := make([]string, 0, len(comp))

		var unblock func(string)
		unblock = func(v string) {
			blocked[v] = false
			for w := range blockMap[v] {
				delete(blockMap[v], w)
				if blocked[w] {
					unblock(w)
				}
			}
		}

		var circuit func(string) bool
		circuit = func(v string) bool {
			found := false
			stack = append(stack, v)
			blocked[v] = true

			for _, w := range compAdj[v] {
				if truncated {
					break
				}
				if w == start {
					if limit > 0 && len(cycles) >= limit {
						truncated = true
						break
					}
					cycle := make([]string, len(stack))
					copy(cycle, stack)
					cycles = append(cycles, cycle)
					found = true
				} else if !blocked[w] {
					if circuit(w) {
						found = true
					}
				}
			}

			if found {
				unblock(v)
			} else {
				for _, w := range compAdj[v] {
					if blockMap[w] == nil {
						blockMap[w] = make(map[string]bool)
					}
					blockMap[w][v] = true
				}
			}

			stack = stack[:len(stack)-1]
			return found
		}

		circuit(start)
	}

	return cycles, truncated
}

// WeaklyConnectedComponents groups nodes reachable from each other when edge
// direction is ignored. Components and their members come back sorted.
func (g *ComponentGraph) WeaklyConnectedComponents() [][]string {
	visited := make(map[string]bool, len(g.nodes))
	components := make([][]string, 0)

	for _, id := range g.NodeIDs() {
		if visited[id] {
			continue
		}
		component := make([]string, 0)
		queue := []string{id}
		visited[id] = true
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			component = append(component, curr)
			for _, next := range g.undirectedNeighbors(curr) {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		sort.Strings(component)
		components = append(components, component)
	}

	return components
}

// EdgeDensity is the directed density of the subgraph induced on the given
// nodes: edges / (n * (n-1)).
func (g *ComponentGraph) EdgeDensity(nodes []string) float64 {
	n := len(nodes)
	if n < 2 {
		return 0
	}
	member := make(map[string]bool, n)
	for _, id := range nodes {
		member[id] = true
	}
	edges := 0
	for _, id := range nodes {
		for target := range g.out[id] {
			if member[target] {
				edges++
			}
		}
	}
	return float64(edges) / float64(n*(n-1))
}

func stronglyConnectedComponents(nodes []string, adjacency map[string][]string) (map[string]int, [][]string) {
	index := 0
	stack := make([]string, 0, len(nodes))
	onStack := make(map[string]bool, len(nodes))
	indexByNode := make(map[string]int, len(nodes))
	lowLink := make(map[string]int, len(nodes))
	componentOf := make(map[string]int, len(nodes))
	components := make([][]string, 0)

	var strongConnect func(string)
	strongConnect = func(v string) {
		indexByNode[v] = index
		lowLink[v] = index
		index++

		stack = append(stack, v)
		onStack[v] = true

		for _, w := range adjacency[v] {
			if _, seen := indexByNode[w]; !seen {
				strongConnect(w)
				if lowLink[w] < lowLink[v] {
					lowLink[v] = lowLink[w]
				}
			} else if onStack[w] && indexByNode[w] < lowLink[v] {
				lowLink[v] = indexByNode[w]
			}
		}

		if lowLink[v] != indexByNode[v] {
			return
		}

		component := make([]string, 0)
		for {
			last := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[last] = false
			component = append(component, last)
			if last == v {
				break
			}
		}
		sort.Strings(component)
		compID := len(components)
		components = append(components, component)
		for _, n := range component {
			componentOf[n] = compID
		}
	}

	for _, node := range nodes {
		if _, seen := indexByNode[node]; !seen {
			strongConnect(node)
		}
	}

	return componentOf, components
}
