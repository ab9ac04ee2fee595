package style

import (
	"fmt"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/graph"
)

// layerIndex orders layers outermost-first; edges may only point from a
// lower index to a higher one.
var layerIndex = map[graph.Layer]int{
	graph.LayerPresentation: 0,
	graph.LayerBusiness:     1,
	graph.LayerDataAccess:   2,
	graph.LayerDomain:       3,
}

type Layered struct {
	upwardSeverity float64
	skipSeverity   float64
}

func NewLayered(cfg config.Styles) *Layered {
	return &Layered{
		upwardSeverity: cfg.UpwardSeverity,
		skipSeverity:   cfg.LayerSkipSeverity,
	}
}

func (d *Layered) Name() Style { return StyleLayered }

func (d *Layered) Analyze(g *graph.ComponentGraph) Result {
	counts := make(map[string]int)
	classified := 0
	for _, node := range g.Nodes() {
		if _, ok := layerIndex[node.Layer]; ok {
			classified++
			counts[string(node.Layer)]++
		} else {
			counts["unclassified"]++
		}
	}

	violations, considered := LayeredEdgeViolations(g, d.upwardSeverity, d.skipSeverity)

	return Result{
		Style:       StyleLayered,
		Confidence:  confidence(classified, g.NodeCount(), len(violations), considered),
		LayerCounts: counts,
		Violations:  violations,
		Graph:       g.Snapshot(),
	}
}

// LayeredEdgeViolations applies the layered direction rule to every edge
// whose endpoints both carry a layer. Upward dependencies (target in an
// outer layer than the source) are the hard violation; downward edges that
// skip more than one layer are a separate, lower-severity finding. The
// second return is the number of edges the rule examined.
//
// The erosion detector reuses this so style analysis and erosion scoring
// never disagree about the same edge.
func LayeredEdgeViolations(g *graph.ComponentGraph, upwardSeverity, skipSeverity float64) ([]Violation, int) {
	violations := make([]Violation, 0)
	considered := 0

	for _, edge := range g.Edges() {
		source, _ := g.Node(edge.Source)
		target, _ := g.Node(edge.Target)
		si, sok := layerIndex[source.Layer]
		ti, tok := layerIndex[target.Layer]
		if !sok || !tok {
			continue
		}
		considered++

		switch {
		case ti < si:
			violations = append(violations, Violation{
				Type:     "upward_dependency",
				Source:   edge.Source,
				Target:   edge.Target,
				Severity: upwardSeverity,
				Description: fmt.Sprintf("%s layer component %s depends on %s layer component %s",
					source.Layer, edge.Source, target.Layer, edge.Target),
			})
		case ti-si > 1:
			violations = append(violations, Violation{
				Type:     "layer_skip",
				Source:   edge.Source,
				Target:   edge.Target,
				Severity: skipSeverity,
				Description: fmt.Sprintf("%s skips intermediate layers to reach %s",
					edge.Source, edge.Target),
			})
		}
	}

	return violations, considered
}
