package style

import (
	"fmt"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/graph"
)

var cleanRingNames = [...]string{"frameworks", "interface_adapters", "usecases", "entities"}

type Clean struct {
	outwardSeverity float64
}

func NewClean(cfg config.Styles) *Clean {
	return &Clean{outwardSeverity: cfg.InvertedSeverity}
}

func (d *Clean) Name() Style { return StyleClean }

// CleanRing maps a node into the clean-architecture rings, entities
// innermost. The dependency rule only allows edges pointing inward.
func CleanRing(n graph.ComponentNode) (int, bool) {
	switch n.Type {
	case graph.TypeFramework, graph.TypeInfrastructure, graph.TypeBroker:
		return 0, true
	case graph.TypeController, graph.TypeGateway, graph.TypeAdapter, graph.TypeRepository:
		return 1, true
	case graph.TypeUseCase, graph.TypeService, graph.TypePort:
		return 2, true
	case graph.TypeEntity, graph.TypeModel:
		return 3, true
	}
	switch n.Layer {
	case graph.LayerPresentation, graph.LayerDataAccess:
		return 1, true
	case graph.LayerBusiness:
		return 2, true
	case graph.LayerDomain:
		return 3, true
	}
	return 0, false
}

func (d *Clean) Analyze(g *graph.ComponentGraph) Result {
	counts := make(map[string]int)
	classified := 0
	for _, node := range g.Nodes() {
		if ring, ok := CleanRing(node); ok {
			classified++
			counts[cleanRingNames[ring]]++
		} else {
			counts["unclassified"]++
		}
	}

	violations := make([]Violation, 0)
	considered := 0
	for _, edge := range g.Edges() {
		source, _ := g.Node(edge.Source)
		target, _ := g.Node(edge.Target)
		sourceRing, sok := CleanRing(source)
		targetRing, tok := CleanRing(target)
		if !sok || !tok {
			continue
		}
		considered++

		if targetRing < sourceRing {
			violations = append(violations, Violation{
				Type:     "outward_dependency",
				Source:   edge.Source,
				Target:   edge.Target,
				Severity: d.outwardSeverity,
				Description: fmt.Sprintf("%s component %s depends outward on %s component %s",
					cleanRingNames[sourceRing], edge.Source, cleanRingNames[targetRing], edge.Target),
			})
		}
	}

	return Result{
		Style:       StyleClean,
		Confidence:  confidence(classified, g.NodeCount(), len(violations), considered),
		LayerCounts: counts,
		Violations:  violations,
		Graph:       g.Snapshot(),
	}
}
