package style

import (
	"fmt"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/graph"
)

const (
	ringAdapter = 0
	ringPort    = 1
	ringCore    = 2
)

type Hexagonal struct {
	invertedSeverity float64
}

func NewHexagonal(cfg config.Styles) *Hexagonal {
	return &Hexagonal{invertedSeverity: cfg.InvertedSeverity}
}

func (d *Hexagonal) Name() Style { return StyleHexagonal }

// HexRing maps a node into the hexagonal rings: adapters and other
// infrastructure on the outside, ports between, the domain core inside.
// Nodes the hexagonal vocabulary cannot place report ok=false.
func HexRing(n graph.ComponentNode) (int, bool) {
	switch n.Type {
	case graph.TypeAdapter, graph.TypeInfrastructure, graph.TypeFramework,
		graph.TypeController, graph.TypeRepository, graph.TypeGateway, graph.TypeBroker:
		return ringAdapter, true
	case graph.TypePort:
		return ringPort, true
	case graph.TypeEntity, graph.TypeModel, graph.TypeUseCase, graph.TypeService:
		return ringCore, true
	}
	switch n.Layer {
	case graph.LayerDomain, graph.LayerBusiness:
		return ringCore, true
	case graph.LayerPresentation, graph.LayerDataAccess:
		return ringAdapter, true
	}
	return 0, false
}

func (d *Hexagonal) Analyze(g *graph.ComponentGraph) Result {
	ringNames := map[int]string{ringAdapter: "adapter", ringPort: "port", ringCore: "core"}
	counts := make(map[string]int)
	classified := 0
	for _, node := range g.Nodes() {
		if ring, ok := HexRing(node); ok {
			classified++
			counts[ringNames[ring]]++
		} else {
			counts["unclassified"]++
		}
	}

	violations := make([]Violation, 0)
	considered := 0
	for _, edge := range g.Edges() {
		source, _ := g.Node(edge.Source)
		target, _ := g.Node(edge.Target)
		sourceRing, sok := HexRing(source)
		targetRing, tok := HexRing(target)
		if !sok || !tok {
			continue
		}
		considered++

		// The core and its ports must not reach outward to adapters.
		if targetRing == ringAdapter && sourceRing > ringAdapter {
			violations = append(violations, Violation{
				Type:     "inverted_dependency",
				Source:   edge.Source,
				Target:   edge.Target,
				Severity: d.invertedSeverity,
				Description: fmt.Sprintf("%s component %s depends outward on adapter %s",
					ringNames[sourceRing], edge.Source, edge.Target),
			})
		}
	}

	return Result{
		Style:       StyleHexagonal,
		Confidence:  confidence(classified, g.NodeCount(), len(violations), considered),
		LayerCounts: counts,
		Violations:  violations,
		Graph:       g.Snapshot(),
	}
}
