package style

import (
	"fmt"
	"strings"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/graph"
	"archdrift/internal/shared/util"
)

// serviceRoots are path segments whose child directory names a service.
var serviceRoots = map[string]bool{
	"services":      true,
	"microservices": true,
	"apps":          true,
}

type Microservices struct {
	directSeverity float64
}

func NewMicroservices(cfg config.Styles) *Microservices {
	return &Microservices{directSeverity: cfg.ServiceSeverity}
}

func (d *Microservices) Name() Style { return StyleMicroservices }

// ServiceKey returns the service a node belongs to, derived from its path
// (services/<name>/...). Gateway-typed nodes are classified without a
// service of their own; they are the sanctioned crossing point.
func ServiceKey(n graph.ComponentNode) (service string, isGateway, ok bool) {
	segments := strings.Split(util.NormalizePatternPath(n.Path), "/")
	for i := 0; i < len(segments)-1; i++ {
		if serviceRoots[strings.ToLower(segments[i])] {
			return strings.ToLower(segments[i+1]), false, true
		}
	}
	if n.Type == graph.TypeGateway {
		return "", true, true
	}
	return "", false, false
}

func (d *Microservices) Analyze(g *graph.ComponentGraph) Result {
	counts := make(map[string]int)
	classified := 0
	for _, node := range g.Nodes() {
		service, isGateway, ok := ServiceKey(node)
		switch {
		case !ok:
			counts["unclassified"]++
		case isGateway:
			classified++
			counts["gateway"]++
		default:
			classified++
			counts[service]++
		}
	}

	violations := make([]Violation, 0)
	considered := 0
	for _, edge := range g.Edges() {
		source, _ := g.Node(edge.Source)
		target, _ := g.Node(edge.Target)
		sourceService, sourceGateway, sok := ServiceKey(source)
		targetService, targetGateway, tok := ServiceKey(target)
		if !sok || !tok {
			continue
		}
		considered++

		// Gateways may talk to anyone; services may only reach their own
		// code directly.
		if sourceGateway || targetGateway || sourceService == targetService {
			continue
		}
		violations = append(violations, Violation{
			Type:     "direct_service_dependency",
			Source:   edge.Source,
			Target:   edge.Target,
			Severity: d.directSeverity,
			Description: fmt.Sprintf("service %s depends directly on service %s, bypassing the gateway",
				sourceService, targetService),
		})
	}

	return Result{
		Style:       StyleMicroservices,
		Confidence:  confidence(classified, g.NodeCount(), len(violations), considered),
		LayerCounts: counts,
		Violations:  violations,
		Graph:       g.Snapshot(),
	}
}
