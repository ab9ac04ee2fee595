package style

import (
	"fmt"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/graph"
)

type EventDriven struct {
	syncSeverity float64
}

func NewEventDriven(cfg config.Styles) *EventDriven {
	return &EventDriven{syncSeverity: cfg.SyncSeverity}
}

func (d *EventDriven) Name() Style { return StyleEventDriven }

// eventRole distinguishes the hubs messages flow through from the actors
// that produce and consume them.
func eventRole(n graph.ComponentNode) (role string, isActor, ok bool) {
	switch n.Type {
	case graph.TypeEvent:
		return "event", false, true
	case graph.TypeBroker:
		return "broker", false, true
	case graph.TypeProducer:
		return "producer", true, true
	case graph.TypeConsumer:
		return "consumer", true, true
	case graph.TypeHandler:
		return "handler", true, true
	}
	return "", false, false
}

func (d *EventDriven) Analyze(g *graph.ComponentGraph) Result {
	counts := make(map[string]int)
	classified := 0
	for _, node := range g.Nodes() {
		if role, _, ok := eventRole(node); ok {
			classified++
			counts[role]++
		} else {
			counts["unclassified"]++
		}
	}

	violations := make([]Violation, 0)
	considered := 0
	for _, edge := range g.Edges() {
		source, _ := g.Node(edge.Source)
		target, _ := g.Node(edge.Target)
		sourceRole, sourceActor, sok := eventRole(source)
		targetRole, targetActor, tok := eventRole(target)
		if !sok || !tok {
			continue
		}
		considered++

		// Actors must communicate through events or brokers, never by
		// depending on each other directly.
		if sourceActor && targetActor {
			violations = append(violations, Violation{
				Type:     "synchronous_coupling",
				Source:   edge.Source,
				Target:   edge.Target,
				Severity: d.syncSeverity,
				Description: fmt.Sprintf("%s %s depends directly on %s %s instead of an event",
					sourceRole, edge.Source, targetRole, edge.Target),
			})
		}
	}

	return Result{
		Style:       StyleEventDriven,
		Confidence:  confidence(classified, g.NodeCount(), len(violations), considered),
		LayerCounts: counts,
		Violations:  violations,
		Graph:       g.Snapshot(),
	}
}
