// Package style scores how well a component graph matches each supported
// architectural style and collects the style-specific edge violations that
// the anti-pattern detectors consume downstream.
package style

import (
	"archdrift/internal/engine/graph"
	"archdrift/internal/shared/util"
)

type Style string

const (
	StyleLayered       Style = "layered"
	StyleHexagonal     Style = "hexagonal"
	StyleClean         Style = "clean"
	StyleMicroservices Style = "microservices"
	StyleEventDriven   Style = "event_driven"
	StyleUnknown       Style = "unknown"
)

// CanonicalOrder is the deterministic tie-break order used by the selector.
var CanonicalOrder = []Style{
	StyleLayered,
	StyleHexagonal,
	StyleClean,
	StyleMicroservices,
	StyleEventDriven,
}

// Violation is one edge that breaks the style's allowed-direction rule.
type Violation struct {
	Type        string  `json:"type"`
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Severity    float64 `json:"severity"`
	Description string  `json:"description"`
}

// Result is the read-only outcome of one detector run.
type Result struct {
	Style       Style          `json:"style"`
	Confidence  float64        `json:"confidence"`
	LayerCounts map[string]int `json:"layer_counts"`
	Violations  []Violation    `json:"violations"`
	Graph       graph.Snapshot `json:"graph"`
}

// Detector is the common contract all five style detectors implement. A
// detector is stateless: Analyze is a pure function of the input graph.
type Detector interface {
	Name() Style
	Analyze(g *graph.ComponentGraph) Result
}

// confidence implements the shared scoring rule: the fraction of nodes the
// style's vocabulary could classify, discounted by the fraction of edges
// between classified nodes that violate the style.
func confidence(classified, total, violations, consideredEdges int) float64 {
	if total == 0 || classified == 0 {
		return 0
	}
	classifiedRatio := float64(classified) / float64(total)
	violationRatio := 0.0
	if consideredEdges > 0 {
		violationRatio = float64(violations) / float64(consideredEdges)
	}
	return util.Clip(classifiedRatio * (1 - violationRatio))
}
