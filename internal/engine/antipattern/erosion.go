package antipattern

import (
	"fmt"
	"strings"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/graph"
	"archdrift/internal/engine/style"
	"archdrift/internal/shared/util"
)

// ErosionDetector measures how far the graph has drifted from the intended
// structure of the detected primary style. The more confidently a style was
// identified, the harder its erosion is penalized.
type ErosionDetector struct {
	cfg      config.Erosion
	coupling config.Coupling
	cycles   config.Cycles
}

func NewErosionDetector(cfg *config.Config) *ErosionDetector {
	return &ErosionDetector{
		cfg:      cfg.Erosion,
		coupling: cfg.Coupling,
		cycles:   cfg.Cycles,
	}
}

func (d *ErosionDetector) Name() string { return TypeArchitecturalErosion }

func (d *ErosionDetector) Analyze(in Input) Result {
	g := in.Graph

	var instances []Instance
	switch in.Primary.Primary {
	case style.StyleLayered:
		instances = d.layeredInstances(g)
	case style.StyleHexagonal, style.StyleClean:
		instances = d.ringInstances(g)
	default:
		instances = d.genericInstances(g)
	}

	maxSeverity := 0.0
	sumSeverity := 0.0
	for _, inst := range instances {
		if inst.Severity > maxSeverity {
			maxSeverity = inst.Severity
		}
		sumSeverity += inst.Severity
	}

	styleFactor := d.cfg.StyleFactorBase + (1-d.cfg.StyleFactorBase)*util.Clip(in.Primary.Confidence)
	metrics := map[string]float64{
		"instance_count": float64(len(instances)),
		"style_factor":   styleFactor,
	}

	severity := 0.0
	description := fmt.Sprintf("no erosion detected against the %s style", in.Primary.Primary)
	recommendations := []string(nil)
	if len(instances) > 0 {
		avgSeverity := sumSeverity / float64(len(instances))
		violationRatio := 0.0
		if g.EdgeCount() > 0 {
			violationRatio = util.Clip(float64(len(instances)) / float64(g.EdgeCount()))
		}
		severity = util.Clip((d.cfg.AvgWeight*avgSeverity + d.cfg.RatioWeight*violationRatio) * styleFactor)
		metrics["avg_instance_severity"] = avgSeverity
		metrics["violation_ratio"] = violationRatio

		description = fmt.Sprintf("%d dependency(ies) erode the detected %s structure",
			len(instances), in.Primary.Primary)
		recommendations = []string{
			fmt.Sprintf("Restore the %s boundaries by rerouting the flagged dependencies", in.Primary.Primary),
			"Add an architecture check to the build so new boundary violations fail fast",
		}
	}

	return Result{
		Type:            TypeArchitecturalErosion,
		Severity:        severity,
		Instances:       instances,
		Metrics:         metrics,
		Description:     description,
		Recommendations: recommendations,
	}
}

// layeredInstances reuses the layered style's edge rule so the two analyses
// can never disagree about an edge.
func (d *ErosionDetector) layeredInstances(g *graph.ComponentGraph) []Instance {
	violations, _ := style.LayeredEdgeViolations(g, d.cfg.LayeredBoundarySeverity, d.cfg.LayeredBypassSeverity)
	instances := make([]Instance, 0, len(violations))
	for _, v := range violations {
		instType := "boundary_violation"
		if v.Type == "layer_skip" {
			instType = "layer_bypass_dependency"
		}
		instances = append(instances, Instance{
			Type:        instType,
			Components:  []string{v.Source, v.Target},
			Severity:    v.Severity,
			Description: v.Description,
		})
	}
	return instances
}

// ringInstances applies the hexagonal/clean boundary rules: the core must
// not reach adapters, and same-ring edges are cross-cutting noise.
func (d *ErosionDetector) ringInstances(g *graph.ComponentGraph) []Instance {
	instances := make([]Instance, 0)
	for _, edge := range g.Edges() {
		source, _ := g.Node(edge.Source)
		target, _ := g.Node(edge.Target)
		sourceRing, sok := style.HexRing(source)
		targetRing, tok := style.HexRing(target)
		if !sok || !tok {
			continue
		}

		switch {
		case sourceRing == 2 && targetRing == 0:
			instances = append(instances, Instance{
				Type:       "boundary_violation",
				Components: []string{edge.Source, edge.Target},
				Severity:   d.cfg.RingBoundarySeverity,
				Description: fmt.Sprintf("domain component %s depends on adapter %s",
					edge.Source, edge.Target),
			})
		case sourceRing == 2 && targetRing == 2:
			instances = append(instances, Instance{
				Type:       "cross_cutting_dependency",
				Components: []string{edge.Source, edge.Target},
				Severity:   d.cfg.DomainCrossSeverity,
				Description: fmt.Sprintf("domain components %s and %s are directly entangled",
					edge.Source, edge.Target),
			})
		case sourceRing == 0 && targetRing == 0:
			instances = append(instances, Instance{
				Type:       "cross_cutting_dependency",
				Components: []string{edge.Source, edge.Target},
				Severity:   d.cfg.AdapterCrossSeverity,
				Description: fmt.Sprintf("adapters %s and %s depend on each other directly",
					edge.Source, edge.Target),
			})
		}
	}
	return instances
}

// genericInstances is the fallback for microservices, event-driven and
// unknown styles: excessive dependencies plus cycle entanglement.
func (d *ErosionDetector) genericInstances(g *graph.ComponentGraph) []Instance {
	instances := excessiveDependencyInstances(g, d.coupling)

	cycles, _ := g.SimpleCycles(d.cycles.MaxCycles)
	for _, cycle := range cycles {
		instances = append(instances, Instance{
			Type:       TypeDependencyCycle,
			Components: append([]string(nil), cycle...),
			Severity:   util.Clip(d.cycles.BaseSeverity + d.cycles.LengthStep*float64(len(cycle)-2)),
			Description: fmt.Sprintf("dependency cycle: %s",
				strings.Join(cycle, " -> ")),
		})
	}
	return instances
}
