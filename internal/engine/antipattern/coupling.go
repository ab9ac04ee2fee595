package antipattern

import (
	"fmt"
	"strings"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/graph"
	"archdrift/internal/shared/util"
)

// CouplingDetector flags reciprocal dependencies, components with too many
// neighbors, unstable hubs, and densely coupled clusters.
type CouplingDetector struct {
	cfg config.Coupling
}

func NewCouplingDetector(cfg config.Coupling) *CouplingDetector {
	return &CouplingDetector{cfg: cfg}
}

func (d *CouplingDetector) Name() string { return TypeTightCoupling }

func (d *CouplingDetector) Analyze(in Input) Result {
	g := in.Graph
	instances := make([]Instance, 0)

	// (a) reciprocal edges, one instance per pair
	for _, edge := range g.Edges() {
		if edge.Source < edge.Target && g.HasEdge(edge.Target, edge.Source) {
			instances = append(instances, Instance{
				Type:       "bidirectional_dependency",
				Components: []string{edge.Source, edge.Target},
				Severity:   d.cfg.BidirectionalSeverity,
				Description: fmt.Sprintf("%s and %s depend on each other",
					edge.Source, edge.Target),
			})
		}
	}

	// (b) degree over the high threshold, scored linearly to the excessive one
	instances = append(instances, excessiveDependencyInstances(g, d.cfg)...)

	// (c) unstable hubs
	for _, id := range g.NodeIDs() {
		afferent := g.InDegree(id)
		efferent := g.OutDegree(id)
		total := afferent + efferent

		if total > 0 {
			instability := float64(efferent) / float64(total)
			if instability > d.cfg.InstabilityThreshold && efferent > d.cfg.HighDependencyThreshold {
				instances = append(instances, Instance{
					Type:       "high_instability",
					Components: []string{id},
					Severity:   util.Clip(instability),
					Description: fmt.Sprintf("%s is unstable (instability %.2f with %d outgoing dependencies)",
						id, instability, efferent),
				})
			}
		}
	}

	// (d) dense weakly-connected clusters
	for _, component := range g.WeaklyConnectedComponents() {
		if len(component) < d.cfg.ClusterMinSize {
			continue
		}
		density := g.EdgeDensity(component)
		if density <= d.cfg.ClusterDensityThreshold {
			continue
		}
		instances = append(instances, Instance{
			Type:       "coupled_cluster",
			Components: append([]string(nil), component...),
			Severity:   util.Clip(0.5 + 0.5*density),
			Description: fmt.Sprintf("cluster of %d components with density %.2f: %s",
				len(component), density, strings.Join(component, ", ")),
		})
	}

	coupled := make(map[string]bool)
	maxSeverity := 0.0
	sumSeverity := 0.0
	for _, inst := range instances {
		for _, id := range inst.Components {
			coupled[id] = true
		}
		if inst.Severity > maxSeverity {
			maxSeverity = inst.Severity
		}
		sumSeverity += inst.Severity
	}

	metrics := map[string]float64{
		"instance_count": float64(len(instances)),
		"coupled_nodes":  float64(len(coupled)),
	}

	severity := 0.0
	description := "no tight coupling detected"
	recommendations := []string(nil)
	if len(instances) > 0 {
		avgSeverity := sumSeverity / float64(len(instances))
		coupledRatio := 0.0
		if g.NodeCount() > 0 {
			coupledRatio = float64(len(coupled)) / float64(g.NodeCount())
		}
		severity = util.Clip(d.cfg.MaxWeight*maxSeverity +
			d.cfg.AvgWeight*avgSeverity +
			d.cfg.CoverageWeight*coupledRatio)
		metrics["max_instance_severity"] = maxSeverity
		metrics["avg_instance_severity"] = avgSeverity
		metrics["coupled_node_ratio"] = coupledRatio

		description = fmt.Sprintf("%d coupling problem(s) touch %d of %d components",
			len(instances), len(coupled), g.NodeCount())
		recommendations = []string{
			"Split bidirectional dependencies by moving the shared piece into its own component",
			"Reduce the neighbor count of coupling hotspots before adding new dependents",
		}
	}

	return Result{
		Type:            TypeTightCoupling,
		Severity:        severity,
		Instances:       instances,
		Metrics:         metrics,
		Description:     description,
		Recommendations: recommendations,
	}
}

// excessiveDependencyInstances is the degree check shared with the erosion
// detector's generic fallback.
func excessiveDependencyInstances(g *graph.ComponentGraph, cfg config.Coupling) []Instance {
	instances := make([]Instance, 0)
	span := float64(cfg.ExcessiveDependencyThreshold - cfg.HighDependencyThreshold)
	for _, id := range g.NodeIDs() {
		total := g.InDegree(id) + g.OutDegree(id)
		if total <= cfg.HighDependencyThreshold {
			continue
		}
		instances = append(instances, Instance{
			Type:       "excessive_dependencies",
			Components: []string{id},
			Severity:   util.Clip(float64(total-cfg.HighDependencyThreshold) / span),
			Description: fmt.Sprintf("%s has %d dependencies, above the threshold of %d",
				id, total, cfg.HighDependencyThreshold),
		})
	}
	return instances
}
