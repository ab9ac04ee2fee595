package antipattern

import (
	"fmt"
	"strings"

	"archdrift/internal/core/config"
	"archdrift/internal/shared/observability"
	"archdrift/internal/shared/util"
)

// CycleDetector enumerates simple dependency cycles and scores them by
// length and by how much of the graph they entangle.
type CycleDetector struct {
	cfg config.Cycles
}

func NewCycleDetector(cfg config.Cycles) *CycleDetector {
	return &CycleDetector{cfg: cfg}
}

func (d *CycleDetector) Name() string { return TypeDependencyCycle }

func (d *CycleDetector) Analyze(in Input) Result {
	g := in.Graph
	cycles, truncated := g.SimpleCycles(d.cfg.MaxCycles)
	if truncated {
		observability.CycleTruncationsTotal.Inc()
	}

	instances := make([]Instance, 0, len(cycles))
	inCycle := make(map[string]bool)
	maxSeverity := 0.0
	sumSeverity := 0.0
	for _, cycle := range cycles {
		severity := util.Clip(d.cfg.BaseSeverity + d.cfg.LengthStep*float64(len(cycle)-2))
		for _, id := range cycle {
			inCycle[id] = true
		}
		if severity > maxSeverity {
			maxSeverity = severity
		}
		sumSeverity += severity
		instances = append(instances, Instance{
			Type:       TypeDependencyCycle,
			Components: append([]string(nil), cycle...),
			Severity:   severity,
			Description: fmt.Sprintf("dependency cycle of length %d: %s",
				len(cycle), strings.Join(cycle, " -> ")),
		})
	}

	metrics := map[string]float64{
		"cycle_count":     float64(len(cycles)),
		"nodes_in_cycles": float64(len(inCycle)),
	}
	if truncated {
		metrics["truncated"] = 1
	}

	severity := 0.0
	description := "no dependency cycles detected"
	recommendations := []string(nil)
	if len(cycles) > 0 {
		avgSeverity := sumSeverity / float64(len(cycles))
		coverage := 0.0
		if g.NodeCount() > 0 {
			coverage = util.Clip(d.cfg.CoverageScale * float64(len(inCycle)) / float64(g.NodeCount()))
		}
		severity = util.Clip(d.cfg.MaxWeight*maxSeverity +
			d.cfg.AvgWeight*avgSeverity +
			d.cfg.CoverageWeight*coverage)
		metrics["max_cycle_severity"] = maxSeverity
		metrics["avg_cycle_severity"] = avgSeverity

		description = fmt.Sprintf("%d dependency cycle(s) entangle %d of %d components",
			len(cycles), len(inCycle), g.NodeCount())
		recommendations = []string{
			"Break each cycle by extracting the shared contract into an interface owned by the more stable side",
			"Invert the least essential edge in each cycle so dependencies flow one way",
		}
	}

	return Result{
		Type:            TypeDependencyCycle,
		Severity:        severity,
		Instances:       instances,
		Metrics:         metrics,
		Description:     description,
		Recommendations: recommendations,
	}
}
