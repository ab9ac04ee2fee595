package antipattern

import (
	"fmt"
	"log/slog"
	"sort"

	"archdrift/internal/core/config"
	"archdrift/internal/shared/observability"
	"archdrift/internal/shared/util"
)

// Aggregator runs every registered detector and folds the results into one
// report. Coupling and cycles carry deliberately higher weights than the
// other categories.
type Aggregator struct {
	registry *Registry
	cfg      config.Aggregation
}

func NewAggregator(registry *Registry, cfg config.Aggregation) *Aggregator {
	return &Aggregator{registry: registry, cfg: cfg}
}

// Aggregate runs the detectors in order. A panicking detector is isolated:
// it contributes severity zero and a detector_failed metric, and the rest of
// the run continues.
func (a *Aggregator) Aggregate(in Input) Report {
	results := make(map[string]Result)
	order := make([]string, 0)
	for _, d := range a.registry.Detectors() {
		res := a.runDetector(d, in)
		results[res.Type] = res
		order = append(order, res.Type)
	}

	weightedSum := 0.0
	weightTotal := 0.0
	for _, name := range order {
		weight, ok := a.cfg.Weights[name]
		if !ok {
			weight = a.cfg.DefaultWeight
		}
		weightedSum += weight * results[name].Severity
		weightTotal += weight
	}
	overall := 0.0
	if weightTotal > 0 {
		overall = util.Clip(weightedSum / weightTotal)
	}

	return Report{
		OverallSeverity: overall,
		AntiPatterns:    results,
		Summary:         a.summarize(in.Root, overall, order, results),
		Recommendations: a.recommendations(overall, order, results),
	}
}

func (a *Aggregator) runDetector(d Detector, in Input) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("anti-pattern detector failed", "detector", d.Name(), "panic", r)
			observability.DetectorFailuresTotal.WithLabelValues(d.Name()).Inc()
			res = Result{
				Type:        d.Name(),
				Severity:    0,
				Instances:   []Instance{},
				Metrics:     map[string]float64{"detector_failed": 1},
				Description: "detector failed; severity recorded as zero",
			}
		}
	}()
	return d.Analyze(in)
}

func (a *Aggregator) summarize(root string, overall float64, order []string, results map[string]Result) string {
	scope := ""
	if root != "" {
		scope = fmt.Sprintf(" in %s", root)
	}

	instances := 0
	worst := ""
	worstSeverity := -1.0
	for _, name := range order {
		res := results[name]
		instances += len(res.Instances)
		if res.Severity > worstSeverity {
			worst = name
			worstSeverity = res.Severity
		}
	}
	if instances == 0 {
		return fmt.Sprintf("%d detectors found no anti-pattern instances%s", len(order), scope)
	}
	return fmt.Sprintf("%d detectors found %d instance(s)%s; overall severity %.2f, worst category %s",
		len(order), instances, scope, overall, worst)
}

func (a *Aggregator) recommendations(overall float64, order []string, results map[string]Result) []string {
	var overarching string
	switch {
	case overall >= a.cfg.MajorThreshold:
		overarching = "Severity is critical: plan a major refactor of the worst-affected components"
	case overall >= a.cfg.ElevatedThreshold:
		overarching = "Severity is elevated: prioritize the worst offenders before they spread"
	default:
		overarching = "Severity is low: monitor the flagged components during regular review"
	}

	recommendations := []string{overarching}
	for _, name := range order {
		res := results[name]
		if res.Severity < a.cfg.RecommendationThreshold {
			continue
		}
		top := res.Recommendations
		if len(top) > a.cfg.RecommendationsPerResult {
			top = top[:a.cfg.RecommendationsPerResult]
		}
		recommendations = append(recommendations, top...)
	}
	return recommendations
}

// SortedInstances returns a result's instances ordered by severity, worst
// first, breaking ties by first component for stable rendering.
func SortedInstances(res Result) []Instance {
	instances := append([]Instance(nil), res.Instances...)
	sort.SliceStable(instances, func(i, j int) bool {
		if instances[i].Severity != instances[j].Severity {
			return instances[i].Severity > instances[j].Severity
		}
		ic, jc := "", ""
		if len(instances[i].Components) > 0 {
			ic = instances[i].Components[0]
		}
		if len(instances[j].Components) > 0 {
			jc = instances[j].Components[0]
		}
		return ic < jc
	})
	return instances
}
