package antipattern

import (
	"strings"
	"testing"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/graph"
	"archdrift/internal/engine/style"
)

func TestAggregator_WeightedOverall(t *testing.T) {
	cfg := config.Default()
	g := layeredTriangle(t)
	registry := NewRegistry(cfg)
	report := NewAggregator(registry, cfg.Aggregation).Aggregate(layeredInput(g))

	if len(report.AntiPatterns) != 4 {
		t.Fatalf("Expected all 4 detector results, got %d", len(report.AntiPatterns))
	}

	// overall must equal the weighted mean the detectors produce
	weightedSum := 0.0
	weightTotal := 0.0
	for name, res := range report.AntiPatterns {
		weight, ok := cfg.Aggregation.Weights[name]
		if !ok {
			weight = cfg.Aggregation.DefaultWeight
		}
		weightedSum += weight * res.Severity
		weightTotal += weight
	}
	want := weightedSum / weightTotal
	if diff := report.OverallSeverity - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected overall %f, got %f", want, report.OverallSeverity)
	}
	if report.OverallSeverity <= 0 {
		t.Error("Expected nonzero overall severity for the cyclic graph")
	}
}

func TestAggregator_CleanGraphStaysQuiet(t *testing.T) {
	cfg := config.Default()
	g := buildGraph(t, []graph.FileRecord{
		rec("src/controllers/a.py", "src/services/b.py"),
		rec("src/services/b.py", "src/dao/c.py"),
		rec("src/dao/c.py"),
	})
	report := NewAggregator(NewRegistry(cfg), cfg.Aggregation).Aggregate(Input{
		Graph:   g,
		Primary: style.Summary{Primary: style.StyleLayered, Confidence: 1},
	})

	if report.OverallSeverity != 0 {
		t.Errorf("Expected overall severity 0, got %f", report.OverallSeverity)
	}
	if !strings.Contains(report.Summary, "no anti-pattern instances") {
		t.Errorf("Unexpected summary: %q", report.Summary)
	}
	if len(report.Recommendations) != 1 || !strings.Contains(report.Recommendations[0], "Severity is low") {
		t.Errorf("Expected only the low-severity bucket line, got %v", report.Recommendations)
	}
}

func TestAggregator_RecommendationBuckets(t *testing.T) {
	cfg := config.Default()
	g := layeredTriangle(t)
	report := NewAggregator(NewRegistry(cfg), cfg.Aggregation).Aggregate(layeredInput(g))

	if len(report.Recommendations) < 2 {
		t.Fatalf("Expected bucket line plus detector advice, got %v", report.Recommendations)
	}
	if !strings.HasPrefix(report.Recommendations[0], "Severity is") {
		t.Errorf("First recommendation should be the bucket line, got %q", report.Recommendations[0])
	}
	for name, res := range report.AntiPatterns {
		if res.Severity >= cfg.Aggregation.RecommendationThreshold && len(res.Recommendations) == 0 {
			t.Errorf("%s crossed the threshold but carries no advice", name)
		}
	}
}

func TestAggregator_SummaryNamesRoot(t *testing.T) {
	cfg := config.Default()
	g := layeredTriangle(t)
	in := layeredInput(g)
	in.Root = "/srv/shop"
	report := NewAggregator(NewRegistry(cfg), cfg.Aggregation).Aggregate(in)

	if !strings.Contains(report.Summary, "/srv/shop") {
		t.Errorf("Expected summary to name the analyzed root, got %q", report.Summary)
	}
}

type panickyDetector struct{}

func (panickyDetector) Name() string        { return "panicky" }
func (panickyDetector) Analyze(Input) Result { panic("boom") }

func TestAggregator_PanicIsolation(t *testing.T) {
	cfg := config.Default()
	registry := &Registry{
		detectors: []Detector{panickyDetector{}, NewCycleDetector(cfg.Cycles)},
		byName:    map[string]Detector{},
	}
	g := layeredTriangle(t)
	report := NewAggregator(registry, cfg.Aggregation).Aggregate(layeredInput(g))

	failed, ok := report.AntiPatterns["panicky"]
	if !ok {
		t.Fatal("Expected a result for the failed detector")
	}
	if failed.Severity != 0 || failed.Metrics["detector_failed"] != 1 {
		t.Errorf("Expected zeroed failure result, got %+v", failed)
	}
	cycle := report.AntiPatterns[TypeDependencyCycle]
	if len(cycle.Instances) != 1 {
		t.Error("Expected the surviving detector to still run")
	}
}

func TestSortedInstances(t *testing.T) {
	res := Result{Instances: []Instance{
		{Severity: 0.3, Components: []string{"b"}},
		{Severity: 0.9, Components: []string{"c"}},
		{Severity: 0.3, Components: []string{"a"}},
	}}
	sorted := SortedInstances(res)
	if sorted[0].Severity != 0.9 {
		t.Errorf("Expected worst first, got %v", sorted)
	}
	if sorted[1].Components[0] != "a" || sorted[2].Components[0] != "b" {
		t.Errorf("Expected ties broken by component, got %v", sorted)
	}
	if res.Instances[0].Severity != 0.3 {
		t.Error("SortedInstances must not mutate the input")
	}
}
