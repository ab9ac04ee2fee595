package style

import (
	"testing"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/classify"
	"archdrift/internal/engine/graph"
)

// buildGraph runs records through the default classifier and builder, the
// same path production analysis takes.
func buildGraph(t *testing.T, records []graph.FileRecord) *graph.ComponentGraph {
	t.Helper()
	classifier := classify.New(config.Default().Classifier)
	return graph.NewBuilder(classifier).Build(records)
}

func rec(file string, imports ...string) graph.FileRecord {
	return graph.FileRecord{File: file, Imports: imports}
}

func TestLayered_StrictGraphHighConfidence(t *testing.T) {
	g := buildGraph(t, []graph.FileRecord{
		rec("src/controllers/user_controller.py", "src/services/user_service.py"),
		rec("src/services/user_service.py", "src/dao/user_dao.py"),
		rec("src/dao/user_dao.py", "src/models/user.py"),
		rec("src/models/user.py"),
	})

	result := NewLayered(config.Default().Styles).Analyze(g)
	if len(result.Violations) != 0 {
		t.Fatalf("Expected no violations in strictly layered graph, got %v", result.Violations)
	}
	if result.Confidence <= 0.9 {
		t.Errorf("Expected confidence > 0.9, got %f", result.Confidence)
	}
	if result.LayerCounts["presentation"] != 1 || result.LayerCounts["domain"] != 1 {
		t.Errorf("Unexpected layer counts: %v", result.LayerCounts)
	}
}

func TestLayered_UpwardAndSkipViolations(t *testing.T) {
	g := buildGraph(t, []graph.FileRecord{
		rec("src/controllers/a.py", "src/models/d.py"), // presentation -> domain skips two layers
		rec("src/dao/c.py", "src/controllers/a.py"),    // data_access -> presentation is upward
		rec("src/models/d.py"),
	})

	result := NewLayered(config.Default().Styles).Analyze(g)

	types := make(map[string]int)
	for _, v := range result.Violations {
		types[v.Type]++
	}
	if types["upward_dependency"] != 1 {
		t.Errorf("Expected 1 upward_dependency, got %v", types)
	}
	if types["layer_skip"] != 1 {
		t.Errorf("Expected 1 layer_skip, got %v", types)
	}

	for _, v := range result.Violations {
		if _, ok := g.Node(v.Source); !ok {
			t.Errorf("Violation references unknown source %s", v.Source)
		}
		if !g.HasEdge(v.Source, v.Target) {
			t.Errorf("Violation references missing edge %s -> %s", v.Source, v.Target)
		}
	}
}

func TestLayered_EmptyGraph(t *testing.T) {
	g := buildGraph(t, nil)
	result := NewLayered(config.Default().Styles).Analyze(g)
	if result.Confidence != 0 {
		t.Errorf("Expected confidence 0 for empty graph, got %f", result.Confidence)
	}
	if len(result.Violations) != 0 {
		t.Errorf("Expected no violations for empty graph")
	}
}

func TestLayered_UnclassifiedNodesLowerConfidence(t *testing.T) {
	g := buildGraph(t, []graph.FileRecord{
		rec("src/controllers/a.py"),
		rec("lib/strings.py"),
		rec("lib/math.py"),
		rec("lib/time.py"),
	})
	result := NewLayered(config.Default().Styles).Analyze(g)
	if result.Confidence != 0.25 {
		t.Errorf("Expected confidence 0.25 with 1/4 classified, got %f", result.Confidence)
	}
}

func TestHexagonal_CoreToAdapterViolation(t *testing.T) {
	g := buildGraph(t, []graph.FileRecord{
		rec("core/services/billing.py", "adapters/db/billing_adapter.py"),
		rec("adapters/db/billing_adapter.py", "core/ports/billing_port.py"),
		rec("core/ports/billing_port.py"),
	})

	result := NewHexagonal(config.Default().Styles).Analyze(g)
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %v", result.Violations)
	}
	v := result.Violations[0]
	if v.Type != "inverted_dependency" || v.Source != "core/services/billing.py" {
		t.Errorf("Unexpected violation: %+v", v)
	}
	if result.LayerCounts["core"] != 1 || result.LayerCounts["port"] != 1 || result.LayerCounts["adapter"] != 1 {
		t.Errorf("Unexpected ring counts: %v", result.LayerCounts)
	}
}

func TestClean_OutwardDependency(t *testing.T) {
	g := buildGraph(t, []graph.FileRecord{
		rec("src/entities/order.py", "src/controllers/order_controller.py"),
		rec("src/controllers/order_controller.py", "src/usecases/checkout.py"),
		rec("src/usecases/checkout.py", "src/entities/order.py"),
	})

	result := NewClean(config.Default().Styles).Analyze(g)
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 outward violation, got %v", result.Violations)
	}
	if result.Violations[0].Type != "outward_dependency" ||
		result.Violations[0].Source != "src/entities/order.py" {
		t.Errorf("Unexpected violation: %+v", result.Violations[0])
	}
}

func TestMicroservices_DirectServiceDependency(t *testing.T) {
	g := buildGraph(t, []graph.FileRecord{
		rec("services/orders/app.py", "services/billing/app.py"),
		rec("services/billing/app.py"),
		rec("gateway/router.py", "services/orders/app.py"),
	})

	result := NewMicroservices(config.Default().Styles).Analyze(g)
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %v", result.Violations)
	}
	if result.Violations[0].Type != "direct_service_dependency" {
		t.Errorf("Unexpected violation type %q", result.Violations[0].Type)
	}
	if result.LayerCounts["orders"] != 1 || result.LayerCounts["gateway"] != 1 {
		t.Errorf("Unexpected counts: %v", result.LayerCounts)
	}
}

func TestEventDriven_SynchronousCoupling(t *testing.T) {
	g := buildGraph(t, []graph.FileRecord{
		rec("app/producers/order_producer.py", "app/handlers/order_handler.py"),
		rec("app/handlers/order_handler.py", "app/events/order_created.py"),
		rec("app/events/order_created.py"),
	})

	result := NewEventDriven(config.Default().Styles).Analyze(g)
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %v", result.Violations)
	}
	if result.Violations[0].Type != "synchronous_coupling" {
		t.Errorf("Unexpected violation type %q", result.Violations[0].Type)
	}
}

func TestDetectors_Deterministic(t *testing.T) {
	records := []graph.FileRecord{
		rec("src/controllers/a.py", "src/services/b.py", "src/models/d.py"),
		rec("src/services/b.py", "src/dao/c.py"),
		rec("src/dao/c.py", "src/controllers/a.py"),
		rec("src/models/d.py"),
	}
	g := buildGraph(t, records)

	registry := NewRegistry(config.Default())
	first := registry.AnalyzeAll(g)
	second := registry.AnalyzeAll(g)

	for i := range first {
		if first[i].Confidence != second[i].Confidence {
			t.Errorf("%s confidence changed between runs", first[i].Style)
		}
		if len(first[i].Violations) != len(second[i].Violations) {
			t.Errorf("%s violation count changed between runs", first[i].Style)
		}
	}
}

func TestRegistry_UnknownStyle(t *testing.T) {
	registry := NewRegistry(config.Default())
	if _, err := registry.Get("onion"); err == nil {
		t.Fatal("Expected error for unknown style")
	}
	if d, err := registry.Get("layered"); err != nil || d.Name() != StyleLayered {
		t.Errorf("Expected layered detector, got %v, %v", d, err)
	}
}

func TestSelect_ArgmaxAndTieBreak(t *testing.T) {
	results := []Result{
		{Style: StyleClean, Confidence: 0.6},
		{Style: StyleLayered, Confidence: 0.6},
		{Style: StyleEventDriven, Confidence: 0.2},
	}
	summary := Select(results)
	if summary.Primary != StyleLayered {
		t.Errorf("Expected layered to win the tie, got %s", summary.Primary)
	}
	if summary.Confidence != 0.6 {
		t.Errorf("Unexpected confidence %f", summary.Confidence)
	}
}

func TestSelect_Empty(t *testing.T) {
	summary := Select(nil)
	if summary.Primary != StyleUnknown || summary.Confidence != 0 {
		t.Errorf("Expected unknown primary for no results, got %+v", summary)
	}
}

func TestSelect_AllZeroConfidenceIsUnknown(t *testing.T) {
	results := []Result{
		{Style: StyleLayered, Confidence: 0},
		{Style: StyleHexagonal, Confidence: 0},
		{Style: StyleClean, Confidence: 0},
		{Style: StyleMicroservices, Confidence: 0},
		{Style: StyleEventDriven, Confidence: 0},
	}
	summary := Select(results)
	if summary.Primary != StyleUnknown {
		t.Errorf("Expected unknown primary for all-zero confidences, got %s", summary.Primary)
	}
	if summary.Confidence != 0 {
		t.Errorf("Expected zero confidence, got %f", summary.Confidence)
	}
}

func TestSelect_EmptyGraphDetectorsStayUnknown(t *testing.T) {
	registry := NewRegistry(config.Default())
	g := buildGraph(t, nil)
	summary := Select(registry.AnalyzeAll(g))
	if summary.Primary != StyleUnknown {
		t.Errorf("Expected unknown primary for the empty graph, got %s", summary.Primary)
	}
}
