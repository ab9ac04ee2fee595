package classify

import (
	"testing"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/graph"
)

func defaultClassifier() *Classifier {
	return New(config.Default().Classifier)
}

func TestClassify_DefaultTable(t *testing.T) {
	c := defaultClassifier()

	cases := []struct {
		path  string
		layer graph.Layer
		ctype graph.ComponentType
	}{
		{"src/controllers/user_controller.py", graph.LayerPresentation, graph.TypeController},
		{"src/services/billing.py", graph.LayerBusiness, graph.TypeService},
		{"src/repositories/user_repository.py", graph.LayerDomain, graph.TypeRepository},
		{"src/models/order.py", graph.LayerDomain, graph.TypeModel},
		{"src/dao/session.py", graph.LayerDataAccess, graph.TypeRepository},
		{"core/ports/payment_port.py", graph.LayerUnset, graph.TypePort},
		{"adapters/http/rest_adapter.py", graph.LayerUnset, graph.TypeAdapter},
		{"src/usecases/checkout.py", graph.LayerBusiness, graph.TypeUseCase},
		{"src/entities/invoice.py", graph.LayerDomain, graph.TypeEntity},
		{"app/events/order_created.py", graph.LayerUnset, graph.TypeEvent},
		{"app/handlers/order_handler.py", graph.LayerUnset, graph.TypeHandler},
		{"lib/helpers/strings.py", graph.LayerUnset, graph.TypeUnset},
	}

	for _, tc := range cases {
		layer, ctype := c.Classify(tc.path, nil)
		if layer != tc.layer || ctype != tc.ctype {
			t.Errorf("Classify(%q) = (%q, %q), want (%q, %q)",
				tc.path, layer, ctype, tc.layer, tc.ctype)
		}
	}
}

func TestClassify_ConstructNamesFillGaps(t *testing.T) {
	c := defaultClassifier()
	layer, ctype := c.Classify("src/billing.py", []string{"BillingService"})
	if layer != graph.LayerBusiness || ctype != graph.TypeService {
		t.Errorf("Expected business/service from construct name, got (%q, %q)", layer, ctype)
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	c := New(config.Classifier{Rules: []config.ClassifierRule{
		{Pattern: "shared", Layer: "presentation"},
		{Pattern: "shared", Layer: "domain"},
	}})
	layer, _ := c.Classify("src/shared/x.py", nil)
	if layer != graph.LayerPresentation {
		t.Errorf("Expected first matching rule to win, got %q", layer)
	}
}

func TestClassify_GlobPatterns(t *testing.T) {
	c := New(config.Classifier{Rules: []config.ClassifierRule{
		{Pattern: "web/**", Layer: "presentation"},
	}})
	layer, _ := c.Classify("web/pages/index.py", nil)
	if layer != graph.LayerPresentation {
		t.Errorf("Expected glob match, got %q", layer)
	}
	layer, _ = c.Classify("src/web.py", nil)
	if layer != graph.LayerUnset {
		t.Errorf("Expected no glob match, got %q", layer)
	}
}

func TestClassify_UnknownLabelDropped(t *testing.T) {
	c := New(config.Classifier{Rules: []config.ClassifierRule{
		{Pattern: "controllers", Layer: "mezzanine"},
		{Pattern: "controllers", Layer: "presentation"},
	}})
	layer, _ := c.Classify("src/controllers/a.py", nil)
	if layer != graph.LayerPresentation {
		t.Errorf("Expected invalid rule to be dropped, got %q", layer)
	}
}
