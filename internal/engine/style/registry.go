package style

import (
	"archdrift/internal/core/config"
	"archdrift/internal/core/errors"
	"archdrift/internal/engine/graph"
)

// Registry holds the configured detectors in canonical order. It is built
// once by the host and never mutated; there are no package-level detector
// singletons.
type Registry struct {
	detectors []Detector
	byName    map[Style]Detector
}

func NewRegistry(cfg *config.Config) *Registry {
	detectors := []Detector{
		NewLayered(cfg.Styles),
		NewHexagonal(cfg.Styles),
		NewClean(cfg.Styles),
		NewMicroservices(cfg.Styles),
		NewEventDriven(cfg.Styles),
	}
	byName := make(map[Style]Detector, len(detectors))
	for _, d := range detectors {
		byName[d.Name()] = d
	}
	return &Registry{detectors: detectors, byName: byName}
}

func (r *Registry) Detectors() []Detector {
	return append([]Detector(nil), r.detectors...)
}

// Get resolves a detector by style name. Unknown names are an API-misuse
// error, not a codebase property, so they surface as a named error.
func (r *Registry) Get(name string) (Detector, error) {
	d, ok := r.byName[Style(name)]
	if !ok {
		return nil, errors.AddContext(
			errors.New(errors.CodeNotSupported, "unknown architectural style"),
			errors.CtxStyle, name)
	}
	return d, nil
}

// AnalyzeAll runs every detector against the graph in canonical order.
func (r *Registry) AnalyzeAll(g *graph.ComponentGraph) []Result {
	results := make([]Result, 0, len(r.detectors))
	for _, d := range r.detectors {
		results = append(results, d.Analyze(g))
	}
	return results
}
