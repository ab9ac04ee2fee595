package antipattern

import (
	"archdrift/internal/core/config"
	"archdrift/internal/core/errors"
)

// Registry holds the configured anti-pattern detectors in their fixed run
// order. Like the style registry, it is built once by the host and carries
// no global state.
type Registry struct {
	detectors []Detector
	byName    map[string]Detector
}

func NewRegistry(cfg *config.Config) *Registry {
	detectors := []Detector{
		NewCycleDetector(cfg.Cycles),
		NewCouplingDetector(cfg.Coupling),
		NewGodDetector(cfg.God),
		NewErosionDetector(cfg),
	}
	byName := make(map[string]Detector, len(detectors))
	for _, d := range detectors {
		byName[d.Name()] = d
	}
	return &Registry{detectors: detectors, byName: byName}
}

func (r *Registry) Detectors() []Detector {
	return append([]Detector(nil), r.detectors...)
}

func (r *Registry) Get(name string) (Detector, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, errors.AddContext(
			errors.New(errors.CodeNotSupported, "unknown anti-pattern detector"),
			errors.CtxDetector, name)
	}
	return d, nil
}
