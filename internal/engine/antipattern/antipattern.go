// Package antipattern detects structural anti-patterns on a component graph
// and folds the per-detector results into one weighted report.
package antipattern

import (
	"archdrift/internal/engine/graph"
	"archdrift/internal/engine/style"
)

const (
	TypeDependencyCycle      = "dependency_cycle"
	TypeTightCoupling        = "tight_coupling"
	TypeGodComponent         = "god_component"
	TypeArchitecturalErosion = "architectural_erosion"
)

// Instance is one concrete occurrence of an anti-pattern.
type Instance struct {
	Type        string   `json:"type"`
	Components  []string `json:"components"`
	Severity    float64  `json:"severity"`
	Description string   `json:"description"`
}

// Result is one detector's complete output for a run.
type Result struct {
	Type            string             `json:"type"`
	Severity        float64            `json:"severity"`
	Instances       []Instance         `json:"instances"`
	Metrics         map[string]float64 `json:"metrics"`
	Description     string             `json:"description"`
	Recommendations []string           `json:"recommendations"`
}

// Input bundles everything a detector may consult. Style results are inputs
// only; detectors never mutate them.
type Input struct {
	Graph   *graph.ComponentGraph
	Styles  []style.Result
	Primary style.Summary
	Root    string
}

// Detector is the common contract the four anti-pattern detectors implement.
type Detector interface {
	Name() string
	Analyze(in Input) Result
}

// Report is the final aggregated output consumed by external renderers.
type Report struct {
	OverallSeverity float64           `json:"overall_severity"`
	AntiPatterns    map[string]Result `json:"anti_patterns"`
	Summary         string            `json:"summary"`
	Recommendations []string          `json:"recommendations"`
}
