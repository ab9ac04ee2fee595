package config

import (
	"fmt"
	"strings"

	"archdrift/internal/core/errors"
)

// Validate checks that every severity, weight and threshold is usable before
// the config is handed to detector constructors.
func (cfg *Config) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"styles.upward_severity", cfg.Styles.UpwardSeverity},
		{"styles.layer_skip_severity", cfg.Styles.LayerSkipSeverity},
		{"styles.inverted_severity", cfg.Styles.InvertedSeverity},
		{"styles.service_severity", cfg.Styles.ServiceSeverity},
		{"styles.sync_severity", cfg.Styles.SyncSeverity},
		{"cycles.base_severity", cfg.Cycles.BaseSeverity},
		{"coupling.bidirectional_severity", cfg.Coupling.BidirectionalSeverity},
		{"coupling.instability_threshold", cfg.Coupling.InstabilityThreshold},
		{"coupling.cluster_density_threshold", cfg.Coupling.ClusterDensityThreshold},
		{"god_component.flag_threshold", cfg.God.FlagThreshold},
		{"erosion.layered_boundary_severity", cfg.Erosion.LayeredBoundarySeverity},
		{"erosion.layered_bypass_severity", cfg.Erosion.LayeredBypassSeverity},
		{"erosion.ring_boundary_severity", cfg.Erosion.RingBoundarySeverity},
		{"erosion.domain_cross_severity", cfg.Erosion.DomainCrossSeverity},
		{"erosion.adapter_cross_severity", cfg.Erosion.AdapterCrossSeverity},
		{"aggregation.default_weight", cfg.Aggregation.DefaultWeight},
		{"aggregation.major_threshold", cfg.Aggregation.MajorThreshold},
		{"aggregation.elevated_threshold", cfg.Aggregation.ElevatedThreshold},
		{"aggregation.recommendation_threshold", cfg.Aggregation.RecommendationThreshold},
	}
	for _, c := range checks {
		if c.value < 0 || c.value > 1 {
			return errors.New(errors.CodeValidationError,
				fmt.Sprintf("%s must be within [0,1], got %v", c.name, c.value))
		}
	}

	if cfg.Coupling.HighDependencyThreshold <= 0 {
		return errors.New(errors.CodeValidationError, "coupling.high_dependency_threshold must be positive")
	}
	if cfg.Coupling.ExcessiveDependencyThreshold <= cfg.Coupling.HighDependencyThreshold {
		return errors.New(errors.CodeValidationError,
			"coupling.excessive_dependency_threshold must exceed the high threshold")
	}
	if cfg.Coupling.ClusterMinSize < 2 {
		return errors.New(errors.CodeValidationError, "coupling.cluster_min_size must be >= 2")
	}
	if cfg.God.DependencyThreshold <= 0 || cfg.God.MethodsThreshold <= 0 ||
		cfg.God.LOCThreshold <= 0 || cfg.God.ResponsibilityThreshold <= 0 {
		return errors.New(errors.CodeValidationError, "god_component thresholds must be positive")
	}
	if cfg.Cycles.MaxCycles < 0 {
		return errors.New(errors.CodeValidationError, "cycles.max_cycles must not be negative")
	}

	for name, weight := range cfg.Aggregation.Weights {
		if weight < 0 {
			return errors.New(errors.CodeValidationError,
				fmt.Sprintf("aggregation.weights[%s] must not be negative", name))
		}
	}

	for i, rule := range cfg.Classifier.Rules {
		if strings.TrimSpace(rule.Pattern) == "" {
			return errors.New(errors.CodeValidationError,
				fmt.Sprintf("classifier.rules[%d].pattern must not be empty", i))
		}
	}

	return nil
}
