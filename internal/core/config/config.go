package config

// Config carries every threshold, weight and vocabulary the analysis engine
// uses. It is built once by the host (Default, optionally overlaid from TOML)
// and treated as immutable afterwards; detectors only ever read it.
type Config struct {
	Classifier  Classifier  `toml:"classifier"`
	Styles      Styles      `toml:"styles"`
	Cycles      Cycles      `toml:"cycles"`
	Coupling    Coupling    `toml:"coupling"`
	God         God         `toml:"god_component"`
	Erosion     Erosion     `toml:"erosion"`
	Aggregation Aggregation `toml:"aggregation"`
}

// ClassifierRule maps a path pattern to a layer and/or component type.
// Pattern is a glob when it contains wildcard characters, otherwise it is
// matched as a whole path token. Empty Layer/Type leave the field unset.
type ClassifierRule struct {
	Pattern string `toml:"pattern"`
	Layer   string `toml:"layer"`
	Type    string `toml:"type"`
}

type Classifier struct {
	Rules []ClassifierRule `toml:"rules"`
}

type Styles struct {
	UpwardSeverity    float64 `toml:"upward_severity"`
	LayerSkipSeverity float64 `toml:"layer_skip_severity"`
	InvertedSeverity  float64 `toml:"inverted_severity"`
	ServiceSeverity   float64 `toml:"service_severity"`
	SyncSeverity      float64 `toml:"sync_severity"`
}

type Cycles struct {
	MaxCycles      int     `toml:"max_cycles"`
	BaseSeverity   float64 `toml:"base_severity"`
	LengthStep     float64 `toml:"length_step"`
	MaxWeight      float64 `toml:"max_weight"`
	AvgWeight      float64 `toml:"avg_weight"`
	CoverageWeight float64 `toml:"coverage_weight"`
	CoverageScale  float64 `toml:"coverage_scale"`
}

type Coupling struct {
	HighDependencyThreshold      int     `toml:"high_dependency_threshold"`
	ExcessiveDependencyThreshold int     `toml:"excessive_dependency_threshold"`
	InstabilityThreshold         float64 `toml:"instability_threshold"`
	BidirectionalSeverity        float64 `toml:"bidirectional_severity"`
	ClusterMinSize               int     `toml:"cluster_min_size"`
	ClusterDensityThreshold      float64 `toml:"cluster_density_threshold"`
	MaxWeight                    float64 `toml:"max_weight"`
	AvgWeight                    float64 `toml:"avg_weight"`
	CoverageWeight               float64 `toml:"coverage_weight"`
}

type God struct {
	DependencyThreshold     int      `toml:"dependency_threshold"`
	MethodsThreshold        int      `toml:"methods_threshold"`
	LOCThreshold            int      `toml:"loc_threshold"`
	ResponsibilityThreshold int      `toml:"responsibility_threshold"`
	DependencyWeight        float64  `toml:"dependency_weight"`
	MethodsWeight           float64  `toml:"methods_weight"`
	LOCWeight               float64  `toml:"loc_weight"`
	ResponsibilityWeight    float64  `toml:"responsibility_weight"`
	FlagThreshold           float64  `toml:"flag_threshold"`
	ResponsibilityVerbs     []string `toml:"responsibility_verbs"`
	MaxVerbBonus            int      `toml:"max_verb_bonus"`
	HubDegreeThreshold      int      `toml:"hub_degree_threshold"`
	MaxDiversityBonus       int      `toml:"max_diversity_bonus"`
	MaxWeight               float64  `toml:"max_weight"`
	AvgWeight               float64  `toml:"avg_weight"`
	RatioWeight             float64  `toml:"ratio_weight"`
	RatioScale              float64  `toml:"ratio_scale"`
}

type Erosion struct {
	LayeredBoundarySeverity float64 `toml:"layered_boundary_severity"`
	LayeredBypassSeverity   float64 `toml:"layered_bypass_severity"`
	RingBoundarySeverity    float64 `toml:"ring_boundary_severity"`
	DomainCrossSeverity     float64 `toml:"domain_cross_severity"`
	AdapterCrossSeverity    float64 `toml:"adapter_cross_severity"`
	AvgWeight               float64 `toml:"avg_weight"`
	RatioWeight             float64 `toml:"ratio_weight"`
	StyleFactorBase         float64 `toml:"style_factor_base"`
}

type Aggregation struct {
	Weights                  map[string]float64 `toml:"weights"`
	DefaultWeight            float64            `toml:"default_weight"`
	MajorThreshold           float64            `toml:"major_threshold"`
	ElevatedThreshold        float64            `toml:"elevated_threshold"`
	RecommendationThreshold  float64            `toml:"recommendation_threshold"`
	RecommendationsPerResult int                `toml:"recommendations_per_result"`
}

// Default returns the documented baseline configuration. The numeric
// constants are empirical; they are exposed here so hosts can tune them
// without forking the detectors.
func Default() *Config {
	return &Config{
		Classifier: Classifier{Rules: defaultClassifierRules()},
		Styles: Styles{
			UpwardSeverity:    0.8,
			LayerSkipSeverity: 0.5,
			InvertedSeverity:  0.9,
			ServiceSeverity:   0.6,
			SyncSeverity:      0.6,
		},
		Cycles: Cycles{
			MaxCycles:      5000,
			BaseSeverity:   0.5,
			LengthStep:     0.1,
			MaxWeight:      0.4,
			AvgWeight:      0.3,
			CoverageWeight: 0.3,
			CoverageScale:  2,
		},
		Coupling: Coupling{
			HighDependencyThreshold:      5,
			ExcessiveDependencyThreshold: 10,
			InstabilityThreshold:         0.7,
			BidirectionalSeverity:        0.7,
			ClusterMinSize:               4,
			ClusterDensityThreshold:      0.3,
			MaxWeight:                    0.4,
			AvgWeight:                    0.3,
			CoverageWeight:               0.3,
		},
		God: God{
			DependencyThreshold:     10,
			MethodsThreshold:        15,
			LOCThreshold:            500,
			ResponsibilityThreshold: 5,
			DependencyWeight:        0.3,
			MethodsWeight:           0.2,
			LOCWeight:               0.2,
			ResponsibilityWeight:    0.3,
			FlagThreshold:           0.5,
			ResponsibilityVerbs: []string{
				"manage", "process", "handle", "create", "update", "delete",
				"validate", "transform", "convert", "parse", "render", "send",
				"load", "store", "sync", "schedule",
			},
			MaxVerbBonus:       3,
			HubDegreeThreshold: 5,
			MaxDiversityBonus:  2,
			MaxWeight:          0.4,
			AvgWeight:          0.4,
			RatioWeight:        0.2,
			RatioScale:         5,
		},
		Erosion: Erosion{
			LayeredBoundarySeverity: 0.8,
			LayeredBypassSeverity:   0.5,
			RingBoundarySeverity:    0.9,
			DomainCrossSeverity:     0.3,
			AdapterCrossSeverity:    0.6,
			AvgWeight:               0.5,
			RatioWeight:             0.3,
			StyleFactorBase:         0.5,
		},
		Aggregation: Aggregation{
			Weights: map[string]float64{
				"tight_coupling":   0.5,
				"dependency_cycle": 0.5,
			},
			DefaultWeight:            0.1,
			MajorThreshold:           0.7,
			ElevatedThreshold:        0.4,
			RecommendationThreshold:  0.3,
			RecommendationsPerResult: 2,
		},
	}
}

func defaultClassifierRules() []ClassifierRule {
	return []ClassifierRule{
		{Pattern: "controllers", Layer: "presentation", Type: "controller"},
		{Pattern: "controller", Layer: "presentation", Type: "controller"},
		{Pattern: "views", Layer: "presentation"},
		{Pattern: "presenters", Layer: "presentation", Type: "controller"},
		{Pattern: "api", Layer: "presentation", Type: "gateway"},
		{Pattern: "routes", Layer: "presentation", Type: "controller"},
		{Pattern: "usecases", Layer: "business", Type: "usecase"},
		{Pattern: "interactors", Layer: "business", Type: "usecase"},
		{Pattern: "services", Layer: "business", Type: "service"},
		{Pattern: "service", Layer: "business", Type: "service"},
		{Pattern: "entities", Layer: "domain", Type: "entity"},
		{Pattern: "entity", Layer: "domain", Type: "entity"},
		{Pattern: "models", Layer: "domain", Type: "model"},
		{Pattern: "model", Layer: "domain", Type: "model"},
		{Pattern: "repositories", Layer: "domain", Type: "repository"},
		{Pattern: "repository", Layer: "domain", Type: "repository"},
		{Pattern: "dao", Layer: "data_access", Type: "repository"},
		{Pattern: "database", Layer: "data_access", Type: "repository"},
		{Pattern: "db", Layer: "data_access", Type: "repository"},
		{Pattern: "persistence", Layer: "data_access", Type: "repository"},
		{Pattern: "storage", Layer: "data_access", Type: "repository"},
		{Pattern: "ports", Type: "port"},
		{Pattern: "port", Type: "port"},
		{Pattern: "adapters", Type: "adapter"},
		{Pattern: "adapter", Type: "adapter"},
		{Pattern: "infrastructure", Type: "infrastructure"},
		{Pattern: "infra", Type: "infrastructure"},
		{Pattern: "frameworks", Type: "framework"},
		{Pattern: "gateway", Type: "gateway"},
		{Pattern: "gateways", Type: "gateway"},
		{Pattern: "events", Type: "event"},
		{Pattern: "event", Type: "event"},
		{Pattern: "handlers", Type: "handler"},
		{Pattern: "handler", Type: "handler"},
		{Pattern: "listeners", Type: "consumer"},
		{Pattern: "consumers", Type: "consumer"},
		{Pattern: "consumer", Type: "consumer"},
		{Pattern: "subscribers", Type: "consumer"},
		{Pattern: "producers", Type: "producer"},
		{Pattern: "producer", Type: "producer"},
		{Pattern: "publishers", Type: "producer"},
		{Pattern: "broker", Type: "broker"},
		{Pattern: "queue", Type: "broker"},
		{Pattern: "bus", Type: "broker"},
	}
}
