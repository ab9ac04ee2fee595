// # archdrift.go
//
// Public entry point. Hosts hand the engine a batch of file records and get
// back a style inference plus an anti-pattern report; the engine itself does
// no file or network I/O.
package archdrift

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/antipattern"
	"archdrift/internal/engine/classify"
	"archdrift/internal/engine/graph"
	"archdrift/internal/engine/style"
	"archdrift/internal/output"
	"archdrift/internal/shared/observability"
)

// Re-exported input and output types so hosts only import this package.
type (
	Config        = config.Config
	FileRecord    = graph.FileRecord
	Match         = graph.Match
	ComponentNode = graph.ComponentNode
	Snapshot      = graph.Snapshot
	StyleResult   = style.Result
	StyleSummary  = style.Summary
	PatternReport = antipattern.Report
	PatternResult = antipattern.Result
)

// DefaultConfig returns the built-in thresholds and classifier rules.
func DefaultConfig() *Config { return config.Default() }

// LoadConfig reads a TOML overlay on top of the defaults.
func LoadConfig(path string) (*Config, error) { return config.Load(path) }

// Report is the complete result of one analysis run.
type Report struct {
	RunID        string        `json:"run_id"`
	Root         string        `json:"root"`
	Graph        Snapshot      `json:"graph"`
	Styles       []StyleResult `json:"styles"`
	Primary      StyleSummary  `json:"primary"`
	AntiPatterns PatternReport `json:"anti_patterns"`
	Duration     time.Duration `json:"duration"`
}

// cycles extracts the cycle paths found by the dependency-cycle detector.
func (r *Report) cycles() [][]string {
	res, ok := r.AntiPatterns.AntiPatterns[antipattern.TypeDependencyCycle]
	if !ok {
		return nil
	}
	cycles := make([][]string, 0, len(res.Instances))
	for _, inst := range res.Instances {
		cycles = append(cycles, inst.Components)
	}
	return cycles
}

// primaryViolations returns the violations of the selected primary style.
func (r *Report) primaryViolations() []style.Violation {
	for _, res := range r.Styles {
		if res.Style == r.Primary.Primary {
			return res.Violations
		}
	}
	return nil
}

// DOT renders the analyzed graph as Graphviz source with detected cycles
// highlighted.
func (r *Report) DOT() (string, error) {
	return output.NewDOTGenerator(r.Graph).Generate(r.cycles())
}

// Mermaid renders the analyzed graph as a Mermaid flowchart with cycles and
// primary-style violations marked.
func (r *Report) Mermaid() (string, error) {
	return output.NewMermaidGenerator(r.Graph).Generate(r.cycles(), r.primaryViolations())
}

// TSV renders the anti-pattern findings as a tab-separated table.
func (r *Report) TSV() (string, error) {
	return output.NewTSVGenerator(r.Graph).GenerateFindings(r.AntiPatterns)
}

// Engine wires the classifier, graph builder, style detectors and
// anti-pattern detectors behind one synchronous API. An Engine is immutable
// after New and safe for concurrent use; each Analyze call builds its own
// graph and shares no state with other calls.
type Engine struct {
	cfg        *config.Config
	builder    *graph.Builder
	styles     *style.Registry
	patterns   *antipattern.Registry
	aggregator *antipattern.Aggregator
}

// New validates the configuration and builds an engine from it. A nil
// config selects the defaults.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	patterns := antipattern.NewRegistry(cfg)
	return &Engine{
		cfg:        cfg,
		builder:    graph.NewBuilder(classify.New(cfg.Classifier)),
		styles:     style.NewRegistry(cfg),
		patterns:   patterns,
		aggregator: antipattern.NewAggregator(patterns, cfg.Aggregation),
	}, nil
}

// Analyze builds the component graph from the records, runs every style
// detector, selects the primary style, and aggregates the anti-pattern
// detectors against it. root is informational and carried through to the
// report unchanged.
func (e *Engine) Analyze(ctx context.Context, records []FileRecord, root string) (*Report, error) {
	ctx, span := observability.Tracer.Start(ctx, "archdrift.Analyze")
	defer span.End()
	start := time.Now()
	defer func() {
		observability.AnalysisDuration.WithLabelValues("analyze").Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g := e.builder.Build(records)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := e.styles.AnalyzeAll(g)
	primary := style.Select(results)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	patterns := e.aggregator.Aggregate(antipattern.Input{
		Graph:   g,
		Styles:  results,
		Primary: primary,
		Root:    root,
	})

	report := &Report{
		RunID:        uuid.NewString(),
		Root:         root,
		Graph:        g.Snapshot(),
		Styles:       results,
		Primary:      primary,
		AntiPatterns: patterns,
		Duration:     time.Since(start),
	}
	slog.Info("analysis complete",
		"run_id", report.RunID,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"primary_style", string(primary.Primary),
		"confidence", primary.Confidence,
		"overall_severity", patterns.OverallSeverity)
	return report, nil
}

// AnalyzeStyle runs a single named style detector. Unknown names return a
// validation error rather than an empty result.
func (e *Engine) AnalyzeStyle(ctx context.Context, records []FileRecord, name string) (StyleResult, error) {
	ctx, span := observability.Tracer.Start(ctx, "archdrift.AnalyzeStyle")
	defer span.End()
	start := time.Now()
	defer func() {
		observability.AnalysisDuration.WithLabelValues("style").Observe(time.Since(start).Seconds())
	}()

	detector, err := e.styles.Get(name)
	if err != nil {
		return StyleResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return StyleResult{}, err
	}
	return detector.Analyze(e.builder.Build(records)), nil
}

// DetectPattern runs a single named anti-pattern detector. The style pass
// still runs first because the erosion detector keys off the primary style.
func (e *Engine) DetectPattern(ctx context.Context, records []FileRecord, name string) (PatternResult, error) {
	ctx, span := observability.Tracer.Start(ctx, "archdrift.DetectPattern")
	defer span.End()
	start := time.Now()
	defer func() {
		observability.AnalysisDuration.WithLabelValues("pattern").Observe(time.Since(start).Seconds())
	}()

	detector, err := e.patterns.Get(name)
	if err != nil {
		return PatternResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return PatternResult{}, err
	}
	g := e.builder.Build(records)
	results := e.styles.AnalyzeAll(g)
	return detector.Analyze(antipattern.Input{
		Graph:   g,
		Styles:  results,
		Primary: style.Select(results),
	}), nil
}
