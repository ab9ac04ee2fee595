// # internal/output/tsv.go
package output

import (
	"fmt"
	"strings"

	"archdrift/internal/engine/antipattern"
	"archdrift/internal/engine/graph"
)

type TSVGenerator struct {
	snapshot graph.Snapshot
}

func NewTSVGenerator(snap graph.Snapshot) *TSVGenerator {
	return &TSVGenerator{snapshot: snap}
}

func (t *TSVGenerator) Generate() (string, error) {
	var buf strings.Builder

	buf.WriteString("Source\tTarget\tKind\n")
	for _, edge := range t.snapshot.Edges {
		buf.WriteString(fmt.Sprintf("%s\t%s\t%s\n", edge.Source, edge.Target, edge.Kind))
	}

	return buf.String(), nil
}

// GenerateFindings flattens an anti-pattern report into one row per
// instance, worst first within each detector.
func (t *TSVGenerator) GenerateFindings(report antipattern.Report) (string, error) {
	var buf strings.Builder

	buf.WriteString("Detector\tInstanceType\tSeverity\tComponents\tDescription\n")
	for _, name := range []string{
		antipattern.TypeDependencyCycle,
		antipattern.TypeTightCoupling,
		antipattern.TypeGodComponent,
		antipattern.TypeArchitecturalErosion,
	} {
		res, ok := report.AntiPatterns[name]
		if !ok {
			continue
		}
		for _, inst := range antipattern.SortedInstances(res) {
			buf.WriteString(fmt.Sprintf("%s\t%s\t%.2f\t%s\t%s\n",
				name,
				inst.Type,
				inst.Severity,
				strings.Join(inst.Components, ","),
				inst.Description,
			))
		}
	}

	return buf.String(), nil
}
