package graph

import (
	"log/slog"

	"archdrift/internal/shared/observability"
	"archdrift/internal/shared/util"
)

// Classifier labels a node from its path and the construct names found in
// it. Implemented by internal/engine/classify; declared here so the graph
// package stays at the bottom of the dependency order.
type Classifier interface {
	Classify(path string, constructs []string) (Layer, ComponentType)
}

// Builder turns file-level extractor records into a ComponentGraph. Default
// granularity is one node per file; a record qualifier splits a file into
// several nodes.
type Builder struct {
	classifier Classifier
}

func NewBuilder(classifier Classifier) *Builder {
	return &Builder{classifier: classifier}
}

// NodeID derives the stable node identity from a file path and optional
// qualifier.
func NodeID(file, qualifier string) string {
	id := util.NormalizePatternPath(file)
	if qualifier != "" {
		id += "#" + qualifier
	}
	return id
}

// Build constructs the graph in two passes: nodes first, then edges for
// every reference whose target also has a node. Malformed records are
// skipped with a warning; unresolvable references are dropped silently.
func (b *Builder) Build(records []FileRecord) *ComponentGraph {
	g := newComponentGraph()

	for i, rec := range records {
		if rec.File == "" {
			slog.Warn("skipping malformed file record", "index", i, "reason", "missing file")
			observability.RecordsSkippedTotal.Inc()
			continue
		}
		g.addNode(b.buildNode(rec))
	}

	for _, rec := range records {
		if rec.File == "" {
			continue
		}
		source := NodeID(rec.File, rec.Qualifier)
		for _, imp := range rec.Imports {
			g.addEdge(source, NodeID(imp, ""), EdgeImport)
		}
		for _, kind := range util.SortedStringKeys(rec.Patterns) {
			for _, m := range rec.Patterns[kind] {
				if m.Target == "" {
					continue
				}
				edgeKind := EdgeImport
				if kind == "call" {
					edgeKind = EdgeCall
				}
				g.addEdge(source, NodeID(m.Target, ""), edgeKind)
			}
		}
	}

	observability.GraphNodes.Set(float64(g.NodeCount()))
	observability.GraphEdges.Set(float64(g.EdgeCount()))
	return g
}

func (b *Builder) buildNode(rec FileRecord) ComponentNode {
	node := ComponentNode{
		ID:   NodeID(rec.File, rec.Qualifier),
		Path: util.NormalizePatternPath(rec.File),
		LOC:  rec.LOC,
	}

	constructs := make([]string, 0, len(rec.Patterns))
	maxLine := 0
	for _, kind := range util.SortedStringKeys(rec.Patterns) {
		constructs = append(constructs, kind)
		for _, m := range rec.Patterns[kind] {
			if m.Name != "" {
				constructs = append(constructs, m.Name)
			}
			if m.Line > maxLine {
				maxLine = m.Line
			}
			switch kind {
			case "function", "method":
				node.MethodsCount++
			case "class", "struct", "type":
				if node.Name == "" {
					node.Name = m.Name
				}
			}
		}
	}
	if node.Name == "" {
		node.Name = util.PathStem(rec.File)
	}
	if node.LOC == 0 {
		node.LOC = maxLine
	}

	if b.classifier != nil {
		node.Layer, node.Type = b.classifier.Classify(node.Path, constructs)
	}
	return node
}
