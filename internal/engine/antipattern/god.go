package antipattern

import (
	"fmt"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/graph"
	"archdrift/internal/shared/util"
)

// GodDetector scores each component for doing too much: too many
// dependencies, too many methods, too much code, too many responsibilities.
type GodDetector struct {
	cfg config.God
}

func NewGodDetector(cfg config.God) *GodDetector {
	return &GodDetector{cfg: cfg}
}

func (d *GodDetector) Name() string { return TypeGodComponent }

func (d *GodDetector) Analyze(in Input) Result {
	g := in.Graph
	instances := make([]Instance, 0)
	maxScore := 0.0
	sumScore := 0.0

	for _, node := range g.Nodes() {
		score := d.godScore(g, node)
		if score <= d.cfg.FlagThreshold {
			continue
		}
		if score > maxScore {
			maxScore = score
		}
		sumScore += score
		instances = append(instances, Instance{
			Type:       TypeGodComponent,
			Components: []string{node.ID},
			Severity:   score,
			Description: fmt.Sprintf("%s concentrates too much: %d dependencies, %d methods, %d lines",
				node.ID, g.InDegree(node.ID)+g.OutDegree(node.ID), node.MethodsCount, node.LOC),
		})
	}

	metrics := map[string]float64{
		"god_components": float64(len(instances)),
	}

	severity := 0.0
	description := "no god components detected"
	recommendations := []string(nil)
	if len(instances) > 0 {
		avgScore := sumScore / float64(len(instances))
		godRatio := 0.0
		if g.NodeCount() > 0 {
			godRatio = float64(len(instances)) / float64(g.NodeCount())
		}
		severity = util.Clip(d.cfg.MaxWeight*maxScore +
			d.cfg.AvgWeight*avgScore +
			d.cfg.RatioWeight*util.Clip(d.cfg.RatioScale*godRatio))
		metrics["max_god_score"] = maxScore
		metrics["avg_god_score"] = avgScore
		metrics["god_ratio"] = godRatio

		description = fmt.Sprintf("%d of %d components concentrate too many responsibilities",
			len(instances), g.NodeCount())
		recommendations = []string{
			"Split each god component along its responsibility seams into single-purpose components",
			"Extract the most-used methods of a god component behind a narrower interface",
		}
	}

	return Result{
		Type:            TypeGodComponent,
		Severity:        severity,
		Instances:       instances,
		Metrics:         metrics,
		Description:     description,
		Recommendations: recommendations,
	}
}

func (d *GodDetector) godScore(g *graph.ComponentGraph, node graph.ComponentNode) float64 {
	deps := g.InDegree(node.ID) + g.OutDegree(node.ID)
	depScore := subScore(deps, d.cfg.DependencyThreshold)
	methodsScore := subScore(node.MethodsCount, d.cfg.MethodsThreshold)
	locScore := subScore(node.LOC, d.cfg.LOCThreshold)
	respScore := subScore(d.responsibilities(g, node), d.cfg.ResponsibilityThreshold)

	return util.Clip(d.cfg.DependencyWeight*depScore +
		d.cfg.MethodsWeight*methodsScore +
		d.cfg.LOCWeight*locScore +
		d.cfg.ResponsibilityWeight*respScore)
}

// responsibilities estimates how many distinct jobs a component performs
// from naming and neighborhood evidence. The heuristic is empirical; its
// constants are configuration, not proven semantics.
func (d *GodDetector) responsibilities(g *graph.ComponentGraph, node graph.ComponentNode) int {
	count := 1

	if util.WholeWordCount(node.Name, []string{"and"}) > 0 {
		count++
	}

	verbs := util.WholeWordCount(node.Name, d.cfg.ResponsibilityVerbs)
	if verbs > d.cfg.MaxVerbBonus {
		verbs = d.cfg.MaxVerbBonus
	}
	count += verbs

	if g.InDegree(node.ID) > d.cfg.HubDegreeThreshold && g.OutDegree(node.ID) > d.cfg.HubDegreeThreshold {
		count++
	}

	predCats := neighborCategories(g, g.Predecessors(node.ID))
	succCats := neighborCategories(g, g.Successors(node.ID))
	diversity := predCats
	if succCats < diversity {
		diversity = succCats
	}
	if diversity > d.cfg.MaxDiversityBonus {
		diversity = d.cfg.MaxDiversityBonus
	}
	count += diversity

	return count
}

func subScore(value, threshold int) float64 {
	if threshold <= 0 {
		return 0
	}
	s := float64(value) / float64(threshold)
	if s > 1 {
		return 1
	}
	return s
}

func neighborCategories(g *graph.ComponentGraph, ids []string) int {
	categories := make(map[string]bool)
	for _, id := range ids {
		n, ok := g.Node(id)
		if !ok {
			continue
		}
		switch {
		case n.Type != graph.TypeUnset:
			categories[string(n.Type)] = true
		case n.Layer != graph.LayerUnset:
			categories[string(n.Layer)] = true
		default:
			categories["other"] = true
		}
	}
	return len(categories)
}
