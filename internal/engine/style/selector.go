package style

// Summary is the numeric canonical output downstream detectors consume.
// Prose rendering of a primary style is a presentation concern and happens
// outside the core.
type Summary struct {
	Primary         Style          `json:"primary_style"`
	Confidence      float64        `json:"confidence"`
	ViolationCounts map[string]int `json:"violation_counts"`
	ClassifiedNodes map[string]int `json:"classified_nodes"`
}

// Select picks the primary style by highest confidence. Exact ties fall
// back to the canonical order so reruns always agree. Zero-confidence
// results never become primary, so a graph no detector recognizes (the
// empty graph included) reports StyleUnknown.
func Select(results []Result) Summary {
	summary := Summary{
		Primary:         StyleUnknown,
		ViolationCounts: make(map[string]int, len(results)),
		ClassifiedNodes: make(map[string]int, len(results)),
	}

	rank := make(map[Style]int, len(CanonicalOrder))
	for i, s := range CanonicalOrder {
		rank[s] = i
	}

	bestRank := len(CanonicalOrder)
	for _, res := range results {
		summary.ViolationCounts[string(res.Style)] = len(res.Violations)
		classified := 0
		for name, count := range res.LayerCounts {
			if name != "unclassified" {
				classified += count
			}
		}
		summary.ClassifiedNodes[string(res.Style)] = classified

		if res.Confidence <= 0 {
			continue
		}
		r, known := rank[res.Style]
		if !known {
			r = len(CanonicalOrder)
		}
		if res.Confidence > summary.Confidence ||
			(res.Confidence == summary.Confidence && r < bestRank) {
			summary.Primary = res.Style
			summary.Confidence = res.Confidence
			bestRank = r
		}
	}

	return summary
}
