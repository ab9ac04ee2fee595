// Package classify assigns architectural layer and component-type labels to
// graph nodes from path and name evidence. One classifier instance feeds
// every style detector so their partitions stay comparable.
package classify

import (
	"log/slog"
	"strings"

	"github.com/gobwas/glob"

	"archdrift/internal/core/config"
	"archdrift/internal/engine/graph"
	"archdrift/internal/shared/util"
)

type compiledRule struct {
	raw        string
	isWildcard bool
	glob       glob.Glob
	layer      graph.Layer
	ctype      graph.ComponentType
}

type Classifier struct {
	rules []compiledRule
}

// New compiles the configured rule table. Rules with wildcard characters
// become glob matchers over the normalized path; plain rules match whole
// path or construct tokens. Rules that fail to compile or name unknown
// layers/types are dropped with a warning, not an error: a partially usable
// table still classifies.
func New(cfg config.Classifier) *Classifier {
	c := &Classifier{}
	for _, rule := range cfg.Rules {
		pattern := strings.ToLower(util.NormalizePatternPath(rule.Pattern))
		if pattern == "" {
			continue
		}
		layer, layerOK := graph.ParseLayer(rule.Layer)
		ctype, typeOK := graph.ParseComponentType(rule.Type)
		if !layerOK || !typeOK {
			slog.Warn("dropping classifier rule with unknown label",
				"pattern", rule.Pattern, "layer", rule.Layer, "type", rule.Type)
			continue
		}

		cr := compiledRule{
			raw:        pattern,
			isWildcard: strings.ContainsAny(pattern, "*?[]{}"),
			layer:      layer,
			ctype:      ctype,
		}
		if cr.isWildcard {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				slog.Warn("dropping invalid classifier pattern", "pattern", rule.Pattern, "error", err)
				continue
			}
			cr.glob = g
		}
		c.rules = append(c.rules, cr)
	}
	return c
}

// Classify returns the first-matching rule's labels. Later rules can fill a
// field an earlier match left unset; a path with no matching rule keeps both
// fields unset.
func (c *Classifier) Classify(path string, constructs []string) (graph.Layer, graph.ComponentType) {
	normalized := strings.ToLower(util.NormalizePatternPath(path))
	tokens := tokenSet(path, constructs)

	layer := graph.LayerUnset
	ctype := graph.TypeUnset
	for _, rule := range c.rules {
		if layer != graph.LayerUnset && ctype != graph.TypeUnset {
			break
		}
		if !rule.matches(normalized, tokens) {
			continue
		}
		if layer == graph.LayerUnset && rule.layer != graph.LayerUnset {
			layer = rule.layer
		}
		if ctype == graph.TypeUnset && rule.ctype != graph.TypeUnset {
			ctype = rule.ctype
		}
	}
	return layer, ctype
}

func (r compiledRule) matches(normalizedPath string, tokens map[string]bool) bool {
	if r.isWildcard {
		return r.glob.Match(normalizedPath)
	}
	return tokens[r.raw]
}

func tokenSet(path string, constructs []string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range util.PathTokens(path) {
		tokens[tok] = true
	}
	for _, construct := range constructs {
		for _, word := range util.NameWords(construct) {
			tokens[word] = true
		}
	}
	return tokens
}
