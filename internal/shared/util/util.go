package util

import (
	"path"
	"sort"
	"strings"
)

// NormalizePatternPath cleans and normalizes paths for matcher/pattern usage.
func NormalizePatternPath(s string) string {
	trimmed := strings.TrimSpace(strings.ReplaceAll(s, "\\", "/"))
	clean := path.Clean(trimmed)
	if clean == "." {
		return ""
	}
	return strings.TrimPrefix(clean, "./")
}

// PathTokens splits a normalized path into lower-cased segment and name tokens.
// "src/UserControllers/auth_handler.py" yields src, usercontrollers, auth,
// handler plus the joined stem "auth_handler".
func PathTokens(p string) []string {
	p = strings.ToLower(NormalizePatternPath(p))
	if p == "" {
		return nil
	}
	ext := path.Ext(p)
	p = strings.TrimSuffix(p, ext)

	tokens := make([]string, 0, 8)
	for _, seg := range strings.Split(p, "/") {
		if seg == "" {
			continue
		}
		tokens = append(tokens, seg)
		for _, sub := range strings.FieldsFunc(seg, func(r rune) bool {
			return r == '_' || r == '-' || r == '.'
		}) {
			if sub != seg {
				tokens = append(tokens, sub)
			}
		}
	}
	return tokens
}

// PathStem returns the final path element without its extension.
func PathStem(p string) string {
	base := path.Base(NormalizePatternPath(p))
	return strings.TrimSuffix(base, path.Ext(base))
}

// SortedStringKeys returns the map's keys in sorted order.
func SortedStringKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clip bounds v to the inclusive [0,1] interval.
func Clip(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NameWords splits an identifier into lower-cased words, breaking on
// underscores, dashes and camelCase humps. "ProcessAndStoreManager" yields
// process, and, store, manager.
func NameWords(name string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			flush()
			cur.WriteRune(r)
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return out
}

// WholeWordCount counts how many of the given words occur as whole words in
// the identifier name.
func WholeWordCount(name string, words []string) int {
	present := make(map[string]bool)
	for _, f := range NameWords(name) {
		present[f] = true
	}
	count := 0
	for _, w := range words {
		if present[strings.ToLower(w)] {
			count++
		}
	}
	return count
}
