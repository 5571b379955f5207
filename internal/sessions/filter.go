package sessions

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Fuzzy matches below this similarity are dropped from filter results.
const minSimilarity = 0.3

// Filter ranks sessions against a typeahead query. Substring matches on
// name or key always qualify; the rest are scored by levenshtein
// similarity against the name. An empty query returns the input order.
func Filter(list []Session, query string) []Session {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return list
	}

	type scored struct {
		s     Session
		score float64
	}
	var matches []scored
	for _, s := range list {
		name := strings.ToLower(s.Name)
		key := strings.ToLower(s.Key)
		if strings.Contains(name, query) || strings.Contains(key, query) {
			matches = append(matches, scored{s: s, score: 1})
			continue
		}
		if sim := similarity(name, query); sim >= minSimilarity {
			matches = append(matches, scored{s: s, score: sim})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	out := make([]Session, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.s)
	}
	return out
}

func similarity(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
