package words

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// similarDistance is the edit distance under which words count as look-alikes.
const similarDistance = 2

// Similar returns up to n words from candidates that look most like target,
// preferring those within edit distance 2 and filling with the next closest.
func Similar(target string, candidates []string, n int) []string {
	type scored struct {
		word string
		dist int
	}
	var all []scored
	for _, c := range candidates {
		if strings.EqualFold(c, target) {
			continue
		}
		all = append(all, scored{c, levenshtein.Distance(strings.ToLower(target), strings.ToLower(c), nil)})
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].dist != all[j].dist {
			return all[i].dist < all[j].dist
		}
		return all[i].word < all[j].word
	})

	out := make([]string, 0, n)
	for _, s := range all {
		if len(out) == n {
			break
		}
		out = append(out, s.word)
	}
	return out
}

// CloseMatches returns the candidates within edit distance 2 of target.
func CloseMatches(target string, candidates []string) []string {
	var out []string
	for _, w := range Similar(target, candidates, len(candidates)) {
		if levenshtein.Distance(strings.ToLower(target), strings.ToLower(w), nil) > similarDistance {
			break
		}
		out = append(out, w)
	}
	return out
}
