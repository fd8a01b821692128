package resolve

import (
	"venuematch/internal/catalog"
	"venuematch/internal/textutil"
)

// Score computes the similarity between a candidate string and a catalog
// entry, always in [0,1]. Exact normalized equality scores 1.0, slug
// equality 0.95, everything else falls to token-set Jaccard similarity
// plus a first-token boost.
func Score(candidate string, entry catalog.Entry) float64 {
	normalizedCandidate := textutil.NormalizeForMatch(candidate)
	if normalizedCandidate != "" && normalizedCandidate == textutil.NormalizeForMatch(entry.Name) {
		return ExactConfidence
	}
	if slug := textutil.MatchSlug(candidate); slug != "" && slug == entry.MatchSlug() {
		return SlugConfidence
	}

	candidateTokens := textutil.Tokenize(candidate)
	entryTokens := textutil.Tokenize(entry.Name)
	score := jaccard(candidateTokens, entryTokens)
	if len(candidateTokens) > 0 && len(entryTokens) > 0 && candidateTokens[0] == entryTokens[0] {
		score += FirstTokenBoost
		if score > 1 {
			score = 1
		}
	}
	return score
}

// jaccard computes |intersection| / |union| over two token sets. Both
// empty yields 0, not 1.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, token := range a {
		set[token] = struct{}{}
	}
	intersection := 0
	for _, token := range b {
		if _, ok := set[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
