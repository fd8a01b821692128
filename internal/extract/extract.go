// Package extract pulls a single venue-name candidate out of free-text
// message input, using either literal catalog-name substrings or alias
// tokens. The resolver applies its own precedence across the two.
package extract

import (
	"sort"
	"strings"

	"venuematch/internal/alias"
	"venuematch/internal/catalog"
	"venuematch/internal/textutil"
)

// minTokenLength matches the alias index minimum: shorter message tokens
// are noise, never nicknames.
const minTokenLength = 2

// NameFromMessage scans the message for catalog names occurring as
// substrings of its normalized form and returns the hit with the longest
// normalized name, preferring specific names over generic fragments.
func NameFromMessage(message string, entries []catalog.Entry) (string, bool) {
	normalized := textutil.NormalizeForMatch(message)
	if normalized == "" || len(entries) == 0 {
		return "", false
	}

	var bestName string
	bestLength := 0
	for _, entry := range entries {
		name := textutil.NormalizeForMatch(entry.Name)
		if name == "" || len(name) <= bestLength {
			continue
		}
		if strings.Contains(normalized, name) {
			bestName = entry.Name
			bestLength = len(name)
		}
	}
	return bestName, bestName != ""
}

// AliasFromMessage tokenizes the message, drops stopwords and short tokens,
// and returns the longest remaining token present in the alias index. Equal
// lengths break lexicographically so the pick stays deterministic.
func AliasFromMessage(message string, index alias.Index) (string, bool) {
	if len(index) == 0 {
		return "", false
	}

	tokens := textutil.Tokenize(message)
	candidates := tokens[:0]
	for _, token := range tokens {
		if len(token) < minTokenLength || alias.IsStopword(token) {
			continue
		}
		candidates = append(candidates, token)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) > len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})

	for _, token := range candidates {
		if len(index.Lookup(token)) > 0 {
			return token, true
		}
	}
	return "", false
}
