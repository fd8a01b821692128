package alias

import (
	"venuematch/internal/catalog"
	"venuematch/internal/textutil"
)

// minLength is the shortest alias the index accepts after normalization.
const minLength = 2

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "of": {}, "at": {}, "in": {},
	"on": {}, "for": {}, "to": {}, "a": {}, "an": {},
}

// IsStopword reports whether a token carries no naming signal and should be
// skipped when deriving acronyms or scanning message tokens.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// Acronym derives a nickname from a venue name's non-stopword token
// initials. It returns false when fewer than two tokens survive the
// stopword filter or the result falls under the minimum length.
func Acronym(name string) (string, bool) {
	tokens := textutil.Tokenize(name)
	initials := make([]rune, 0, len(tokens))
	for _, token := range tokens {
		if IsStopword(token) {
			continue
		}
		for _, r := range token {
			initials = append(initials, r)
			break
		}
	}
	if len(initials) < 2 {
		return "", false
	}
	acronym := textutil.NormalizeForMatch(string(initials))
	if len(acronym) < minLength {
		return "", false
	}
	return acronym, true
}

// Index maps a normalized alias to every catalog entry that claims it.
// Collisions are preserved deliberately.
type Index map[string][]catalog.Entry

// Build indexes generated acronyms plus any overrides for the given
// entries. Overrides are keyed by the entry's match slug.
func Build(entries []catalog.Entry, overrides map[string][]string) Index {
	index := make(Index)
	for _, entry := range entries {
		if acronym, ok := Acronym(entry.Name); ok {
			index.add(acronym, entry)
		}
		for _, override := range overrides[entry.MatchSlug()] {
			normalized := textutil.NormalizeForMatch(override)
			if len(normalized) < minLength {
				continue
			}
			index.add(normalized, entry)
		}
	}
	return index
}

// Lookup returns every entry registered under the alias, normalizing the
// query the same way keys were normalized at build time.
func (i Index) Lookup(query string) []catalog.Entry {
	if len(i) == 0 {
		return nil
	}
	return i[textutil.NormalizeForMatch(query)]
}

func (i Index) add(key string, entry catalog.Entry) {
	for _, existing := range i[key] {
		if existing.ID == entry.ID {
			return
		}
	}
	i[key] = append(i[key], entry)
}
