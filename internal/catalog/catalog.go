package catalog

import (
	"strings"

	"venuematch/internal/textutil"
)

// Entry is one venue in a caller-supplied catalog snapshot. ID is the stable
// identity carried through resolution output; Slug is optional and derived
// from Name when absent.
type Entry struct {
	ID   string `toml:"id" json:"id"`
	Name string `toml:"name" json:"name"`
	Slug string `toml:"slug,omitempty" json:"slug,omitempty"`
}

// MatchSlug returns the entry's catalog slug when present, otherwise a slug
// derived from its name.
func (e Entry) MatchSlug() string {
	if slug := strings.TrimSpace(e.Slug); slug != "" {
		return slug
	}
	return textutil.MatchSlug(e.Name)
}

// DedupeByID drops entries whose id repeats an earlier entry (first wins)
// and entries missing an id or name. Input order is preserved.
func DedupeByID(entries []Entry) []Entry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		id := strings.TrimSpace(entry.ID)
		if id == "" || strings.TrimSpace(entry.Name) == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, entry)
	}
	return out
}
