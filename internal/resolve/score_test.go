package resolve

import (
	"testing"

	"venuematch/internal/catalog"
)

func TestScoreExactMatch(t *testing.T) {
	entry := catalog.Entry{ID: "1", Name: "Long Table Brewhouse"}
	if got := Score("long table brewhouse", entry); got != ExactConfidence {
		t.Fatalf("expected exact score 1.0, got %f", got)
	}
	if got := Score("Long Table & Brewhouse", catalog.Entry{ID: "2", Name: "Long Table and Brewhouse"}); got != ExactConfidence {
		t.Fatalf("ampersand form should match 'and' form exactly, got %f", got)
	}
}

func TestScoreSlugMatch(t *testing.T) {
	entry := catalog.Entry{ID: "1", Name: "Sunshine Studios", Slug: "sunshine-studios-live"}
	if got := Score("sunshine studios live", entry); got != SlugConfidence {
		t.Fatalf("expected slug score %f, got %f", SlugConfidence, got)
	}
	// Slug derived from the name when the catalog omits one. The candidate
	// must not normalize to the same name, or the exact rule fires first.
	derived := catalog.Entry{ID: "2", Name: "The Rusty Mic"}
	if got := Score("the-rusty-mic!", derived); got != SlugConfidence {
		t.Fatalf("expected derived-slug score %f, got %f", SlugConfidence, got)
	}
}

func TestScoreFuzzyJaccardWithBoost(t *testing.T) {
	entry := catalog.Entry{ID: "1", Name: "Long Table Brewhouse"}
	// Tokens {long, table} vs {long, table, brewhouse}: 2/3, plus the
	// shared first token.
	got := Score("long table", entry)
	want := 2.0/3.0 + FirstTokenBoost
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected %f, got %f", want, got)
	}
}

func TestScoreBoostCapped(t *testing.T) {
	// Same token set, different order: Jaccard 1.0 and a matching first
	// token must still cap at 1.0.
	entry := catalog.Entry{ID: "1", Name: "Velvet Owl Kitchen"}
	if got := Score("velvet kitchen owl", entry); got != 1.0 {
		t.Fatalf("expected capped score 1.0, got %f", got)
	}
}

func TestScoreNoOverlap(t *testing.T) {
	entry := catalog.Entry{ID: "1", Name: "Long Table Brewhouse"}
	if got := Score("skylark lounge", entry); got != 0 {
		t.Fatalf("expected 0 for disjoint tokens, got %f", got)
	}
}

func TestScoreBounds(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "1", Name: "Long Table Brewhouse"},
		{ID: "2", Name: ""},
		{ID: "3", Name: "The Rusty Mic", Slug: "the-rusty-mic"},
		{ID: "4", Name: "Café Olé"},
	}
	candidates := []string{
		"", "   ", "?!", "long table brewhouse", "ltb", "the-rusty-mic",
		"long long long table", "completely unrelated text with many tokens",
		"café", "Long Table & Brewhouse",
	}
	for _, candidate := range candidates {
		for _, entry := range entries {
			got := Score(candidate, entry)
			if got < 0 || got > 1 {
				t.Fatalf("Score(%q, %q) = %f out of [0,1]", candidate, entry.Name, got)
			}
		}
	}
}

func TestScoreBothEmpty(t *testing.T) {
	if got := Score("", catalog.Entry{ID: "1", Name: ""}); got != 0 {
		t.Fatalf("expected 0 when both token sets are empty, got %f", got)
	}
}
