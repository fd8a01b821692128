package extract

import (
	"testing"

	"venuematch/internal/alias"
	"venuematch/internal/catalog"
)

func TestNameFromMessagePrefersLongestName(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "1", Name: "The Rusty Mic"},
		{ID: "2", Name: "The Rusty Mic Room"},
	}
	name, ok := NameFromMessage("see you at the rusty mic room tonight", entries)
	if !ok || name != "The Rusty Mic Room" {
		t.Fatalf("expected longest name, got %q (ok=%v)", name, ok)
	}
}

func TestNameFromMessageIgnoresCaseAndPunctuation(t *testing.T) {
	entries := []catalog.Entry{{ID: "1", Name: "Joe's Place"}}
	name, ok := NameFromMessage("Dinner at JOES PLACE?", entries)
	if !ok || name != "Joe's Place" {
		t.Fatalf("expected match despite punctuation, got %q (ok=%v)", name, ok)
	}
}

func TestNameFromMessageNoMatch(t *testing.T) {
	entries := []catalog.Entry{{ID: "1", Name: "Long Table Brewhouse"}}
	if name, ok := NameFromMessage("somewhere downtown", entries); ok {
		t.Fatalf("expected no match, got %q", name)
	}
	if name, ok := NameFromMessage("", entries); ok {
		t.Fatalf("expected no match for empty message, got %q", name)
	}
	if name, ok := NameFromMessage("anything", nil); ok {
		t.Fatalf("expected no match for empty catalog, got %q", name)
	}
}

func TestAliasFromMessage(t *testing.T) {
	entries := []catalog.Entry{{ID: "1", Name: "Long Table Brewhouse"}}
	index := alias.Build(entries, nil)

	token, ok := AliasFromMessage("meet at ltb tonight", index)
	if !ok || token != "ltb" {
		t.Fatalf("expected ltb, got %q (ok=%v)", token, ok)
	}
}

func TestAliasFromMessagePrefersLongerTokens(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "1", Name: "Sunshine Studios Live", Slug: "sunshine-studios-live"},
	}
	index := alias.Build(entries, alias.DefaultOverrides())

	// Both "ssl" and "sslive" are indexed; the longer message token wins.
	token, ok := AliasFromMessage("is sslive or ssl correct", index)
	if !ok || token != "sslive" {
		t.Fatalf("expected sslive, got %q (ok=%v)", token, ok)
	}
}

func TestAliasFromMessageSkipsStopwordsAndShortTokens(t *testing.T) {
	entries := []catalog.Entry{{ID: "1", Name: "Long Table Brewhouse"}}
	index := alias.Build(entries, nil)

	if token, ok := AliasFromMessage("at the in on a x", index); ok {
		t.Fatalf("expected no alias, got %q", token)
	}
}
