package alias

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"venuematch/internal/catalog"
)

func TestAcronym(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"basic", "Long Table Brewhouse", "ltb", true},
		{"stopwords dropped", "The Rusty Mic", "rm", true},
		{"all stopwords", "The And Of", "", false},
		{"single token", "Brewhouse", "", false},
		{"two tokens minimum", "Mercury Cafe", "mc", true},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Acronym(tc.input)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Acronym(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestBuildPreservesCollisions(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "1", Name: "Long Table Brewhouse"},
		{ID: "2", Name: "Lazy Turtle Bistro"},
	}
	index := Build(entries, nil)
	hits := index.Lookup("ltb")
	if len(hits) != 2 {
		t.Fatalf("expected both colliding venues under ltb, got %d: %+v", len(hits), hits)
	}
}

func TestBuildMergesOverridesBySlug(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "1", Name: "Sunshine Studios Live", Slug: "sunshine-studios-live"},
	}
	index := Build(entries, DefaultOverrides())

	for _, nickname := range []string{"ssl", "sslive"} {
		hits := index.Lookup(nickname)
		if len(hits) != 1 || hits[0].ID != "1" {
			t.Fatalf("expected override %q to hit entry 1, got %+v", nickname, hits)
		}
	}
}

func TestBuildDiscardsShortAliases(t *testing.T) {
	entries := []catalog.Entry{{ID: "1", Name: "X Y"}}
	overrides := map[string][]string{"x-y": {"z", "zz"}}
	index := Build(entries, overrides)
	if hits := index.Lookup("z"); len(hits) != 0 {
		t.Fatalf("single-character alias should be discarded, got %+v", hits)
	}
	if hits := index.Lookup("zz"); len(hits) != 1 {
		t.Fatalf("expected two-character alias to be kept, got %+v", hits)
	}
}

func TestLookupNormalizesQuery(t *testing.T) {
	entries := []catalog.Entry{{ID: "1", Name: "Long Table Brewhouse"}}
	index := Build(entries, nil)
	if hits := index.Lookup("  LTB! "); len(hits) != 1 {
		t.Fatalf("expected normalized lookup to hit, got %+v", hits)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.toml")
	content := `
[aliases]
"sunshine-studios-live" = ["sunshine"]
"the-rusty-mic" = ["rusty", "mic night"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	overrides, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}
	want := []string{"rusty", "mic night"}
	if !reflect.DeepEqual(overrides["the-rusty-mic"], want) {
		t.Fatalf("unexpected overrides: %+v", overrides)
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	overrides, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing override file should not error: %v", err)
	}
	if len(overrides) != 0 {
		t.Fatalf("expected empty table, got %+v", overrides)
	}
}

func TestMergeOverrides(t *testing.T) {
	base := map[string][]string{"a": {"one"}}
	extra := map[string][]string{"a": {"two"}, "b": {"three"}}
	merged := MergeOverrides(base, extra)
	if !reflect.DeepEqual(merged["a"], []string{"one", "two"}) {
		t.Fatalf("expected accumulated aliases, got %+v", merged["a"])
	}
	if len(base["a"]) != 1 {
		t.Fatalf("merge mutated base: %+v", base)
	}
}
