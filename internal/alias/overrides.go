package alias

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// defaultOverrides carries the curated nicknames regulars actually use,
// keyed by catalog slug. The acronym rule cannot derive these.
var defaultOverrides = map[string][]string{
	"sunshine-studios-live": {"ssl", "sslive"},
	"mercury-cafe":          {"merc", "the merc"},
	"lost-lake-lounge":      {"lost lake"},
	"skylark-lounge":        {"the lark"},
}

// DefaultOverrides returns a copy of the compiled-in override table.
func DefaultOverrides() map[string][]string {
	out := make(map[string][]string, len(defaultOverrides))
	for slug, aliases := range defaultOverrides {
		out[slug] = append([]string(nil), aliases...)
	}
	return out
}

// overridesFile is the on-disk override format: an [aliases] table mapping
// slug -> nickname list.
type overridesFile struct {
	Aliases map[string][]string `toml:"aliases"`
}

// LoadOverrides reads extra overrides from a TOML file. A missing file is
// not an error; it yields an empty table.
func LoadOverrides(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string][]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read alias overrides %s: %w", path, err)
	}
	var file overridesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse alias overrides %s: %w", path, err)
	}
	if file.Aliases == nil {
		return map[string][]string{}, nil
	}
	return file.Aliases, nil
}

// MergeOverrides layers extra overrides on top of base without mutating
// either input. Nicknames for the same slug accumulate.
func MergeOverrides(base, extra map[string][]string) map[string][]string {
	out := make(map[string][]string, len(base)+len(extra))
	for slug, aliases := range base {
		out[slug] = append([]string(nil), aliases...)
	}
	for slug, aliases := range extra {
		out[slug] = append(out[slug], aliases...)
	}
	return out
}
