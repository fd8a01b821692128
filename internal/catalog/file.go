package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// File is the on-disk catalog format read by the CLI: a list of [[venue]]
// tables.
type File struct {
	Venues []Entry `toml:"venue"`
}

// Load reads a catalog file and returns its entries de-duplicated by id.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return DedupeByID(file.Venues), nil
}

// Append adds an entry to a catalog file, creating the file when missing.
func Append(path string, entry Entry) error {
	var file File
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse catalog %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// new catalog file
	default:
		return fmt.Errorf("read catalog %s: %w", path, err)
	}

	file.Venues = DedupeByID(append(file.Venues, entry))
	out, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	return nil
}
