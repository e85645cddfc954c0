package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Catalog file names, looked up at the root of the catalog filesystem.
const (
	SpeciesFile = "species.json"
	MovesFile   = "moves.json"
)

// Load reads and unmarshals a JSON file from fsys.
func Load[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read catalog file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// Catalogs bundles the two read-only lookup tables.
type Catalogs struct {
	Species *SpeciesCatalog
	Moves   *MoveCatalog
}

// LoadCatalogs loads both catalogs from fsys.
func LoadCatalogs(fsys fs.FS) (*Catalogs, error) {
	species, err := LoadSpeciesCatalog(fsys)
	if err != nil {
		return nil, err
	}
	moves, err := LoadMoveCatalog(fsys)
	if err != nil {
		return nil, err
	}
	return &Catalogs{Species: species, Moves: moves}, nil
}

// LoadCatalogsFrom loads catalogs from dir, or the embedded ones if dir is empty.
func LoadCatalogsFrom(dir string) (*Catalogs, error) {
	if dir == "" {
		return LoadCatalogs(Embedded())
	}
	c, err := LoadCatalogs(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("catalogs in %s: %w", dir, err)
	}
	return c, nil
}
