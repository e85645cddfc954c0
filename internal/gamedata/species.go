package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrDuplicateName is returned when a catalog lists the same name twice.
var ErrDuplicateName = errors.New("duplicate catalog name")

// SpeciesDef holds the base stats of one species.
type SpeciesDef struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	BaseHP      int    `json:"baseHp"`
	BaseAttack  int    `json:"baseAttack"`
	BaseDefense int    `json:"baseDefense"`
}

// SpeciesFileData represents the structure of species.json.
type SpeciesFileData struct {
	Species []SpeciesDef `json:"species"`
}

// SpeciesCatalog is an ordered, read-only species lookup.
type SpeciesCatalog struct {
	defs   []SpeciesDef
	byName map[string]int
}

// NewSpeciesCatalog builds a catalog, keeping the given order.
func NewSpeciesCatalog(defs []SpeciesDef) (*SpeciesCatalog, error) {
	c := &SpeciesCatalog{
		defs:   make([]SpeciesDef, 0, len(defs)),
		byName: make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if d.Name == "" {
			return nil, errors.New("species entry with empty name")
		}
		if d.BaseHP < 0 {
			return nil, fmt.Errorf("species %s: negative base hp %d", d.Name, d.BaseHP)
		}
		if _, ok := c.byName[d.Name]; ok {
			return nil, fmt.Errorf("species %s: %w", d.Name, ErrDuplicateName)
		}
		c.byName[d.Name] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	return c, nil
}

// LoadSpeciesCatalog loads species.json from fsys.
func LoadSpeciesCatalog(fsys fs.FS) (*SpeciesCatalog, error) {
	file, err := Load[SpeciesFileData](fsys, SpeciesFile)
	if err != nil {
		return nil, err
	}
	return NewSpeciesCatalog(file.Species)
}

// Get returns the species with the given name.
func (c *SpeciesCatalog) Get(name string) (*SpeciesDef, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return &c.defs[i], true
}

// At returns the species at position i in catalog order.
func (c *SpeciesCatalog) At(i int) *SpeciesDef {
	return &c.defs[i]
}

// All returns every species in catalog order.
func (c *SpeciesCatalog) All() []SpeciesDef {
	return c.defs
}

// Count returns the number of species.
func (c *SpeciesCatalog) Count() int {
	return len(c.defs)
}
