package gamedata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/samdwyer/wildencounter/internal/entity"
)

// MoveDef describes a move loaded from JSON.
type MoveDef struct {
	Name     string `json:"name"`
	Power    int    `json:"power"`
	Accuracy int    `json:"accuracy"`
	Type     string `json:"type"`
}

// ToMove converts the definition into a battle move.
func (d MoveDef) ToMove() entity.Move {
	return entity.Move{Name: d.Name, Power: d.Power, Accuracy: d.Accuracy, Type: d.Type}
}

// MovesFileData represents the structure of moves.json.
type MovesFileData struct {
	Moves []MoveDef `json:"moves"`
}

// MoveCatalog is an ordered, read-only move lookup.
// Order matters: prefix lookups return the first match.
type MoveCatalog struct {
	defs   []MoveDef
	byName map[string]int
}

// NewMoveCatalog builds a catalog, keeping the given order.
func NewMoveCatalog(defs []MoveDef) (*MoveCatalog, error) {
	c := &MoveCatalog{
		defs:   make([]MoveDef, 0, len(defs)),
		byName: make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if d.Name == "" {
			return nil, errors.New("move entry with empty name")
		}
		if d.Power < 0 {
			return nil, fmt.Errorf("move %s: negative power %d", d.Name, d.Power)
		}
		if d.Accuracy < 0 || d.Accuracy > 100 {
			return nil, fmt.Errorf("move %s: accuracy %d out of range 0-100", d.Name, d.Accuracy)
		}
		if _, ok := c.byName[d.Name]; ok {
			return nil, fmt.Errorf("move %s: %w", d.Name, ErrDuplicateName)
		}
		c.byName[d.Name] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	return c, nil
}

// LoadMoveCatalog loads moves.json from fsys.
func LoadMoveCatalog(fsys fs.FS) (*MoveCatalog, error) {
	file, err := Load[MovesFileData](fsys, MovesFile)
	if err != nil {
		return nil, err
	}
	return NewMoveCatalog(file.Moves)
}

// Get returns the move with the given name.
func (c *MoveCatalog) Get(name string) (*MoveDef, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return &c.defs[i], true
}

// All returns every move in catalog order.
func (c *MoveCatalog) All() []MoveDef {
	return c.defs
}

// Count returns the number of moves.
func (c *MoveCatalog) Count() int {
	return len(c.defs)
}
