// Package encounter builds wild Pokemon from the catalogs.
package encounter

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wildencounter/internal/entity"
	"github.com/samdwyer/wildencounter/internal/gamedata"
	"github.com/samdwyer/wildencounter/internal/telemetry"
)

// Wild level range, inclusive.
const (
	MinWildLevel = 2
	MaxWildLevel = 5
)

var (
	// ErrEmptyCatalog means there is no species to spawn.
	ErrEmptyCatalog = errors.New("species catalog is empty")
	// ErrUnknownSpecies means a requested species is not in the catalog.
	ErrUnknownSpecies = errors.New("unknown species")
)

// Rand is the subset of *rand.Rand the spawner draws from.
type Rand interface {
	Intn(n int) int
}

// Spawner creates Pokemon from the species and move catalogs.
type Spawner struct {
	species   *gamedata.SpeciesCatalog
	moves     *gamedata.MoveCatalog
	signature SignatureStrategy
	rng       Rand
}

// NewSpawner creates a spawner. A nil strategy means no signature moves.
func NewSpawner(species *gamedata.SpeciesCatalog, moves *gamedata.MoveCatalog, signature SignatureStrategy, rng Rand) (*Spawner, error) {
	if species == nil || species.Count() == 0 {
		return nil, fmt.Errorf("new spawner: %w", ErrEmptyCatalog)
	}
	if moves == nil {
		moves, _ = gamedata.NewMoveCatalog(nil)
	}
	return &Spawner{
		species:   species,
		moves:     moves,
		signature: signature,
		rng:       rng,
	}, nil
}

// SpawnWild rolls a species uniformly and a level in [MinWildLevel, MaxWildLevel].
func (s *Spawner) SpawnWild(ctx context.Context) *entity.Pokemon {
	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.spawn")
	defer span.End()

	def := s.species.At(s.rng.Intn(s.species.Count()))
	level := MinWildLevel + s.rng.Intn(MaxWildLevel-MinWildLevel+1)
	mon := s.build(def, level)

	span.SetAttributes(
		attribute.String("species", mon.Name),
		attribute.Int("level", mon.Level),
		attribute.Int("moves", len(mon.Moves)),
	)
	return mon
}

// Create builds a Pokemon of a named species at a fixed level.
func (s *Spawner) Create(species string, level int) (*entity.Pokemon, error) {
	def, ok := s.species.Get(species)
	if !ok {
		return nil, fmt.Errorf("create %q: %w", species, ErrUnknownSpecies)
	}
	if level < 1 {
		return nil, fmt.Errorf("create %q: level %d below 1", species, level)
	}
	return s.build(def, level), nil
}

// build applies linear per-level scaling and assembles the moveset.
func (s *Spawner) build(def *gamedata.SpeciesDef, level int) *entity.Pokemon {
	moves := []entity.Move{entity.Tackle()}
	if s.signature != nil {
		if sig, ok := s.signature.Signature(def.Name, s.moves); ok {
			moves = append(moves, sig)
		}
	}
	return entity.NewPokemon(
		def.Name,
		level,
		def.Type,
		def.BaseHP+level,
		def.BaseAttack+level,
		def.BaseDefense+level,
		moves,
	)
}
