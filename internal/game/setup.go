package game

import (
	"math/rand"
	"time"

	"github.com/samdwyer/wildencounter/internal/combat"
	"github.com/samdwyer/wildencounter/internal/config"
	"github.com/samdwyer/wildencounter/internal/encounter"
	"github.com/samdwyer/wildencounter/internal/gamedata"
	"github.com/samdwyer/wildencounter/internal/narration"
)

// NewRand returns the shared random source. A zero seed uses the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewSessionFromConfig wires the spawner and resolver from configuration and
// starts a session at (startX, startY). Every random draw comes from rng.
func NewSessionFromConfig(cfg *config.Config, catalogs *gamedata.Catalogs, rng *rand.Rand, sink narration.Sink, startX, startY int) (*Session, error) {
	strategy, err := encounter.StrategyByName(cfg.SignatureStrategy)
	if err != nil {
		return nil, err
	}

	spawner, err := encounter.NewSpawner(catalogs.Species, catalogs.Moves, strategy, rng)
	if err != nil {
		return nil, err
	}

	resolver := combat.NewResolver(combat.DamageRule{ClampMinimum: cfg.ClampDamage()}, rng)

	return NewSession(SessionOptions{
		EncounterRate:             cfg.Encounter(),
		EncounterRequiresMovement: cfg.EncounterRequiresMovement,
		PlayerSpeed:               cfg.PlayerSpeed,
		StartX:                    startX,
		StartY:                    startY,
		StarterSpecies:            cfg.Starter.Species,
		StarterLevel:              cfg.Starter.Level,
		Spawner:                   spawner,
		Resolver:                  resolver,
		Rand:                      rng,
		Narrator:                  sink,
	})
}
