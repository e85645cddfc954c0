package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/samdwyer/wildencounter/internal/combat"
	"github.com/samdwyer/wildencounter/internal/encounter"
	"github.com/samdwyer/wildencounter/internal/entity"
	"github.com/samdwyer/wildencounter/internal/narration"
)

var (
	// ErrNotInBattle is returned by battle commands issued in the overworld.
	ErrNotInBattle = errors.New("not in battle")
	// ErrEmptyParty means the player has no Pokemon to send out.
	ErrEmptyParty = errors.New("party is empty")
)

// Rand is the subset of *rand.Rand used for the encounter roll.
type Rand interface {
	Float64() float64
}

// SessionOptions configures a new session.
type SessionOptions struct {
	EncounterRate             float64
	EncounterRequiresMovement bool

	PlayerSpeed    int
	StartX, StartY int

	StarterSpecies string
	StarterLevel   int

	Spawner  *encounter.Spawner
	Resolver *combat.Resolver
	Rand     Rand
	Narrator narration.Sink // nil discards narration
}

// Session is the whole mutable state of one play-through: the player, the
// current mode and the wild opponent while a battle is on.
type Session struct {
	player   *entity.Player
	mode     Mode
	opponent *entity.Pokemon
	battleID string
	turns    int

	encounterRate             float64
	encounterRequiresMovement bool

	spawner  *encounter.Spawner
	resolver *combat.Resolver
	rng      Rand
	narrator narration.Sink
}

// NewSession creates a session in the overworld with the starter in slot 0.
func NewSession(opts SessionOptions) (*Session, error) {
	if opts.Spawner == nil {
		return nil, errors.New("new session: spawner is required")
	}
	if opts.Resolver == nil {
		return nil, errors.New("new session: resolver is required")
	}
	if opts.Rand == nil {
		return nil, errors.New("new session: random source is required")
	}
	if opts.EncounterRate < 0 || opts.EncounterRate > 1 {
		return nil, fmt.Errorf("new session: encounter rate %v outside [0,1]", opts.EncounterRate)
	}

	starter, err := opts.Spawner.Create(opts.StarterSpecies, opts.StarterLevel)
	if err != nil {
		return nil, fmt.Errorf("new session: starter: %w", err)
	}

	player := entity.NewPlayer(opts.StartX, opts.StartY, opts.PlayerSpeed)
	player.AddToParty(starter)

	narrator := opts.Narrator
	if narrator == nil {
		narrator = narration.Discard
	}

	return &Session{
		player:                    player,
		mode:                      ModeOverworld,
		encounterRate:             opts.EncounterRate,
		encounterRequiresMovement: opts.EncounterRequiresMovement,
		spawner:                   opts.Spawner,
		resolver:                  opts.Resolver,
		rng:                       opts.Rand,
		narrator:                  narrator,
	}, nil
}

// Step advances the session by one frame. Battle commands are handled first,
// in order; then, if the session is in the overworld, held directions move
// the player and the encounter roll runs.
func (s *Session) Step(ctx context.Context, in FrameInput) error {
	for _, cmd := range in.Commands {
		if s.mode != ModeBattle {
			continue
		}
		switch cmd {
		case CommandFight:
			if _, err := s.Fight(ctx); err != nil {
				return err
			}
		case CommandRun:
			if err := s.Run(ctx); err != nil {
				return err
			}
		}
	}

	if s.mode != ModeOverworld {
		return nil
	}

	moved := s.walk(in.Held)
	if s.encounterRequiresMovement && !moved {
		return nil
	}
	if s.rng.Float64() < s.encounterRate {
		s.StartBattle(ctx)
	}
	return nil
}

// walk applies every held direction and reports whether any was held.
func (s *Session) walk(held DirectionSet) bool {
	moved := false
	for _, dir := range walkOrder {
		if held.Has(dir) {
			s.player.Move(dir)
			moved = true
		}
	}
	return moved
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Player returns the player. Callers outside the session should treat it as read-only.
func (s *Session) Player() *entity.Player { return s.player }

// Opponent returns the wild Pokemon, or nil outside a battle.
func (s *Session) Opponent() *entity.Pokemon { return s.opponent }

// BattleID identifies the current battle, empty outside a battle.
func (s *Session) BattleID() string { return s.battleID }

// Turns returns the number of exchanges in the current battle.
func (s *Session) Turns() int { return s.turns }

// EncounterRate returns the per-frame encounter probability.
func (s *Session) EncounterRate() float64 { return s.encounterRate }

// BattleOptions returns the battle menu labels.
func (s *Session) BattleOptions() []string {
	cmds := []Command{CommandFight, CommandBag, CommandParty, CommandRun}
	opts := make([]string, len(cmds))
	for i, c := range cmds {
		opts[i] = fmt.Sprintf("%d: %s", int(c), c)
	}
	return opts
}
