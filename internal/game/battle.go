package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wildencounter/internal/combat"
	"github.com/samdwyer/wildencounter/internal/telemetry"
)

// Battle end reasons recorded on the battle.end span.
const (
	endVictory = "victory"
	endDefeat  = "defeat"
	endFled    = "fled"
)

// StartBattle spawns a wild Pokemon and enters battle mode.
// It does nothing if a battle is already on.
func (s *Session) StartBattle(ctx context.Context) {
	if s.mode == ModeBattle {
		return
	}

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.start")
	defer span.End()

	s.opponent = s.spawner.SpawnWild(ctx)
	s.battleID = uuid.NewString()
	s.turns = 0
	s.mode = ModeBattle

	span.SetAttributes(
		attribute.String("battle.id", s.battleID),
		attribute.String("opponent", s.opponent.Name),
		attribute.Int("opponent.level", s.opponent.Level),
		attribute.Int("player_x", s.player.X),
		attribute.Int("player_y", s.player.Y),
	)

	s.narrator.Narrate(fmt.Sprintf("Wild %s appeared!", s.opponent.Name))
}

// Fight uses the active Pokemon's first move for one exchange. If either
// side faints the session returns to the overworld.
func (s *Session) Fight(ctx context.Context) (combat.TurnOutcome, error) {
	if s.mode != ModeBattle {
		return combat.TurnOutcome{}, ErrNotInBattle
	}
	active := s.player.Active()
	if active == nil {
		return combat.TurnOutcome{}, ErrEmptyParty
	}
	move, ok := active.FirstMove()
	if !ok {
		return combat.TurnOutcome{}, fmt.Errorf("%s: %w", active.Name, combat.ErrEmptyMoveset)
	}

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.turn")
	defer span.End()

	out, err := s.resolver.ResolveTurn(active, s.opponent, move)
	s.turns++

	span.SetAttributes(
		attribute.String("battle.id", s.battleID),
		attribute.Int("turn", s.turns),
		attribute.String("actor", active.Name),
		attribute.String("move", move.Name),
		attribute.Int("damage", out.PlayerDamage),
		attribute.String("result", out.Result.String()),
	)
	if out.Countered {
		span.SetAttributes(
			attribute.String("counter.move", out.OpponentMove.Name),
			attribute.Int("counter.damage", out.OpponentDamage),
		)
	}

	for _, line := range out.Narration() {
		s.narrator.Narrate(line)
	}
	if err != nil {
		return out, err
	}

	if !out.BattleOver() {
		return out, nil
	}
	if out.Result == combat.OutcomeOpponentFainted {
		s.endBattle(ctx, endVictory)
	} else {
		s.endBattle(ctx, endDefeat)
	}
	return out, nil
}

// Run leaves the battle. There is no escape roll and no damage.
func (s *Session) Run(ctx context.Context) error {
	if s.mode != ModeBattle {
		return ErrNotInBattle
	}
	s.narrator.Narrate("Got away safely!")
	s.endBattle(ctx, endFled)
	return nil
}

// endBattle returns to the overworld and drops the opponent.
// Fainted party members stay in the party as they are.
func (s *Session) endBattle(ctx context.Context, outcome string) {
	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("battle.id", s.battleID),
		attribute.String("outcome", outcome),
		attribute.Int("turns_taken", s.turns),
	)
	if active := s.player.Active(); active != nil {
		span.SetAttributes(attribute.Int("active_hp_remaining", active.DisplayHP()))
	}
	span.End()

	s.mode = ModeOverworld
	s.opponent = nil
	s.battleID = ""
}
