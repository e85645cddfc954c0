// Package combat resolves one exchange of a wild battle.
package combat

import (
	"errors"
	"fmt"

	"github.com/samdwyer/wildencounter/internal/entity"
)

// ErrEmptyMoveset means the opponent has nothing to counter with.
// The spawner always adds Tackle, so this indicates a broken caller.
var ErrEmptyMoveset = errors.New("opponent has no moves")

// Rand is the subset of *rand.Rand used to pick the opponent's move.
type Rand interface {
	Intn(n int) int
}

// DamageRule controls the damage formula.
type DamageRule struct {
	// ClampMinimum floors every hit at 1 damage.
	ClampMinimum bool
}

// DefaultDamageRule floors damage at 1.
func DefaultDamageRule() DamageRule {
	return DamageRule{ClampMinimum: true}
}

// Damage computes power*attack/defense with integer division.
// Defense at or below zero is treated as 1.
func (r DamageRule) Damage(power, attack, defense int) int {
	if defense <= 0 {
		defense = 1
	}
	damage := power * attack / defense
	if r.ClampMinimum && damage < 1 {
		damage = 1
	}
	return damage
}

// Result is the end state of one exchange.
type Result int

const (
	// OutcomeContinue - both sides still standing
	OutcomeContinue Result = iota
	// OutcomeOpponentFainted - the wild Pokemon fainted before it could counter
	OutcomeOpponentFainted
	// OutcomePlayerFainted - the player's active Pokemon fainted to the counter
	OutcomePlayerFainted
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case OutcomeContinue:
		return "continue"
	case OutcomeOpponentFainted:
		return "opponent_fainted"
	case OutcomePlayerFainted:
		return "player_fainted"
	default:
		return "unknown"
	}
}

// TurnOutcome records everything that happened in one exchange.
type TurnOutcome struct {
	Result Result

	Attacker     string
	Defender     string
	PlayerMove   entity.Move
	PlayerDamage int

	// Zero values unless the opponent countered
	Countered      bool
	OpponentMove   entity.Move
	OpponentDamage int
}

// BattleOver reports whether either side fainted.
func (o TurnOutcome) BattleOver() bool {
	return o.Result != OutcomeContinue
}

// Narration returns the lines announcing the exchange, in order.
func (o TurnOutcome) Narration() []string {
	lines := []string{
		fmt.Sprintf("%s used %s! (%d DMG)", o.Attacker, o.PlayerMove.Name, o.PlayerDamage),
	}
	if o.Result == OutcomeOpponentFainted {
		return append(lines, fmt.Sprintf("Wild %s fainted!", o.Defender))
	}
	if o.Countered {
		lines = append(lines, fmt.Sprintf("Wild %s used %s! (%d DMG)", o.Defender, o.OpponentMove.Name, o.OpponentDamage))
	}
	if o.Result == OutcomePlayerFainted {
		lines = append(lines, fmt.Sprintf("%s fainted!", o.Attacker))
	}
	return lines
}

// Resolver runs battle exchanges.
type Resolver struct {
	rule DamageRule
	rng  Rand
}

// NewResolver creates a resolver with the given damage rule and move picker.
func NewResolver(rule DamageRule, rng Rand) *Resolver {
	return &Resolver{rule: rule, rng: rng}
}

// Rule returns the damage rule in effect.
func (r *Resolver) Rule() DamageRule {
	return r.rule
}

// ResolveTurn applies the player's move to the opponent, then, unless the
// opponent fainted, a uniformly chosen counter-move to the player's Pokemon.
// Moves always hit and no type multiplier applies.
func (r *Resolver) ResolveTurn(player, opponent *entity.Pokemon, move entity.Move) (TurnOutcome, error) {
	out := TurnOutcome{
		Attacker:   player.Name,
		Defender:   opponent.Name,
		PlayerMove: move,
	}

	out.PlayerDamage = opponent.TakeDamage(r.rule.Damage(move.Power, player.Attack, opponent.Defense))
	if opponent.Fainted() {
		out.Result = OutcomeOpponentFainted
		return out, nil
	}

	if len(opponent.Moves) == 0 {
		return out, fmt.Errorf("counter by %s: %w", opponent.Name, ErrEmptyMoveset)
	}
	counter := opponent.Moves[r.rng.Intn(len(opponent.Moves))]

	out.Countered = true
	out.OpponentMove = counter
	out.OpponentDamage = player.TakeDamage(r.rule.Damage(counter.Power, opponent.Attack, player.Defense))
	if player.Fainted() {
		out.Result = OutcomePlayerFainted
		return out, nil
	}

	out.Result = OutcomeContinue
	return out, nil
}
