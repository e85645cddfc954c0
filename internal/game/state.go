// Package game drives a session: overworld walking, wild encounters and battles.
package game

// Mode is the top-level state of a session.
//
// A menu mode existed in early sketches but nothing ever entered it; it is
// left out until a menu screen exists to drive it.
type Mode int

const (
	// ModeOverworld is free walking with random encounters.
	ModeOverworld Mode = iota
	// ModeBattle is a fight against a single wild Pokemon.
	ModeBattle
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeOverworld:
		return "overworld"
	case ModeBattle:
		return "battle"
	default:
		return "unknown"
	}
}
