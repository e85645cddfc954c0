// Package entity provides the creatures, moves and player that a session mutates.
package entity

// Move is a single attack a Pokemon can use in battle.
// Accuracy is carried for display and future hit rolls; nothing consults it yet.
type Move struct {
	Name     string
	Power    int
	Accuracy int
	Type     string
}

// Tackle returns the fixed move every spawned Pokemon knows.
func Tackle() Move {
	return Move{Name: "Tackle", Power: 40, Accuracy: 100, Type: "Normal"}
}
