package world

// NPC is a non-player character standing on the field.
type NPC struct {
	Name   string
	X, Y   int
	Symbol rune
	Dialog []string
}

// ProfessorOak returns the professor standing near the top-left corner.
func ProfessorOak() NPC {
	return NPC{
		Name:   "Professor Oak",
		X:      1,
		Y:      1,
		Symbol: '@',
		Dialog: []string{
			"Hello there! Welcome to the world of Pokémon!",
			"My name is Oak! People call me the Pokémon Professor!",
		},
	}
}
