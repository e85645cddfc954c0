package entity

// Pokemon is a single creature, wild or in the player's party.
type Pokemon struct {
	Name    string
	Level   int
	Type    string
	MaxHP   int
	HP      int // May drop below zero on the hit that causes a faint
	Attack  int
	Defense int
	Moves   []Move
}

// NewPokemon creates a Pokemon at full health.
func NewPokemon(name string, level int, typ string, maxHP, attack, defense int, moves []Move) *Pokemon {
	ms := make([]Move, len(moves))
	copy(ms, moves)
	return &Pokemon{
		Name:    name,
		Level:   level,
		Type:    typ,
		MaxHP:   maxHP,
		HP:      maxHP,
		Attack:  attack,
		Defense: defense,
		Moves:   ms,
	}
}

// TakeDamage subtracts the full amount from HP and returns it.
// HP is not clamped; callers check Fainted afterwards.
func (p *Pokemon) TakeDamage(amount int) int {
	p.HP -= amount
	return amount
}

// Fainted reports whether HP has reached zero or below.
func (p *Pokemon) Fainted() bool { return p.HP <= 0 }

// DisplayHP returns HP clamped at zero for presentation.
func (p *Pokemon) DisplayHP() int {
	if p.HP < 0 {
		return 0
	}
	return p.HP
}

// FirstMove returns the move in slot 0, or false if the moveset is empty.
func (p *Pokemon) FirstMove() (Move, bool) {
	if len(p.Moves) == 0 {
		return Move{}, false
	}
	return p.Moves[0], true
}
