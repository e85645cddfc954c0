package entity

// Direction is the way the player is facing.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Symbol returns the glyph used to draw the player facing this way.
func (d Direction) Symbol() rune {
	switch d {
	case DirUp:
		return '^'
	case DirLeft:
		return '<'
	case DirRight:
		return '>'
	default:
		return 'v'
	}
}

// Default player values.
const (
	DefaultSpeed = 1
	DefaultMoney = 1000
)

// Player is the trainer walking the overworld.
type Player struct {
	X, Y   int
	Facing Direction
	Speed  int
	Party  []*Pokemon // Index 0 is the active battler
	Items  map[string]int
	Money  int
}

// NewPlayer creates a player at the given position with the starting bag.
func NewPlayer(x, y, speed int) *Player {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Player{
		X:      x,
		Y:      y,
		Facing: DirDown,
		Speed:  speed,
		Party:  []*Pokemon{},
		Items:  map[string]int{"Poke Ball": 5, "Potion": 3},
		Money:  DefaultMoney,
	}
}

// Move steps the player one speed unit in dir and turns to face it.
func (p *Player) Move(dir Direction) {
	dx, dy := dir.Delta()
	p.X += dx * p.Speed
	p.Y += dy * p.Speed
	p.Facing = dir
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// AddToParty appends a Pokemon to the end of the party.
func (p *Player) AddToParty(mon *Pokemon) {
	p.Party = append(p.Party, mon)
}

// Active returns the lead Pokemon, or nil if the party is empty.
func (p *Player) Active() *Pokemon {
	if len(p.Party) == 0 {
		return nil
	}
	return p.Party[0]
}
