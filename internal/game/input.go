package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wildencounter/internal/entity"
)

// Command is a discrete battle key press.
type Command int

const (
	CommandFight Command = iota + 1 // key 1: use move slot 0
	CommandBag                      // key 2: shown, not handled
	CommandParty                    // key 3: shown, not handled
	CommandRun                      // key 4: leave the battle
)

// String returns the label shown on the battle menu.
func (c Command) String() string {
	switch c {
	case CommandFight:
		return "Fight"
	case CommandBag:
		return "Bag"
	case CommandParty:
		return "Pokémon"
	case CommandRun:
		return "Run"
	default:
		return "unknown"
	}
}

// DirectionSet is the set of directions held during a frame.
type DirectionSet uint8

// Add marks dir as held.
func (s DirectionSet) Add(dir entity.Direction) DirectionSet {
	return s | 1<<uint(dir)
}

// Has reports whether dir is held.
func (s DirectionSet) Has(dir entity.Direction) bool {
	return s&(1<<uint(dir)) != 0
}

// Empty reports whether no direction is held.
func (s DirectionSet) Empty() bool {
	return s == 0
}

// walkOrder is the order held directions are applied in; the last one
// applied sets the facing.
var walkOrder = []entity.Direction{entity.DirLeft, entity.DirRight, entity.DirUp, entity.DirDown}

// FrameInput is everything the input driver saw during one frame.
type FrameInput struct {
	Held     DirectionSet
	Commands []Command
	Quit     bool
}

// AddKey folds a terminal key event into the frame.
func (in *FrameInput) AddKey(ev *tcell.EventKey) {
	in.addKey(ev.Key(), ev.Rune())
}

func (in *FrameInput) addKey(key tcell.Key, ch rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.Quit = true
	case tcell.KeyUp:
		in.Held = in.Held.Add(entity.DirUp)
	case tcell.KeyDown:
		in.Held = in.Held.Add(entity.DirDown)
	case tcell.KeyLeft:
		in.Held = in.Held.Add(entity.DirLeft)
	case tcell.KeyRight:
		in.Held = in.Held.Add(entity.DirRight)
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			in.Quit = true
		case '1':
			in.Commands = append(in.Commands, CommandFight)
		case '2':
			in.Commands = append(in.Commands, CommandBag)
		case '3':
			in.Commands = append(in.Commands, CommandParty)
		case '4':
			in.Commands = append(in.Commands, CommandRun)
		}
	}
}

// Reset clears the frame for reuse.
func (in *FrameInput) Reset() {
	in.Held = 0
	in.Commands = in.Commands[:0]
	in.Quit = false
}
