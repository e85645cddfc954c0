package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/wildencounter/internal/entity"
)

func TestFrameInputKeys(t *testing.T) {
	var in FrameInput
	in.addKey(tcell.KeyLeft, 0)
	in.addKey(tcell.KeyUp, 0)
	in.addKey(tcell.KeyLeft, 0)
	in.addKey(tcell.KeyRune, '1')
	in.addKey(tcell.KeyRune, '3')
	in.addKey(tcell.KeyRune, '4')
	in.addKey(tcell.KeyRune, 'x')

	assert.True(t, in.Held.Has(entity.DirLeft))
	assert.True(t, in.Held.Has(entity.DirUp))
	assert.False(t, in.Held.Has(entity.DirRight))
	assert.False(t, in.Held.Has(entity.DirDown))
	assert.Equal(t, []Command{CommandFight, CommandParty, CommandRun}, in.Commands)
	assert.False(t, in.Quit)

	in.Reset()
	assert.True(t, in.Held.Empty())
	assert.Empty(t, in.Commands)
}

func TestFrameInputQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
	}{
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
		{"q", tcell.KeyRune, 'q'},
		{"Q", tcell.KeyRune, 'Q'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in FrameInput
			in.addKey(tt.key, tt.ch)
			assert.True(t, in.Quit)
		})
	}
}

func TestDirectionSet(t *testing.T) {
	var s DirectionSet
	assert.True(t, s.Empty())

	s = s.Add(entity.DirDown).Add(entity.DirRight)
	assert.False(t, s.Empty())
	assert.True(t, s.Has(entity.DirDown))
	assert.True(t, s.Has(entity.DirRight))
	assert.False(t, s.Has(entity.DirUp))

	// Adding twice is idempotent
	assert.Equal(t, s, s.Add(entity.DirDown))
}
