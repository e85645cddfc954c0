package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/wildencounter/internal/combat"
	"github.com/samdwyer/wildencounter/internal/config"
	"github.com/samdwyer/wildencounter/internal/encounter"
	"github.com/samdwyer/wildencounter/internal/entity"
	"github.com/samdwyer/wildencounter/internal/gamedata"
	"github.com/samdwyer/wildencounter/internal/narration"
)

// scriptedRand replays fixed draws. When a script runs out, Float64 returns
// 0.99 (no encounter) and Intn returns 0.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func testSpecies(t *testing.T) *gamedata.SpeciesCatalog {
	t.Helper()
	species, err := gamedata.NewSpeciesCatalog([]gamedata.SpeciesDef{
		{Name: "Charmander", Type: "Fire", BaseHP: 39, BaseAttack: 52, BaseDefense: 43},
		{Name: "Rattata", Type: "Normal", BaseHP: 20, BaseAttack: 56, BaseDefense: 35},
		{Name: "Onix", Type: "Rock", BaseHP: 500, BaseAttack: 1, BaseDefense: 500},
	})
	require.NoError(t, err)
	return species
}

type fixture struct {
	session  *Session
	rng      *scriptedRand
	recorder *narration.Recorder
}

func newFixture(t *testing.T, rate float64, requireMovement bool) *fixture {
	t.Helper()
	rng := &scriptedRand{}
	spawner, err := encounter.NewSpawner(testSpecies(t), nil, encounter.ExactStrategy{}, rng)
	require.NoError(t, err)

	rec := narration.NewRecorder()
	s, err := NewSession(SessionOptions{
		EncounterRate:             rate,
		EncounterRequiresMovement: requireMovement,
		PlayerSpeed:               1,
		StartX:                    10,
		StartY:                    9,
		StarterSpecies:            "Charmander",
		StarterLevel:              5,
		Spawner:                   spawner,
		Resolver:                  combat.NewResolver(combat.DefaultDamageRule(), rng),
		Rand:                      rng,
		Narrator:                  rec,
	})
	require.NoError(t, err)
	return &fixture{session: s, rng: rng, recorder: rec}
}

// enterBattle forces an encounter with the species at index idx at the given level.
func (f *fixture) enterBattle(t *testing.T, idx, level int) {
	t.Helper()
	f.rng.floats = append(f.rng.floats, 0.0)
	f.rng.ints = append(f.rng.ints, idx, level-encounter.MinWildLevel)
	require.NoError(t, f.session.Step(context.Background(), FrameInput{}))
	require.Equal(t, ModeBattle, f.session.Mode())
}

func assertModeInvariant(t *testing.T, s *Session) {
	t.Helper()
	if s.Mode() == ModeBattle {
		assert.NotNil(t, s.Opponent(), "battle without opponent")
		assert.NotEmpty(t, s.BattleID(), "battle without id")
	} else {
		assert.Nil(t, s.Opponent(), "overworld with opponent")
		assert.Empty(t, s.BattleID(), "overworld with battle id")
	}
}

func TestNewSession(t *testing.T) {
	f := newFixture(t, 0.1, false)
	s := f.session

	assert.Equal(t, ModeOverworld, s.Mode())
	assert.Nil(t, s.Opponent())
	assert.Equal(t, 0.1, s.EncounterRate())

	p := s.Player()
	assert.Equal(t, 10, p.X)
	assert.Equal(t, 9, p.Y)
	require.Len(t, p.Party, 1)

	starter := p.Active()
	assert.Equal(t, "Charmander", starter.Name)
	assert.Equal(t, 5, starter.Level)
	assert.Equal(t, 44, starter.MaxHP)
	assert.Equal(t, 57, starter.Attack)
	assert.Equal(t, 48, starter.Defense)
	assert.Equal(t, "Tackle", starter.Moves[0].Name)
}

func TestNewSessionErrors(t *testing.T) {
	rng := &scriptedRand{}
	spawner, err := encounter.NewSpawner(testSpecies(t), nil, nil, rng)
	require.NoError(t, err)
	resolver := combat.NewResolver(combat.DefaultDamageRule(), rng)

	valid := SessionOptions{
		EncounterRate:  0.1,
		StarterSpecies: "Charmander",
		StarterLevel:   5,
		Spawner:        spawner,
		Resolver:       resolver,
		Rand:           rng,
	}

	tests := []struct {
		name   string
		mutate func(*SessionOptions)
		is     error
	}{
		{"no spawner", func(o *SessionOptions) { o.Spawner = nil }, nil},
		{"no resolver", func(o *SessionOptions) { o.Resolver = nil }, nil},
		{"no rand", func(o *SessionOptions) { o.Rand = nil }, nil},
		{"negative rate", func(o *SessionOptions) { o.EncounterRate = -0.1 }, nil},
		{"rate above one", func(o *SessionOptions) { o.EncounterRate = 1.5 }, nil},
		{"unknown starter", func(o *SessionOptions) { o.StarterSpecies = "Mew" }, encounter.ErrUnknownSpecies},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			_, err := NewSession(opts)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestStepMovement(t *testing.T) {
	tests := []struct {
		name     string
		held     []entity.Direction
		dx, dy   int
		expected entity.Direction
	}{
		{"left", []entity.Direction{entity.DirLeft}, -1, 0, entity.DirLeft},
		{"down", []entity.Direction{entity.DirDown}, 0, 1, entity.DirDown},
		{"diagonal up-left", []entity.Direction{entity.DirLeft, entity.DirUp}, -1, -1, entity.DirUp},
		{"diagonal down-right", []entity.Direction{entity.DirDown, entity.DirRight}, 1, 1, entity.DirDown},
		{"opposites cancel", []entity.Direction{entity.DirLeft, entity.DirRight}, 0, 0, entity.DirRight},
		{"all four", []entity.Direction{entity.DirUp, entity.DirDown, entity.DirLeft, entity.DirRight}, 0, 0, entity.DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0, false)
			var in FrameInput
			for _, d := range tt.held {
				in.Held = in.Held.Add(d)
			}

			require.NoError(t, f.session.Step(context.Background(), in))

			p := f.session.Player()
			assert.Equal(t, 10+tt.dx, p.X)
			assert.Equal(t, 9+tt.dy, p.Y)
			assert.Equal(t, tt.expected, p.Facing)
			assert.Equal(t, ModeOverworld, f.session.Mode())
		})
	}
}

func TestStepNoInputKeepsPositionAndFacing(t *testing.T) {
	f := newFixture(t, 0, false)
	require.NoError(t, f.session.Step(context.Background(), FrameInput{}))

	p := f.session.Player()
	assert.Equal(t, 10, p.X)
	assert.Equal(t, 9, p.Y)
	assert.Equal(t, entity.DirDown, p.Facing)
}

func TestEncounterRoll(t *testing.T) {
	t.Run("roll below rate starts battle", func(t *testing.T) {
		f := newFixture(t, 0.1, false)
		f.rng.floats = []float64{0.05}

		require.NoError(t, f.session.Step(context.Background(), FrameInput{}))

		assert.Equal(t, ModeBattle, f.session.Mode())
		require.NotNil(t, f.session.Opponent())
		assert.Equal(t, []string{"Wild Charmander appeared!"}, f.recorder.Lines())
	})

	t.Run("roll at rate does not", func(t *testing.T) {
		f := newFixture(t, 0.1, false)
		f.rng.floats = []float64{0.1}

		require.NoError(t, f.session.Step(context.Background(), FrameInput{}))
		assert.Equal(t, ModeOverworld, f.session.Mode())
	})

	t.Run("zero rate never encounters", func(t *testing.T) {
		f := newFixture(t, 0, false)
		f.rng.floats = []float64{0, 0, 0}
		for i := 0; i < 3; i++ {
			require.NoError(t, f.session.Step(context.Background(), FrameInput{}))
		}
		assert.Equal(t, ModeOverworld, f.session.Mode())
	})

	t.Run("standing still rolls by default", func(t *testing.T) {
		f := newFixture(t, 1, false)
		require.NoError(t, f.session.Step(context.Background(), FrameInput{}))
		assert.Equal(t, ModeBattle, f.session.Mode())
	})

	t.Run("standing still skips roll when movement required", func(t *testing.T) {
		f := newFixture(t, 1, true)
		f.rng.floats = []float64{0}

		require.NoError(t, f.session.Step(context.Background(), FrameInput{}))
		assert.Equal(t, ModeOverworld, f.session.Mode())
		assert.Len(t, f.rng.floats, 1, "roll should not be drawn")

		in := FrameInput{Held: DirectionSet(0).Add(entity.DirUp)}
		require.NoError(t, f.session.Step(context.Background(), in))
		assert.Equal(t, ModeBattle, f.session.Mode())
	})
}

func TestSpawnedOpponentLevelRange(t *testing.T) {
	f := newFixture(t, 1, false)
	for _, level := range []int{2, 3, 4, 5} {
		f.enterBattle(t, 1, level)
		opp := f.session.Opponent()
		assert.Equal(t, "Rattata", opp.Name)
		assert.Equal(t, level, opp.Level)
		assert.Equal(t, 20+level, opp.HP)
		require.NoError(t, f.session.Run(context.Background()))
	}
}

func TestNoMovementDuringBattle(t *testing.T) {
	f := newFixture(t, 1, false)
	f.enterBattle(t, 2, 5)

	in := FrameInput{Held: DirectionSet(0).Add(entity.DirLeft)}
	require.NoError(t, f.session.Step(context.Background(), in))

	p := f.session.Player()
	assert.Equal(t, 10, p.X)
	assert.Equal(t, 9, p.Y)
	assert.Equal(t, ModeBattle, f.session.Mode())
}

func TestFightKnocksOutOpponent(t *testing.T) {
	f := newFixture(t, 0.5, false)
	// Rattata L5: HP 25, Attack 61, Defense 40.
	f.enterBattle(t, 1, 5)
	f.recorder.Reset()

	opp := f.session.Opponent()
	require.Equal(t, 40, opp.Defense)
	starter := f.session.Player().Active()

	in := FrameInput{Commands: []Command{CommandFight}}
	require.NoError(t, f.session.Step(context.Background(), in))

	// 40 * 57 / 40
	assert.Equal(t, 25-57, opp.HP)
	assert.True(t, opp.Fainted())
	assert.Equal(t, 44, starter.HP, "fainted opponent must not counter")

	assert.Equal(t, ModeOverworld, f.session.Mode())
	assertModeInvariant(t, f.session)
	assert.Equal(t, []string{
		"Charmander used Tackle! (57 DMG)",
		"Wild Rattata fainted!",
	}, f.recorder.Lines())
}

func TestFightExchange(t *testing.T) {
	f := newFixture(t, 0, false)
	f.rng.floats = []float64{0}
	f.rng.ints = []int{2, 3}
	f.session.StartBattle(context.Background())
	require.Equal(t, ModeBattle, f.session.Mode())

	// Onix L5: HP 505, Attack 6, Defense 505.
	opp := f.session.Opponent()
	starter := f.session.Player().Active()

	out, err := f.session.Fight(context.Background())
	require.NoError(t, err)

	assert.Equal(t, combat.OutcomeContinue, out.Result)
	// 40*57/505 floors to 4.
	assert.Equal(t, 4, out.PlayerDamage)
	assert.Equal(t, 505-4, opp.HP)
	require.True(t, out.Countered)
	assert.Equal(t, "Tackle", out.OpponentMove.Name)
	// 40*6/48 = 5
	assert.Equal(t, 5, out.OpponentDamage)
	assert.Equal(t, 44-5, starter.HP)

	assert.Equal(t, ModeBattle, f.session.Mode())
	assert.Equal(t, 1, f.session.Turns())
	assertModeInvariant(t, f.session)
}

func TestPlayerFaintEndsBattle(t *testing.T) {
	f := newFixture(t, 0, false)
	f.session.StartBattle(context.Background())

	opp := f.session.Opponent()
	opp.HP, opp.MaxHP = 1000, 1000
	opp.Attack = 500
	starter := f.session.Player().Active()

	out, err := f.session.Fight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, combat.OutcomePlayerFainted, out.Result)
	assert.True(t, starter.Fainted())

	assert.Equal(t, ModeOverworld, f.session.Mode())
	assertModeInvariant(t, f.session)
	// The fainted starter stays in the party.
	assert.Same(t, starter, f.session.Player().Active())

	lines := f.recorder.Lines()
	assert.Equal(t, "Charmander fainted!", lines[len(lines)-1])
}

func TestRun(t *testing.T) {
	f := newFixture(t, 1, false)
	f.enterBattle(t, 1, 3)
	f.recorder.Reset()

	starter := f.session.Player().Active()
	opp := f.session.Opponent()
	hp, oppHP := starter.HP, opp.HP

	require.NoError(t, f.session.Step(context.Background(), FrameInput{
		Commands: []Command{CommandRun},
		Held:     DirectionSet(0).Add(entity.DirRight),
	}))

	assert.Equal(t, hp, starter.HP)
	assert.Equal(t, oppHP, opp.HP)
	assertModeInvariant(t, f.session)
	assert.Equal(t, "Got away safely!", f.recorder.Lines()[0])

	// Commands run before movement, so the same frame walks and rolls again.
	assert.Equal(t, 11, f.session.Player().X)
	assert.Equal(t, ModeBattle, f.session.Mode())
}

func TestCommandsIgnoredInOverworld(t *testing.T) {
	f := newFixture(t, 0, false)
	in := FrameInput{Commands: []Command{CommandFight, CommandBag, CommandParty, CommandRun}}

	require.NoError(t, f.session.Step(context.Background(), in))
	assert.Equal(t, ModeOverworld, f.session.Mode())
	assert.Empty(t, f.recorder.Lines())
}

func TestBagAndPartyAreNoOps(t *testing.T) {
	f := newFixture(t, 1, false)
	f.enterBattle(t, 2, 5)
	id := f.session.BattleID()

	in := FrameInput{Commands: []Command{CommandBag, CommandParty}}
	require.NoError(t, f.session.Step(context.Background(), in))

	assert.Equal(t, ModeBattle, f.session.Mode())
	assert.Equal(t, id, f.session.BattleID())
	assert.Equal(t, 0, f.session.Turns())
}

func TestBattleCommandsOutsideBattle(t *testing.T) {
	f := newFixture(t, 0, false)

	_, err := f.session.Fight(context.Background())
	assert.True(t, errors.Is(err, ErrNotInBattle))
	assert.ErrorIs(t, f.session.Run(context.Background()), ErrNotInBattle)
}

func TestStartBattleWhileInBattle(t *testing.T) {
	f := newFixture(t, 1, false)
	f.enterBattle(t, 1, 5)
	opp, id := f.session.Opponent(), f.session.BattleID()

	f.session.StartBattle(context.Background())
	assert.Same(t, opp, f.session.Opponent())
	assert.Equal(t, id, f.session.BattleID())
}

func TestBattleIDsAreUnique(t *testing.T) {
	f := newFixture(t, 1, false)
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		f.enterBattle(t, 0, 2)
		id := f.session.BattleID()
		assert.False(t, seen[id], "duplicate battle id %s", id)
		seen[id] = true
		require.NoError(t, f.session.Run(context.Background()))
	}
}

func TestFightEmptyParty(t *testing.T) {
	f := newFixture(t, 0, false)
	f.session.StartBattle(context.Background())
	f.session.player.Party = nil

	_, err := f.session.Fight(context.Background())
	assert.ErrorIs(t, err, ErrEmptyParty)
}

func TestBattleOptions(t *testing.T) {
	f := newFixture(t, 0, false)
	assert.Equal(t, []string{"1: Fight", "2: Bag", "3: Pokémon", "4: Run"}, f.session.BattleOptions())
}

func TestModeInvariantUnderRandomPlay(t *testing.T) {
	cfg := config.Default()
	catalogs, err := gamedata.LoadCatalogs(gamedata.Embedded())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	s, err := NewSessionFromConfig(cfg, catalogs, rng, nil, 10, 9)
	require.NoError(t, err)

	dirs := []entity.Direction{entity.DirUp, entity.DirDown, entity.DirLeft, entity.DirRight}
	cmds := []Command{CommandFight, CommandBag, CommandParty, CommandRun}
	battles := 0
	for i := 0; i < 2000; i++ {
		var in FrameInput
		in.Held = in.Held.Add(dirs[rng.Intn(len(dirs))])
		if rng.Intn(3) == 0 {
			in.Commands = append(in.Commands, cmds[rng.Intn(len(cmds))])
		}
		wasBattle := s.Mode() == ModeBattle
		require.NoError(t, s.Step(context.Background(), in))
		if !wasBattle && s.Mode() == ModeBattle {
			battles++
		}
		assertModeInvariant(t, s)
	}
	assert.Positive(t, battles)
}

func TestNewSessionFromConfig(t *testing.T) {
	catalogs, err := gamedata.LoadCatalogs(gamedata.Embedded())
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		s, err := NewSessionFromConfig(config.Default(), catalogs, NewRand(1), nil, 3, 4)
		require.NoError(t, err)

		assert.Equal(t, 0.1, s.EncounterRate())
		starter := s.Player().Active()
		assert.Equal(t, "Charmander", starter.Name)
		assert.Equal(t, 57, starter.Attack)
		assert.Equal(t, 3, s.Player().X)
		assert.Equal(t, 4, s.Player().Y)
	})

	t.Run("exact strategy gives starter its own move", func(t *testing.T) {
		cfg := config.Default()
		cfg.SignatureStrategy = encounter.StrategyExact
		species, err := gamedata.NewSpeciesCatalog([]gamedata.SpeciesDef{
			{Name: "Ember", Type: "Fire", BaseHP: 10, BaseAttack: 10, BaseDefense: 10},
		})
		require.NoError(t, err)
		cfg.Starter.Species = "Ember"

		s, err := NewSessionFromConfig(cfg, &gamedata.Catalogs{Species: species, Moves: catalogs.Moves}, NewRand(1), nil, 0, 0)
		require.NoError(t, err)
		moves := s.Player().Active().Moves
		require.Len(t, moves, 2)
		assert.Equal(t, "Ember", moves[1].Name)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		cfg := config.Default()
		cfg.SignatureStrategy = "fuzzy"
		_, err := NewSessionFromConfig(cfg, catalogs, NewRand(1), nil, 0, 0)
		assert.ErrorIs(t, err, encounter.ErrUnknownStrategy)
	})
}
