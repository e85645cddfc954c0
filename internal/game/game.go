package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wildencounter/internal/config"
	"github.com/samdwyer/wildencounter/internal/gamedata"
	"github.com/samdwyer/wildencounter/internal/narration"
	"github.com/samdwyer/wildencounter/internal/telemetry"
	"github.com/samdwyer/wildencounter/internal/ui"
	"github.com/samdwyer/wildencounter/internal/world"
)

const feedLines = 6

// Game runs a session in the terminal at a fixed frame rate.
type Game struct {
	cfg      *config.Config
	catalogs *gamedata.Catalogs
	screen   *ui.Screen
	renderer *ui.Renderer
	field    *world.Field
	session  *Session
	feed     *narration.Feed
	running  bool
}

// New creates a new game instance and takes over the terminal.
func New(cfg *config.Config, catalogs *gamedata.Catalogs) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		catalogs: catalogs,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		feed:     narration.NewFeed(feedLines),
		running:  true,
	}, nil
}

// Run executes the main game loop until quit or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.init(ctx); err != nil {
		return err
	}

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	frame := time.Second / time.Duration(g.cfg.FrameRate)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	var in FrameInput
	g.render()

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false

		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				in.AddKey(ev)
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case <-ticker.C:
			if in.Quit {
				g.running = false
				break
			}
			if err := g.session.Step(ctx, in); err != nil {
				// Broken invariants only; keep the loop alive and record it
				log.Printf("step: %v", err)
			}
			in.Reset()
			g.render()
		}
	}

	return nil
}

// init builds the field and session (traced).
func (g *Game) init(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	rng := NewRand(g.cfg.Seed)

	g.field = world.NewField(g.cfg.Field.Width, g.cfg.Field.Height, rng)
	g.field.Generate(ctx)

	startX, startY := g.field.Center()
	sink := narration.Multi{g.feed, narration.NewLogSink(nil)}

	session, err := NewSessionFromConfig(g.cfg, g.catalogs, rng, sink, startX, startY)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("init session: %w", err)
	}
	g.session = session

	starter := session.Player().Active()
	span.SetAttributes(
		attribute.String("starter", starter.Name),
		attribute.Int("starter.level", starter.Level),
		attribute.Float64("encounter_rate", session.EncounterRate()),
		attribute.String("signature_strategy", g.cfg.SignatureStrategy),
		attribute.Bool("clamp_min_damage", g.cfg.ClampDamage()),
		attribute.Int("player.start_x", startX),
		attribute.Int("player.start_y", startY),
	)
	log.Printf("session started: starter %s Lv%d at (%d,%d)", starter.Name, starter.Level, startX, startY)
	return nil
}

// pollEvents forwards terminal events until the screen is closed or the
// loop stops listening.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (g *Game) render() {
	switch g.session.Mode() {
	case ModeBattle:
		g.renderer.RenderBattle(g.session.Player(), g.session.Opponent(), g.session.BattleOptions(), g.feed.Lines())
	default:
		g.renderer.RenderOverworld(g.field, g.session.Player(), g.feed.Lines())
	}
}
