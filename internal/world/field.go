package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wildencounter/internal/telemetry"
)

const (
	minPatchSize  = 2
	maxPatchSize  = 5
	patchAttempts = 40
	cellsPerPatch = 40 // Roughly one patch per this many cells
)

// Field is the overworld grid. It is decorative: the player may walk
// anywhere, including past its edges.
type Field struct {
	Width   int
	Height  int
	Tiles   [][]Tile
	Patches []Patch
	NPCs    []NPC
	rng     *rand.Rand
}

// NewField creates a field of bare ground.
func NewField(width, height int, rng *rand.Rand) *Field {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileGround
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Field{
		Width:   width,
		Height:  height,
		Tiles:   tiles,
		Patches: make([]Patch, 0),
		NPCs:    []NPC{ProfessorOak()},
		rng:     rng,
	}
}

// Generate scatters non-overlapping grass patches.
func (f *Field) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "field.generate")
	defer span.End()

	target := max(1, f.Width*f.Height/cellsPerPatch)
	for i := 0; i < patchAttempts && len(f.Patches) < target; i++ {
		w := minPatchSize + f.rng.Intn(maxPatchSize-minPatchSize+1)
		h := minPatchSize + f.rng.Intn(maxPatchSize-minPatchSize+1)
		if w >= f.Width || h >= f.Height {
			continue
		}
		p := Patch{
			X:      f.rng.Intn(f.Width - w + 1),
			Y:      f.rng.Intn(f.Height - h + 1),
			Width:  w,
			Height: h,
		}
		if f.overlaps(p) || f.coversNPC(p) {
			continue
		}
		f.Patches = append(f.Patches, p)
		f.carve(p)
	}

	span.SetAttributes(
		attribute.Int("field.width", f.Width),
		attribute.Int("field.height", f.Height),
		attribute.Int("field.patches", len(f.Patches)),
	)
}

// Center returns the middle cell, where the player starts.
func (f *Field) Center() (int, int) {
	return f.Width / 2, f.Height / 2
}

// InBounds reports whether the cell lies on the field.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// GetTile returns the tile at the given position, TileVoid off the field.
func (f *Field) GetTile(x, y int) Tile {
	if !f.InBounds(x, y) {
		return TileVoid
	}
	return f.Tiles[y][x]
}

// NPCAt returns the NPC standing on the cell, if any.
func (f *Field) NPCAt(x, y int) (NPC, bool) {
	for _, n := range f.NPCs {
		if n.X == x && n.Y == y {
			return n, true
		}
	}
	return NPC{}, false
}

func (f *Field) overlaps(p Patch) bool {
	for _, other := range f.Patches {
		if p.Intersects(other) {
			return true
		}
	}
	return false
}

func (f *Field) coversNPC(p Patch) bool {
	for _, n := range f.NPCs {
		if p.Contains(n.X, n.Y) {
			return true
		}
	}
	return false
}

func (f *Field) carve(p Patch) {
	for y := p.Y; y < p.Y+p.Height; y++ {
		for x := p.X; x < p.X+p.Width; x++ {
			if f.InBounds(x, y) {
				f.Tiles[y][x] = TileGrass
			}
		}
	}
}
