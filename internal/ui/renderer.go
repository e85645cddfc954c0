package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wildencounter/internal/entity"
	"github.com/samdwyer/wildencounter/internal/gamedata"
	"github.com/samdwyer/wildencounter/internal/world"
)

const hpBarWidth = 20

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderOverworld draws the field, NPCs, the player and recent narration.
// Standing on an NPC shows its dialog in place of the narration.
func (r *Renderer) RenderOverworld(field *world.Field, player *entity.Player, feed []string) {
	r.screen.Clear()

	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			tile := field.GetTile(x, y)
			r.screen.SetContent(x, y, tile.Rune(), tileStyle(tile))
		}
	}

	npcStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, n := range field.NPCs {
		r.screen.SetContent(n.X, n.Y, n.Symbol, npcStyle)
	}

	// The player may wander off the field; only draw while visible
	if field.InBounds(player.X, player.Y) {
		playerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		r.screen.SetContent(player.X, player.Y, player.Facing.Symbol(), playerStyle)
	}

	row := field.Height + 1
	r.drawText(0, row, StatusLine(player), tcell.StyleDefault.Foreground(tcell.ColorGray))
	if npc, ok := field.NPCAt(player.X, player.Y); ok {
		r.drawFeed(row+2, npc.Dialog)
	} else {
		r.drawFeed(row+2, feed)
	}

	r.screen.Show()
}

// RenderBattle draws both combatants, the battle menu and recent narration.
func (r *Renderer) RenderBattle(player *entity.Player, opponent *entity.Pokemon, options []string, feed []string) {
	r.screen.Clear()

	if opponent != nil {
		r.drawText(0, 0, fmt.Sprintf("Wild %s Lv%d", opponent.Name, opponent.Level), tcell.StyleDefault.Bold(true))
		r.drawText(0, 1, HPLine(opponent), tcell.StyleDefault)
		r.drawSprite(30, 0, opponent)
	}

	if active := player.Active(); active != nil {
		r.drawSprite(2, 4, active)
		r.drawText(10, 5, fmt.Sprintf("%s Lv%d", active.Name, active.Level), tcell.StyleDefault.Bold(true))
		r.drawText(10, 6, HPLine(active), tcell.StyleDefault)
	}

	r.drawText(0, 9, strings.Join(options, "  "), tcell.StyleDefault.Foreground(tcell.ColorAqua))
	r.drawFeed(11, feed)

	r.screen.Show()
}

// drawSprite stands in for a sprite: a 3x3 block in the Pokemon's type color.
func (r *Renderer) drawSprite(x, y int, mon *entity.Pokemon) {
	style := tcell.StyleDefault.Foreground(gamedata.TypeColor(mon.Type))
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			r.screen.SetContent(x+dx, y+dy, '█', style)
		}
	}
}

func (r *Renderer) drawFeed(row int, feed []string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range feed {
		r.drawText(0, row+i, line, style)
	}
}

// drawText writes a single line starting at (x, y).
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileGrass:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.TileGround:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	default:
		return tcell.StyleDefault
	}
}

// HPLine formats "HP [#####-----] cur/max".
func HPLine(mon *entity.Pokemon) string {
	return fmt.Sprintf("HP %s %d/%d", HPBar(mon.DisplayHP(), mon.MaxHP, hpBarWidth), mon.DisplayHP(), mon.MaxHP)
}

// HPBar renders a fixed-width health bar. Any HP above zero shows at least one mark.
func HPBar(cur, maxHP, width int) string {
	if width <= 0 {
		return "[]"
	}
	filled := 0
	if maxHP > 0 && cur > 0 {
		filled = cur * width / maxHP
		if filled == 0 {
			filled = 1
		}
		if filled > width {
			filled = width
		}
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// StatusLine summarises position, facing, money and bag.
func StatusLine(p *entity.Player) string {
	names := make([]string, 0, len(p.Items))
	for name := range p.Items {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]string, len(names))
	for i, name := range names {
		items[i] = fmt.Sprintf("%s x%d", name, p.Items[name])
	}
	return fmt.Sprintf("(%d,%d) facing %s  $%d  %s", p.X, p.Y, p.Facing, p.Money, strings.Join(items, ", "))
}
