// Package world provides the overworld field the player walks on.
package world

// Tile represents a single field cell.
type Tile rune

const (
	// TileGround is bare path.
	TileGround Tile = '.'
	// TileGrass is tall grass.
	TileGrass Tile = '"'
	// TileVoid is returned for cells outside the field.
	TileVoid Tile = ' '
)

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
