package world

// Patch is a rectangle of tall grass.
type Patch struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Center returns the center coordinates of the patch.
func (p Patch) Center() (int, int) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// Contains returns true if the given point is inside the patch.
func (p Patch) Contains(x, y int) bool {
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

// Intersects returns true if this patch overlaps another, including a one-cell margin.
func (p Patch) Intersects(other Patch) bool {
	return p.X-1 < other.X+other.Width &&
		p.X+p.Width+1 > other.X &&
		p.Y-1 < other.Y+other.Height &&
		p.Y+p.Height+1 > other.Y
}
