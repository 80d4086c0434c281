// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Box is an axis-aligned bounding box described by its center and full extents.
// All simulation entities are centered on their position, so collision tests
// work on half extents.
type Box struct {
	X, Y float64 // Center
	W, H float64 // Full width and height
}

// SquareBox returns a box of the given size centered on (x, y).
func SquareBox(x, y, size float64) Box {
	return Box{X: x, Y: y, W: size, H: size}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.X - b.W/2
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W/2
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y - b.H/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H/2
}

// Overlaps reports whether two boxes intersect on both axes.
// Edges that touch exactly do not count as an overlap.
func (b Box) Overlaps(other Box) bool {
	return b.Left() < other.Right() &&
		b.Right() > other.Left() &&
		b.Top() < other.Bottom() &&
		b.Bottom() > other.Top()
}

// Viewport is the logical play area. Origin is the top-left corner.
type Viewport struct {
	W, H float64
}

// Rect represents an integer cell rectangle used by the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Projection maps logical viewport coordinates onto screen cells.
type Projection struct {
	ScaleX, ScaleY float64
	OffsetY        int // Rows reserved above the play field (HUD)
}

// NewProjection fits the viewport into a w×h cell area that starts offsetY
// rows below the top of the screen.
func NewProjection(vp Viewport, w, h, offsetY int) Projection {
	p := Projection{OffsetY: offsetY}
	if vp.W > 0 {
		p.ScaleX = float64(w) / vp.W
	}
	if vp.H > 0 {
		p.ScaleY = float64(h) / vp.H
	}
	return p
}

// Cell converts a logical point to a cell coordinate.
func (p Projection) Cell(x, y float64) (int, int) {
	return int(x * p.ScaleX), int(y*p.ScaleY) + p.OffsetY
}

// CellRect converts a logical box to the cells it covers. The result is at
// least one cell in each dimension so small entities stay visible.
func (p Projection) CellRect(b Box) Rect {
	x0, y0 := p.Cell(b.Left(), b.Top())
	x1, y1 := p.Cell(b.Right(), b.Bottom())
	w := Max(x1-x0, 1)
	h := Max(y1-y0, 1)
	return NewRect(x0, y0, w, h)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
