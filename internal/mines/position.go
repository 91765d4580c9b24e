package mines

import (
	"fmt"
	"iter"
)

type Position struct {
	X, Y int
}

// Position implements [fmt.Stringer]
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Neighbors yields every cell of the 8-connected neighborhood of pos that lies
// on a width by height grid. pos itself is never yielded. Corner cells have 3
// neighbors, edge cells 5, interior cells 8.
func Neighbors(pos Position, width, height int) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		fromX, toX := max(pos.X-1, 0), min(pos.X+1, width-1)
		fromY, toY := max(pos.Y-1, 0), min(pos.Y+1, height-1)
		for x := fromX; x <= toX; x++ {
			for y := fromY; y <= toY; y++ {
				if x == pos.X && y == pos.Y {
					continue
				}
				if !yield(Position{x, y}) {
					return
				}
			}
		}
	}
}

// row-major ordering, used to return stable slices from sets
func comparePositions(a, b Position) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
