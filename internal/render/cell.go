package render

import (
	"strconv"

	"github.com/derekjohnsonva/minesweeper/internal/mines"
)

type Kind int8

const (
	Covered Kind = iota
	Flagged
	Mine
	Empty
	Number
)

// Cell is what a player sees at one position. Count is set for Number only.
type Cell struct {
	Kind  Kind
	Count int
}

// Cell implements [fmt.Stringer]
func (c Cell) String() string {
	switch c.Kind {
	case Covered:
		return "covered"
	case Flagged:
		return "flagged"
	case Mine:
		return "mine"
	case Empty:
		return "empty"
	case Number:
		return strconv.Itoa(c.Count)
	default:
		return "!"
	}
}

// Board is the read-only view of [mines.Board] a renderer needs.
type Board interface {
	Width() int
	Height() int
	Lost() bool
	IsOpen(mines.Position) bool
	IsFlagged(mines.Position) bool
	IsMine(mines.Position) bool
	NeighboringMines(mines.Position) int
}

func Classify(b Board, pos mines.Position) Cell {
	if !b.IsOpen(pos) {
		switch {
		case b.Lost() && b.IsMine(pos):
			return Cell{Kind: Mine}
		case b.IsFlagged(pos):
			return Cell{Kind: Flagged}
		default:
			return Cell{Kind: Covered}
		}
	}
	if b.IsMine(pos) {
		return Cell{Kind: Mine}
	}
	if c := b.NeighboringMines(pos); c > 0 {
		return Cell{Kind: Number, Count: c}
	}
	return Cell{Kind: Empty}
}
