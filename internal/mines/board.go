package mines

import (
	"fmt"
	"iter"
	"slices"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

var Log = logrus.New()

type Outcome int8

const (
	Nothing Outcome = iota
	Mine
	NoMine
)

// Outcome implements [fmt.Stringer]
func (o Outcome) String() string {
	switch o {
	case Nothing:
		return "nothing"
	case Mine:
		return "mine"
	case NoMine:
		return "no mine"
	default:
		return fmt.Sprintf("Outcome(%d)", int8(o))
	}
}

// OpenResult is what a top-level [Board.Open] call reports. MineCount is only
// meaningful for NoMine and is always 0; callers that need the number for a
// cell use [Board.NeighboringMines].
type OpenResult struct {
	Outcome   Outcome
	MineCount int
}

// Board holds the whole game state. It performs no synchronization: hosts
// that share a Board between goroutines must serialize Open and ToggleFlag.
type Board struct {
	width, height int
	mines         mapset.Set[Position]
	open          mapset.Set[Position]
	flagged       mapset.Set[Position]
	lost          bool
}

// New scatters mineCount mines over a width by height grid using src.
// Duplicate draws are retried, so mineCount must be less than width*height;
// use [GameParams.Validate] or [NewFromParams] when the input is untrusted.
func New(width, height, mineCount int, src RandomSource) *Board {
	b := newEmpty(width, height)
	for b.mines.Size() < mineCount {
		b.mines.Put(Position{src.Range(0, width), src.Range(0, height)})
	}
	return b
}

func NewFromParams(params GameParams, src RandomSource) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	w, h, mc := params.Unpack()
	return New(w, h, mc, src), nil
}

// NewWithMines builds a board with a fixed mine layout. Positions outside the
// grid are dropped.
func NewWithMines(width, height int, mines ...Position) *Board {
	b := newEmpty(width, height)
	for _, m := range mines {
		if b.InBounds(m) {
			b.mines.Put(m)
		}
	}
	return b
}

func newEmpty(width, height int) *Board {
	return &Board{
		width:   width,
		height:  height,
		mines:   mapset.New[Position](),
		open:    mapset.New[Position](),
		flagged: mapset.New[Position](),
	}
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MineCount() int { return b.mines.Size() }
func (b *Board) Lost() bool     { return b.lost }
func (b *Board) OpenCount() int { return b.open.Size() }
func (b *Board) FlagCount() int { return b.flagged.Size() }

func (b *Board) Params() GameParams {
	return GameParams{Width: b.width, Height: b.height, MineCount: b.mines.Size()}
}

func (b *Board) IsOpen(pos Position) bool    { return b.open.Has(pos) }
func (b *Board) IsFlagged(pos Position) bool { return b.flagged.Has(pos) }
func (b *Board) IsMine(pos Position) bool    { return b.mines.Has(pos) }

func (b *Board) InBounds(pos Position) bool {
	return b.Params().PointInBounds(pos.X, pos.Y)
}

func (b *Board) Check(pos Position) error {
	if !b.InBounds(pos) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, pos, b.width, b.height)
	}
	return nil
}

func (b *Board) Mines() []Position         { return sorted(b.mines) }
func (b *Board) OpenFields() []Position    { return sorted(b.open) }
func (b *Board) FlaggedFields() []Position { return sorted(b.flagged) }

func sorted(s mapset.Set[Position]) []Position {
	out := make([]Position, 0, s.Size())
	s.Each(func(p Position) {
		out = append(out, p)
	})
	slices.SortFunc(out, comparePositions)
	return out
}

func (b *Board) Neighbors(pos Position) iter.Seq[Position] {
	return Neighbors(pos, b.width, b.height)
}

func (b *Board) NeighboringMines(pos Position) int {
	return b.countNeighbors(pos, b.mines)
}

func (b *Board) neighboringFlags(pos Position) int {
	return b.countNeighbors(pos, b.flagged)
}

func (b *Board) countNeighbors(pos Position, s mapset.Set[Position]) int {
	c := 0
	for n := range b.Neighbors(pos) {
		if s.Has(n) {
			c++
		}
	}
	return c
}

// Won reports whether every safe cell is open and no mine was hit.
func (b *Board) Won() bool {
	return !b.lost && b.open.Size() == b.width*b.height-b.mines.Size()
}

// Forfeit ends the game as lost. The board freezes and renderers reveal the
// remaining mines.
func (b *Board) Forfeit() {
	if b.lost {
		return
	}
	b.lost = true
	Log.WithField("open", b.open.Size()).Debug("game forfeited")
}

func (b *Board) ToggleFlag(pos Position) {
	if !b.InBounds(pos) || b.lost || b.open.Has(pos) {
		return
	}
	if b.flagged.Has(pos) {
		b.flagged.Remove(pos)
	} else {
		b.flagged.Put(pos)
	}
}

/*
An openFrame is a pending loop over the neighbors of an opened cell. chord
frames open neighbors that are neither flagged nor open; cascade frames open
every neighbor that is not flagged, which turns into a chord for neighbors that
are already open.
*/
type openFrame struct {
	neighbors []Position
	next      int
	chord     bool
}

// Open reveals pos. On an already open cell it chords: when the number of
// flagged neighbors equals the number of neighboring mines, every neighbor
// that is neither flagged nor open gets opened. On a covered cell it opens it,
// loses the game on a mine and cascades over cells with no neighboring mines.
// Flagged cells, lost boards and positions off the grid are left untouched.
// Only the outcome of the cell passed in is reported; chording always reports
// Nothing.
func (b *Board) Open(pos Position) OpenResult {
	if !b.InBounds(pos) {
		return OpenResult{}
	}

	res, frame := b.enter(pos)
	if frame == nil {
		return res
	}

	/*
	 * Walk the reveal depth first with an explicit stack so that large
	 * empty regions don't grow the goroutine stack. Neighbor conditions are
	 * checked when a frame reaches them, after earlier siblings have been
	 * fully processed.
	 */
	var stack deque.Deque[*openFrame]
	stack.PushBack(frame)
	opened := b.open.Size()
	for stack.Len() != 0 {
		f := stack.Back()
		if f.next >= len(f.neighbors) {
			stack.PopBack()
			continue
		}
		n := f.neighbors[f.next]
		f.next++
		if b.flagged.Has(n) || f.chord && b.open.Has(n) {
			continue
		}
		if _, nf := b.enter(n); nf != nil {
			stack.PushBack(nf)
		}
	}

	Log.WithFields(logrus.Fields{
		"pos":    pos.String(),
		"opened": b.open.Size() - opened,
		"lost":   b.lost,
	}).Debug("reveal finished")

	return res
}

// enter applies the single-cell part of Open and returns the neighbor loop it
// starts, if any.
func (b *Board) enter(pos Position) (OpenResult, *openFrame) {
	if b.open.Has(pos) {
		if b.neighboringFlags(pos) != b.NeighboringMines(pos) {
			return OpenResult{}, nil
		}
		return OpenResult{}, &openFrame{
			neighbors: slices.Collect(b.Neighbors(pos)),
			chord:     true,
		}
	}

	if b.lost || b.flagged.Has(pos) {
		return OpenResult{}, nil
	}

	b.open.Put(pos)
	if b.mines.Has(pos) {
		b.lost = true
		Log.WithField("pos", pos.String()).Debug("mine opened")
		return OpenResult{Outcome: Mine}, nil
	}

	res := OpenResult{Outcome: NoMine, MineCount: 0}
	if b.NeighboringMines(pos) != 0 {
		return res, nil
	}
	return res, &openFrame{neighbors: slices.Collect(b.Neighbors(pos))}
}
