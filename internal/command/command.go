package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/derekjohnsonva/minesweeper/internal/mines"
)

type Command string

const (
	Noop    Command = "g"
	Open    Command = "o"
	Flag    Command = "f"
	Chord   Command = "c"
	Forfeit Command = "r" // =)
)

// Maps known commands to number of arguments
var commandNargs = map[Command]int{
	Noop:    0,
	Open:    2,
	Flag:    2,
	Chord:   2,
	Forfeit: 0,
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("invalid number of arguments")
	ErrBadArgument    = errors.New("bad argument")
)

// Executor applies text commands to a board. It is not safe for concurrent
// use, same as the board it drives.
type Executor struct {
	board *mines.Board
	log   logrus.FieldLogger
	last  mines.OpenResult
}

func NewExecutor(board *mines.Board, log logrus.FieldLogger) *Executor {
	return &Executor{board: board, log: log}
}

func (e *Executor) Board() *mines.Board { return e.board }

// LastResult is the outcome of the most recent open or chord.
func (e *Executor) LastResult() mines.OpenResult { return e.last }

func (e *Executor) Over() bool {
	return e.board.Lost() || e.board.Won()
}

func parseXY(args []string) (pos mines.Position, err error) {
	if pos.X, err = strconv.Atoi(args[0]); err != nil {
		return pos, fmt.Errorf("%w: first argument must be an int", ErrBadArgument)
	}
	if pos.Y, err = strconv.Atoi(args[1]); err != nil {
		return pos, fmt.Errorf("%w: second argument must be an int", ErrBadArgument)
	}
	return pos, nil
}

// Execute runs a single command line such as "o 3 4".
func (e *Executor) Execute(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	cmd, args := Command(tokens[0]), tokens[1:]
	nargs, ok := commandNargs[cmd]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, tokens[0])
	}
	if nargs != len(args) {
		return fmt.Errorf("%w: %q takes %d, got %d", ErrArgCount, cmd, nargs, len(args))
	}

	switch cmd {
	case Noop:
		return nil
	case Forfeit:
		e.board.Forfeit()
		e.log.Info("forfeit")
		return nil
	}

	pos, err := parseXY(args)
	if err != nil {
		return err
	}
	if err := e.board.Check(pos); err != nil {
		return err
	}

	over := e.Over()
	fields := logrus.Fields{"cmd": string(cmd), "x": pos.X, "y": pos.Y}
	switch cmd {
	case Open, Chord:
		e.last = e.board.Open(pos)
		fields["outcome"] = e.last.Outcome.String()
	case Flag:
		e.board.ToggleFlag(pos)
		fields["flagged"] = e.board.IsFlagged(pos)
	}
	e.log.WithFields(fields).Debug("command executed")

	if over {
		return nil
	}
	if e.board.Lost() {
		e.log.WithFields(fields).Info("game lost")
	} else if e.board.Won() {
		e.log.WithFields(fields).Info("game won")
	}
	return nil
}

// ExecuteScript runs newline separated commands, stopping at the first error
// or as soon as the game is over.
func (e *Executor) ExecuteScript(script string) error {
	for i, line := range byPiece(strings.TrimSpace(script), "\n") {
		if e.Over() {
			return nil
		}
		if err := e.Execute(strings.TrimSpace(line)); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}
