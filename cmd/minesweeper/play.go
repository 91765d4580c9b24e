package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/derekjohnsonva/minesweeper/internal/command"
	"github.com/derekjohnsonva/minesweeper/internal/mines"
	"github.com/derekjohnsonva/minesweeper/internal/render"
)

var playFlags gameFlags

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive game, reading moves from stdin",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func init() {
	playFlags.register(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	params, err := playFlags.gameParams(cmd)
	if err != nil {
		return err
	}
	renderer, err := playFlags.renderer(cmd)
	if err != nil {
		return err
	}

	board := mines.New(params.Width, params.Height, params.MineCount, playFlags.source(cmd))
	glog := log.WithFields(logrus.Fields{
		"game":   uuid.NewString(),
		"params": params.Seed(),
	})
	glog.Info("new game")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	/*
	 * Only the loop below touches the board. The reader stops handing over
	 * lines once ctx is done; a read already blocked on stdin ends with the
	 * process.
	 */
	lines := make(chan string)
	go readLines(ctx, cmd.InOrStdin(), lines)

	return playLoop(ctx, command.NewExecutor(board, glog), renderer, cmd.OutOrStdout(), lines)
}

func readLines(ctx context.Context, r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn("read: ", err)
	}
}

func playLoop(
	ctx context.Context,
	exec *command.Executor,
	renderer *render.Renderer,
	w io.Writer,
	lines <-chan string,
) error {
	board := exec.Board()
	for {
		if err := renderer.Render(w, board); err != nil {
			return err
		}
		if exec.Over() {
			return printVerdict(w, board)
		}
		fmt.Fprintf(w, "%d/%d flagged> ", board.FlagCount(), board.MineCount())

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(w)
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(w)
			return nil
		}

		if err := exec.Execute(line); err != nil {
			fmt.Fprintln(w, err)
		}
	}
}

func printVerdict(w io.Writer, board *mines.Board) error {
	var err error
	if board.Won() {
		_, err = fmt.Fprintln(w, "you won!")
	} else {
		_, err = fmt.Fprintln(w, "boom, game over")
	}
	return err
}
