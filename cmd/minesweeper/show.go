package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/derekjohnsonva/minesweeper/internal/command"
	"github.com/derekjohnsonva/minesweeper/internal/mines"
)

var (
	showFlags gameFlags
	showSeeds []uint
	script    string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Replay a move script and print the resulting board",
	Long: `Replay a move script and print the resulting board.

The script uses the same moves as play, separated by newlines or ';'.
With several --seeds every seed gets its own board, printed in order.`,
	Example: `  minesweeper show -p 9:9:10 --seeds 1,2,3 --script 'o 4 4; f 0 0' --glyphs ascii`,
	Args:    cobra.NoArgs,
	RunE:    runShow,
}

func init() {
	showFlags.register(showCmd)
	showCmd.Flags().UintSliceVar(&showSeeds, "seeds", nil, "replay against each of these seeds")
	showCmd.Flags().StringVarP(&script, "script", "s", "", "moves to replay")
}

func runShow(cmd *cobra.Command, args []string) error {
	params, err := showFlags.gameParams(cmd)
	if err != nil {
		return err
	}
	renderer, err := showFlags.renderer(cmd)
	if err != nil {
		return err
	}

	sources := make([]mines.RandomSource, 0, len(showSeeds))
	for _, seed := range showSeeds {
		sources = append(sources, mines.NewSeededSource(uint64(seed)))
	}
	if len(sources) == 0 {
		sources = append(sources, showFlags.source(cmd))
	}

	moves := strings.ReplaceAll(script, ";", "\n")
	outputs := make([]string, len(sources))

	// every replay owns its board, so they can run side by side
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			board := mines.New(params.Width, params.Height, params.MineCount, src)
			exec := command.NewExecutor(board, log.WithFields(logrus.Fields{
				"replay": i,
				"params": params.Seed(),
			}))
			if err := exec.ExecuteScript(moves); err != nil {
				return fmt.Errorf("replay %d: %w", i, err)
			}
			outputs[i] = renderer.String(board) + status(board)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, o := range outputs {
		if len(showSeeds) > 0 {
			fmt.Fprintf(out, "seed %d\n", showSeeds[i])
		}
		fmt.Fprint(out, o)
	}
	return nil
}

func status(board *mines.Board) string {
	switch {
	case board.Won():
		return "won\n"
	case board.Lost():
		return "lost\n"
	default:
		return fmt.Sprintf("%d/%d open, %d flagged\n",
			board.OpenCount(), board.Width()*board.Height()-board.MineCount(), board.FlagCount())
	}
}
