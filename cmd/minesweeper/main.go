package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/derekjohnsonva/minesweeper/internal/config"
	"github.com/derekjohnsonva/minesweeper/internal/logging"
	"github.com/derekjohnsonva/minesweeper/internal/mines"
)

var (
	log = logrus.New()

	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Play minesweeper in the terminal",
	Long: `Play minesweeper in the terminal.

Moves are typed one per line:
  o X Y  open a cell, or chord an open one
  f X Y  toggle a flag
  c X Y  same as o
  g      redraw the board
  r      give up and reveal the mines`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	const (
		defaultConfigPath = "minesweeper.json"
		usage             = "config file path"
	)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, usage)
	rootCmd.AddCommand(playCmd, showCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfg, err = config.Read(configPath); err != nil {
		return err
	}
	if err := logging.Setup(log, cfg); err != nil {
		return err
	}
	mines.Log = log

	log.Debug("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Debugf("exit reason: %s", err)
		os.Exit(1)
	}
}
