package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/derekjohnsonva/minesweeper/internal/mines"
	"github.com/derekjohnsonva/minesweeper/internal/render"
)

// gameFlags override the config for a single run.
type gameFlags struct {
	width, height, mineCount int
	params                   string
	seed                     uint64
	glyphs                   string
	color                    bool
}

func (f *gameFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&f.width, "width", 0, "board width")
	flags.IntVar(&f.height, "height", 0, "board height")
	flags.IntVar(&f.mineCount, "mines", 0, "number of mines")
	flags.StringVarP(&f.params, "params", "p", "", "board as width:height:mines, overrides the other size flags")
	flags.Uint64Var(&f.seed, "seed", 0, "seed for a reproducible mine layout")
	flags.StringVar(&f.glyphs, "glyphs", "", "glyph set: emoji or ascii")
	flags.BoolVar(&f.color, "color", false, "colour mine counts")
}

func (f *gameFlags) gameParams(cmd *cobra.Command) (mines.GameParams, error) {
	params := cfg.Params()
	if f.params != "" {
		p, err := mines.ParseSeed(f.params)
		if err != nil {
			return params, err
		}
		return *p, p.Validate()
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		params.Width = f.width
	}
	if flags.Changed("height") {
		params.Height = f.height
	}
	if flags.Changed("mines") {
		params.MineCount = f.mineCount
	}
	return params, params.Validate()
}

func (f *gameFlags) source(cmd *cobra.Command) mines.RandomSource {
	if cmd.Flags().Changed("seed") {
		return mines.NewSeededSource(f.seed)
	}
	return mines.NewEntropySource()
}

func (f *gameFlags) renderer(cmd *cobra.Command) (*render.Renderer, error) {
	name := cfg.Glyphs
	if cmd.Flags().Changed("glyphs") {
		name = f.glyphs
	}
	glyphs, ok := render.GlyphsByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown glyph set %q", name)
	}
	r := render.New(glyphs)
	if cfg.Color || f.color {
		r = r.WithColor()
	}
	return r, nil
}
