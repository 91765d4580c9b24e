package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Validate() error {
	switch {
	case p.Width <= 0:
		return fmt.Errorf("%w: width must be positive (width = %d)", ErrInvalidParams, p.Width)
	case p.Height <= 0:
		return fmt.Errorf("%w: height must be positive (height = %d)", ErrInvalidParams, p.Height)
	case p.MineCount < 0:
		return fmt.Errorf("%w: mine count must not be negative (mine_count = %d)", ErrInvalidParams, p.MineCount)
	case p.MineCount >= p.Width*p.Height:
		/*
		 * At least one cell has to stay free, otherwise mine placement
		 * never terminates.
		 */
		return fmt.Errorf(
			"%w: mine count must be less than %d (mine_count = %d)",
			ErrInvalidParams, p.Width*p.Height, p.MineCount,
		)
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	parts := strings.Split(seed, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf(`%w: expected width:height:mine_count (seed = "%s")`, ErrInvalidSeed, seed)
	}
	var fields [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf(`%w (seed = "%s", err = %v)`, ErrInvalidSeed, seed, err)
		}
		fields[i] = n
	}
	return &GameParams{Width: fields[0], Height: fields[1], MineCount: fields[2]}, nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
