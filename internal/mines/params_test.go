package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameParamsValidate(t *testing.T) {
	tests := []struct {
		params GameParams
		valid  bool
	}{
		{GameParams{9, 9, 10}, true},
		{GameParams{1, 1, 0}, true},
		{GameParams{2, 2, 3}, true},
		{GameParams{2, 2, 4}, false},
		{GameParams{0, 5, 1}, false},
		{GameParams{5, 0, 1}, false},
		{GameParams{5, 5, -1}, false},
	}
	for _, test := range tests {
		t.Run(test.params.Seed(), func(t *testing.T) {
			err := test.params.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidParams)
			}
		})
	}
}

func TestSeedRoundTrip(t *testing.T) {
	p := GameParams{Width: 30, Height: 16, MineCount: 99}
	assert.Equal(t, "30:16:99", p.Seed())

	parsed, err := ParseSeed(p.Seed())
	require.NoError(t, err)
	assert.Equal(t, p, *parsed)
}

func TestParseSeedNegative(t *testing.T) {
	parsed, err := ParseSeed("9:9:-1")
	require.NoError(t, err)
	assert.ErrorIs(t, parsed.Validate(), ErrInvalidParams)
}

func TestParseSeedErrors(t *testing.T) {
	seeds := []string{
		"", "9:9", "a:b:c", "9:9:10:1", "9x9x10",
		"9:9:10x", "9:9:10 ", " 9:9:10", "9::10", "9:9:",
	}
	for _, seed := range seeds {
		_, err := ParseSeed(seed)
		assert.ErrorIs(t, err, ErrInvalidSeed, "seed %q", seed)
	}
}

func TestPointInBounds(t *testing.T) {
	p := GameParams{3, 2, 1}
	assert.True(t, p.PointInBounds(0, 0))
	assert.True(t, p.PointInBounds(2, 1))
	assert.False(t, p.PointInBounds(3, 0))
	assert.False(t, p.PointInBounds(0, 2))
	assert.False(t, p.PointInBounds(-1, 0))

	b := NewWithMines(3, 2, Position{2, 1})
	for x := -1; x <= 3; x++ {
		for y := -1; y <= 2; y++ {
			assert.Equal(t, p.PointInBounds(x, y), b.InBounds(Position{x, y}), "(%d, %d)", x, y)
		}
	}
}
