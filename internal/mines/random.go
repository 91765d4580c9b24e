package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// RandomSource draws uniformly distributed integers from [min, max).
type RandomSource interface {
	Range(min, max int) int
}

type randSource struct {
	r *rand.Rand
}

func NewRandSource(r *rand.Rand) RandomSource {
	return randSource{r}
}

// NewSeededSource returns a deterministic source: equal seeds produce equal
// mine layouts.
func NewSeededSource(seed uint64) RandomSource {
	return randSource{rand.New(rand.NewPCG(seed, seed))}
}

func NewEntropySource() RandomSource {
	return randSource{rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))}
}

// [randSource] implements [RandomSource]
func (s randSource) Range(min, max int) int {
	return min + s.r.IntN(max-min)
}
