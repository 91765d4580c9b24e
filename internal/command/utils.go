package command

import (
	"iter"
	"strings"
)

// byPiece yields the sep-separated pieces of s along with their index. A
// trailing separator yields a final empty piece.
func byPiece(s, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; ; i++ {
			piece, rest, found := strings.Cut(s, sep)
			if !yield(i, piece) || !found {
				return
			}
			s = rest
		}
	}
}
