package mines

import "errors"

var (
	ErrOutOfBounds   = errors.New("position out of bounds")
	ErrInvalidParams = errors.New("invalid game params")
	ErrInvalidSeed   = errors.New("invalid game params seed")
)
