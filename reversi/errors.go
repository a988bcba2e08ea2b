package reversi

import "errors"

var (
	ErrIllegalMove    = errors.New("illegal move")
	ErrPrematureInput = errors.New("premature end of input")
)
