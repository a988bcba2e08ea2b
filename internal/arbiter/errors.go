package arbiter

import "errors"

var (
	ErrBadMove    = errors.New("invalid move")
	ErrNoResponse = errors.New("player did not respond")
)
