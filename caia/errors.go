package caia

import "errors"

var (
	ErrInvalidMoveFormat     = errors.New("invalid move format")
	ErrInvalidMoveCoordinate = errors.New("invalid move coordinate")
	ErrInvalidPlayer         = errors.New("invalid player")
)
