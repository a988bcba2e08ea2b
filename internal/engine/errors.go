package engine

import "errors"

var (
	ErrNoCommand    = errors.New("engine command is empty")
	ErrEngineExited = errors.New("engine closed its output")
	ErrClosed       = errors.New("engine already closed")
)
